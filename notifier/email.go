package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"mflix-insights/config"
	"mflix-insights/report"
)

var reportTemplate = template.Must(template.New("email").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Mflix Insights - Movie Report</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; }
        h1 { color: #13aa52; }
        h2 { color: #0071c5; margin-top: 30px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        td { padding: 8px; border-bottom: 1px solid #ddd; }
        .footer { font-size: 12px; color: #666; margin-top: 50px; text-align: center; }
    </style>
</head>
<body>
    <h1>Mflix Insights - Movie Report</h1>
    <p>Generated on {{.Date}} for {{len .Reports}} collection(s).</p>

    {{range .Reports}}
    <h2>Movies from {{.Label}}</h2>
    <table>
        {{range .Lines}}
        <tr><td>{{.}}</td></tr>
        {{end}}
    </table>
    {{end}}

    <div class="footer">
        <p>This is an automated email from Mflix Insights. Please do not reply.</p>
    </div>
</body>
</html>
`))

// EmailNotifier sends analytics reports by e-mail.
type EmailNotifier struct {
	cfg    config.EmailConfig
	send   func(*gomail.Message) error
	logger *zap.Logger
}

// NewEmailNotifier creates a notifier that delivers over SMTP.
func NewEmailNotifier(cfg config.EmailConfig, logger *zap.Logger) (*EmailNotifier, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("email notifications need EMAIL_SMTP_HOST and EMAIL_RECIPIENT")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	return &EmailNotifier{
		cfg:    cfg,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger: logger,
	}, nil
}

// NotifyReports sends one message covering every report.
func (n *EmailNotifier) NotifyReports(reports []report.Report) error {
	if len(reports) == 0 {
		n.logger.Info("No reports to send")
		return nil
	}

	m, err := n.buildMessage(reports, time.Now())
	if err != nil {
		return err
	}

	if err := n.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info("Email report sent",
		zap.String("recipient", n.cfg.RecipientEmail),
		zap.Int("reports", len(reports)))
	return nil
}

func (n *EmailNotifier) buildMessage(reports []report.Report, now time.Time) (*gomail.Message, error) {
	data := struct {
		Date    string
		Reports []report.Report
	}{
		Date:    now.Format("January 2, 2006 at 3:04 PM"),
		Reports: reports,
	}

	var html bytes.Buffer
	if err := reportTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	labels := make([]string, len(reports))
	sections := make([]string, len(reports))
	for i, r := range reports {
		labels[i] = r.Label()
		sections[i] = r.String()
	}

	plain := fmt.Sprintf("Mflix Insights Movie Report\n\nGenerated on %s.\n\n%s\n\n"+
		"This is an automated email from Mflix Insights. Please do not reply.",
		data.Date, strings.Join(sections, "\n\n"))

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.SenderEmail)
	m.SetHeader("To", n.cfg.RecipientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Mflix Insights: movie report for %s", strings.Join(labels, ", ")))
	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html.String())
	return m, nil
}
