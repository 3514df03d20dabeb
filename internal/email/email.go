// Package email sends the studio inbox a notice when something arrives
// through the public site. Optional: without SMTP configuration every send
// is a logged no-op.
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
)

// Config holds email configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// Service handles email sending
type Service struct {
	config    *Config
	templates map[string]*template.Template
}

// NewService creates a new email service
func NewService(config *Config) *Service {
	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// ContactNoticeData holds data for the new-contact-message notice.
type ContactNoticeData struct {
	Name        string
	Email       string
	ProjectType string
	Message     string
}

// RequestNoticeData holds data for the new-custom-request notice.
type RequestNoticeData struct {
	Name            string
	Email           string
	Phone           string
	ProjectDuration int
	QualityLevel    string
	Services        []string
	EstimatedPrice  int64
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	s.templates["contact_notice"] = template.Must(template.New("contact_notice").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #111;">
  <h2>New contact message</h2>
  <p><strong>{{.Name}}</strong> ({{.Email}}) wrote about <em>{{.ProjectType}}</em>:</p>
  <blockquote style="border-left: 3px solid #ccc; padding-left: 12px;">{{.Message}}</blockquote>
  <p style="font-size: 12px; color: #6b7280;">Open the dashboard to reply.</p>
</body>
</html>
`))

	s.templates["request_notice"] = template.Must(template.New("request_notice").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #111;">
  <h2>New custom project request</h2>
  <p><strong>{{.Name}}</strong> ({{.Email}}, {{.Phone}}) requested a
  {{.ProjectDuration}}-day {{.QualityLevel}} production.</p>
  {{if .Services}}<p>Services: {{range $i, $s := .Services}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
  <p>Estimated price: <strong>${{.EstimatedPrice}}</strong></p>
  <p style="font-size: 12px; color: #6b7280;">Open the dashboard to review and quote.</p>
</body>
</html>
`))
}

// SendContactNotice emails the studio inbox about a new contact message.
func (s *Service) SendContactNotice(to string, data ContactNoticeData) error {
	return s.sendWithTemplate(to, fmt.Sprintf("New contact message from %s", data.Name), "contact_notice", data)
}

// SendRequestNotice emails the studio inbox about a new custom request.
func (s *Service) SendRequestNotice(to string, data RequestNoticeData) error {
	return s.sendWithTemplate(to, fmt.Sprintf("New custom project request from %s", data.Name), "request_notice", data)
}

func (s *Service) sendWithTemplate(to, subject, templateName string, data interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template %q not found", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render template %q: %w", templateName, err)
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: body.String(),
	})
}

// Send delivers the message over SMTP.
func (s *Service) Send(email *Email) error {
	if s.config.Host == "" {
		log.Println("Email not configured, skipping send")
		return nil
	}

	// Build message
	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email.To[0]))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.Body)
	}

	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if s.config.UseTLS {
		return s.sendTLS(addr, auth, email.To, msg.Bytes())
	}
	return smtp.SendMail(addr, auth, s.config.From, email.To, msg.Bytes())
}

func (s *Service) sendTLS(addr string, auth smtp.Auth, recipients []string, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: s.config.Host}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial error: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("SMTP client error: %w", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("auth error: %w", err)
	}
	if err = client.Mail(s.config.From); err != nil {
		return fmt.Errorf("mail error: %w", err)
	}
	for _, rcpt := range recipients {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt error: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data error: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close error: %w", err)
	}
	return client.Quit()
}
