package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWaitlistConfirmation(toEmail, name string) error
}

type emailService struct {
	dialer     *gomail.Dialer
	sender     string
	senderName string
	siteURL    string
}

func NewEmailService(host string, port int, username, password, senderName, siteURL string) IEmailService {
	return &emailService{
		dialer:     gomail.NewDialer(host, port, username, password),
		sender:     username,
		senderName: senderName,
		siteURL:    strings.TrimRight(siteURL, "/"),
	}
}

var waitlistBody = template.Must(template.New("waitlist").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; color: #1f2937;">
	<h2>You're on the RecruAI waitlist</h2>
	<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
	<p>Thanks for your interest in RecruAI by MenteE. We'll email you as soon as a seat opens up.</p>
	<p><a href="{{.SiteURL}}/pricing" style="color: #4f46e5;">See plans and pricing</a></p>
</div>
`))

func (s *emailService) SendWaitlistConfirmation(toEmail, name string) error {
	var body strings.Builder
	if err := waitlistBody.Execute(&body, struct{ Name, SiteURL string }{name, s.siteURL}); err != nil {
		return fmt.Errorf("render waitlist mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.sender, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "You're on the RecruAI waitlist")
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send waitlist mail to %s: %w", toEmail, err)
	}
	return nil
}
