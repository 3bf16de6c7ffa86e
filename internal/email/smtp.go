package email

import (
	"fmt"

	"rabota_backend/internal/config"
	"rabota_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPProvider отправляет письма через обычный SMTP (gomail)
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendApplicationReceived(to string, job *models.Job, app *models.Application) error {
	subject := fmt.Sprintf("Новый отклик: %s", job.Title)
	body := fmt.Sprintf(
		"<p>На вашу вакансию <b>%s</b> (%s) поступил новый отклик.</p>"+
			"<p>Кандидат: %s<br>Телефон: %s</p>",
		job.Title, job.Company, app.ApplicantName, app.ApplicantPhone,
	)
	if app.Message != "" {
		body += fmt.Sprintf("<p>Сообщение: %s</p>", app.Message)
	}
	return p.send(to, subject, body)
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
