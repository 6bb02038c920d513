package utils

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"movie_catalog/config"
)

const welcomeTemplate = `<html><body>
<p>Hello {{.Name}},</p>
<p>Your administrator account for the movie catalog has been created.</p>
<p>You can sign in at <a href="{{.SiteURL}}">{{.SiteURL}}</a>.</p>
</body></html>`

// SendWelcomeEmail notifies a freshly signed-up administrator. It runs in the
// background so the signup response is not delayed, and is a no-op when SMTP
// is not configured.
func SendWelcomeEmail(cfg *config.Config, to, name string) {
	if cfg.SMTPHost == "" {
		return
	}

	go func() {
		tmpl, err := template.New("welcome").Parse(welcomeTemplate)
		if err != nil {
			log.Error().Err(err).Msg("failed to parse welcome email template")
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, map[string]string{"Name": name, "SiteURL": cfg.SiteURL}); err != nil {
			log.Error().Err(err).Msg("failed to render welcome email")
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", cfg.SMTPFrom)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Welcome to the movie catalog")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Error().Err(err).Str("to", to).Msg("failed to send welcome email")
		}
	}()
}
