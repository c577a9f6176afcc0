package mailer

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client клиент для отправки писем через SendGrid
type Client struct {
	sender  Sender
	from    *mail.Email
	locales Locales
	timeout time.Duration
	log     Logger
}

// NewClient создает клиента SendGrid с API ключом
func NewClient(apiKey, fromEmail, fromName string, timeout time.Duration, locales Locales, log Logger) *Client {
	return NewClientWithSender(sendgrid.NewSendClient(apiKey), fromEmail, fromName, timeout, locales, log)
}

// NewClientWithSender создает клиента с произвольным отправителем
func NewClientWithSender(sender Sender, fromEmail, fromName string, timeout time.Duration, locales Locales, log Logger) *Client {
	return &Client{
		sender:  sender,
		from:    mail.NewEmail(fromName, fromEmail),
		locales: locales,
		timeout: timeout,
		log:     log,
	}
}

// SendConfirmation отправляет клиенту подтверждение записи на его языке
func (c *Client) SendConfirmation(ctx context.Context, msg Confirmation) error {
	if strings.TrimSpace(msg.CustomerEmail) == "" {
		return ErrInvalidRecipient
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	subject, plain, htmlBody := c.render(msg)
	to := mail.NewEmail(msg.CustomerName, msg.CustomerEmail)
	email := mail.NewSingleEmail(c.from, subject, to, plain, htmlBody)

	resp, err := c.sender.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: failed to send email: %v", ErrInternal, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, resp.Body)
	}

	c.log.Info("Confirmation email sent to %s (status=%d)", msg.CustomerEmail, resp.StatusCode)
	return nil
}

// render собирает тему, текстовую и HTML версии письма
func (c *Client) render(msg Confirmation) (subject, plain, htmlBody string) {
	loc := c.locales.Match(msg.Locale)

	subject = loc.Message("confirmation_subject", nil)

	lines := []string{
		loc.Message("confirmation_greeting", map[string]string{"name": msg.CustomerName}),
		"",
		loc.Message("confirmation_body", nil),
		"",
		loc.Message("confirmation_details", nil),
		fmt.Sprintf("%s: %s", loc.Message("label_barber", nil), msg.BarberName),
		fmt.Sprintf("%s: %s", loc.Message("label_date", nil), loc.FormatDate(msg.Date)),
		fmt.Sprintf("%s: %s", loc.Message("label_time", nil), msg.Time.String()),
	}
	if msg.ServiceType != nil {
		lines = append(lines, fmt.Sprintf("%s: %s",
			loc.Message("label_service", nil),
			loc.Message("service_"+string(*msg.ServiceType), nil)))
	}

	plain = strings.Join(lines, "\n")

	dir := "ltr"
	if loc.IsRTL() {
		dir = "rtl"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div dir="%s">`, dir)
	for _, line := range lines {
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(line))
	}
	b.WriteString("</div>")

	return subject, plain, b.String()
}
