package mailer

import "context"

// Noop отправитель-заглушка для окружений без SendGrid
type Noop struct {
	log Logger
}

// NewNoop создает заглушку
func NewNoop(log Logger) *Noop {
	return &Noop{log: log}
}

// SendConfirmation только пишет в лог
func (n *Noop) SendConfirmation(_ context.Context, msg Confirmation) error {
	n.log.Info("Mailer disabled, skipping confirmation email to %s", msg.CustomerEmail)
	return nil
}
