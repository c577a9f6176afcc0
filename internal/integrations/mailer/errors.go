package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе SendGrid
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrInvalidRecipient возвращается при пустом адресе получателя
	ErrInvalidRecipient = errors.New("mailer client: invalid recipient")
)
