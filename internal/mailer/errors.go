package mailer

import "errors"

var (
	ErrUnknownKind    = errors.New("unknown email kind")
	ErrRenderTemplate = errors.New("failed to render email template")
	ErrSendEmail      = errors.New("failed to send email")
)
