package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

const fromName = "CleanrCrew"

// Kind вид письма
type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindInvoice      Kind = "invoice"
	KindReview       Kind = "review"
)

//go:embed templates
var templatesFS embed.FS

// templateFiles отображение вида письма на файл шаблона
var templateFiles = map[Kind]string{
	KindConfirmation: "templates/confirmation.tmpl",
	KindInvoice:      "templates/invoice.tmpl",
	KindReview:       "templates/review.tmpl",
}

// TemplateData данные для рендера шаблона письма
type TemplateData struct {
	ClientName   string
	ServiceTitle string
	Date         string
	TimeSlot     string
	Invoice      *domain.Invoice
}

// EmailContent отрендеренное письмо
type EmailContent struct {
	Subject string
	Body    string
}

// Templater рендерит письма из встроенных шаблонов
type Templater struct{}

// NewTemplater создает новый рендерер писем
func NewTemplater() *Templater {
	return &Templater{}
}

// Render рендерит тему и тело письма указанного вида
func (t *Templater) Render(kind Kind, data TemplateData) (*EmailContent, error) {
	file, ok := templateFiles[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	tmpl, err := template.ParseFS(templatesFS, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderTemplate, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderTemplate, err)
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderTemplate, err)
	}

	return &EmailContent{
		Subject: subject.String(),
		Body:    body.String(),
	}, nil
}
