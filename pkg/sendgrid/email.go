package sendgrid

import (
	"context"
	"fmt"
	"log/slog"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Message struct {
	To         string
	ToName     string
	Subject    string
	PlainText  string
	HTML       string
	Categories []string
}

type EmailService interface {
	Send(ctx context.Context, msg *Message) error
}

type Option func(*emailService)

// WithBaseURL points the client at another mail/send endpoint.
func WithBaseURL(url string) Option {
	return func(e *emailService) {
		e.client.Request.BaseURL = url
	}
}

type emailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string, opts ...Option) EmailService {
	e := &emailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *emailService) Send(ctx context.Context, msg *Message) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.To))
	personalization.Subject = msg.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", msg.PlainText))
	if msg.HTML != "" {
		message.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	if len(msg.Categories) > 0 {
		message.AddCategories(msg.Categories...)
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to reach sendgrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// logEmailService is used when no API key is configured. Messages are
// logged and reported as delivered.
type logEmailService struct {
	logger *slog.Logger
}

func NewLogEmailService(logger *slog.Logger) EmailService {
	return &logEmailService{logger: logger}
}

func (l *logEmailService) Send(_ context.Context, msg *Message) error {
	l.logger.Info("Email delivery disabled, message dropped",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject))

	return nil
}
