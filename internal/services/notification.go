package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/cosmetics-storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// money is rebound per order in confirmationMessage
var confirmationHTML = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"money": func(int64) string { return "" },
}).Parse(`<p>Hi {{.Customer.Name}},</p>
<p>Thanks for your order <strong>{{.Number}}</strong>. We will let you know when it ships.</p>
<table>
{{range .Lines}}<tr><td>{{.Title}}</td><td>x{{.Quantity}}</td><td>{{money .LineTotal}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{money .Total}}</strong></p>`))

// SendOrderConfirmation records the email before sending it so failed
// deliveries stay visible in the notification log.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	metadata, err := json.Marshal(map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.Number,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	msg, err := confirmationMessage(order)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: order.Customer.Email,
		Subject:   msg.Subject,
		Content:   msg.PlainText,
		Status:    models.StatusPending,
		Metadata:  metadata,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	if err := n.emailService.Send(ctx, msg); err != nil {
		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error())
		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return fmt.Errorf("notification sent successfully but failed to update notification status: %w", err)
	}

	return nil
}

func (n *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch notifications").WithError(err)
	}

	return notifications, total, nil
}

func confirmationMessage(order *models.Order) (*sendgrid.Message, error) {
	money := func(minor int64) string {
		return FormatMoney(minor, order.Currency)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nThanks for your order %s.\n\n", order.Customer.Name, order.Number)
	for _, line := range order.Lines {
		fmt.Fprintf(&text, "%s x%d  %s\n", line.Title, line.Quantity, money(line.LineTotal))
	}
	fmt.Fprintf(&text, "\nTotal: %s\n", money(order.Total))

	var html bytes.Buffer
	tmpl, err := confirmationHTML.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare email template: %w", err)
	}
	if err := tmpl.Funcs(template.FuncMap{"money": money}).Execute(&html, order); err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}

	return &sendgrid.Message{
		To:         order.Customer.Email,
		ToName:     order.Customer.Name,
		Subject:    fmt.Sprintf("Your order %s", order.Number),
		PlainText:  text.String(),
		HTML:       html.String(),
		Categories: []string{"order-confirmation"},
	}, nil
}

// FormatMoney renders an amount in minor units, e.g. 123450 INR as "INR 1234.50".
func FormatMoney(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	return fmt.Sprintf("%s %s%d.%02d", currency, sign, minor/100, minor%100)
}
