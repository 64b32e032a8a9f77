package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier sends transactional email through SendGrid.
type SendGridNotifier struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridNotifier(apiKey, from string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:   apiKey,
		from:     from,
		fromName: "MLT Orlando Transportation",
	}
}

func (n *SendGridNotifier) Send(ctx context.Context, to, subject, text, html string) error {
	if n.apiKey == "" || n.from == "" {
		return fmt.Errorf("sendgrid notifier is not configured")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.from),
		subject,
		mail.NewEmail("", to),
		text,
		html,
	)

	client := sendgrid.NewSendClient(n.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
