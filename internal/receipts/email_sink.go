package receipts

import (
	"context"
	"fmt"

	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	"github.com/tawonga-banda/pharmacy-pos/pkg/sendgrid"
)

// EmailSink mails each rendered receipt to a fixed back-office address.
type EmailSink struct {
	email sendgrid.EmailService
	to    string
}

func NewEmailSink(email sendgrid.EmailService, to string) *EmailSink {
	return &EmailSink{email: email, to: to}
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Publish(ctx context.Context, receipt *models.Receipt, rendered string) error {

	subject := fmt.Sprintf("Pharmacy receipt %s", receipt.ID)

	if err := s.email.Send(ctx, s.to, subject, rendered); err != nil {
		return fmt.Errorf("mailing receipt %s: %w", receipt.ID, err)
	}

	return nil
}
