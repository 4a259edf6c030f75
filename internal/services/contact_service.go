package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
)

// ContactService accepts contact page messages. The booking backend has no
// inbox, so a message is only acknowledged and logged.
type ContactService struct{}

// NewContactService creates a new contact service instance
func NewContactService() *ContactService {
	return &ContactService{}
}

func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) *models.ContactResponse {
	if strings.TrimSpace(form.Message) == "" || strings.TrimSpace(form.Subject) == "" {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return &models.ContactResponse{
			Success: false,
			Error:   "Subject and message are required",
		}
	}

	logger.Info("Contact message received",
		zap.String("email", form.Email),
		zap.String("subject", form.Subject),
		zap.Int("message_length", len(form.Message)))

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	return &models.ContactResponse{
		Success: true,
		Title:   "Message Sent!",
	}
}
