package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// ContactService stores contact-form submissions and relays them to the
// support inbox. Storage happens first: a relay failure must never lose
// the message.
type ContactService struct {
	contactRepo  repository.ContactMessageRepository
	emailService EmailService
}

func NewContactService(contactRepo repository.ContactMessageRepository, emailService EmailService) *ContactService {
	return &ContactService{contactRepo: contactRepo, emailService: emailService}
}

// Submit validates and records a contact message, then relays it.
func (s *ContactService) Submit(ctx context.Context, name, email, subject, message string) (*entity.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", apperrors.ErrValidation)
	}
	if !emailShape.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}

	record := &entity.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(subject),
		Message: message,
	}
	if err := s.contactRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := s.emailService.SendContactMessage(ctx, name, email, record.Subject, message); err != nil {
		// The message is stored; the relay can be replayed by an operator.
		log.Printf("[ContactService] Relay failed for message ID=%s: %v", record.ID, err)
	}

	return record, nil
}
