package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"recruai-web/internal/dto"
	"recruai-web/internal/model"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/mailer"
	"recruai-web/internal/repository/contract"
	"recruai-web/pkg/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrAlreadyOnWaitlist = errors.New("this email is already on the waitlist")

type IWaitlistService interface {
	Join(ctx context.Context, form dto.WaitlistForm, metadata map[string]string) error
	Count(ctx context.Context) (int64, error)
}

type waitlistService struct {
	repo      contract.WaitlistRepository
	mail      mailer.IEmailService // nil when SMTP is not configured
	publisher EventPublisher
	log       logger.ILogger
}

func NewWaitlistService(repo contract.WaitlistRepository, mail mailer.IEmailService, publisher EventPublisher, log logger.ILogger) IWaitlistService {
	return &waitlistService{repo: repo, mail: mail, publisher: publisher, log: log}
}

func (s *waitlistService) Join(ctx context.Context, form dto.WaitlistForm, metadata map[string]string) error {
	email := strings.ToLower(strings.TrimSpace(form.Email))

	meta, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	entry := &model.WaitlistEntry{
		Id:       uuid.New(),
		Email:    email,
		Name:     strings.TrimSpace(form.Name),
		Role:     form.Role,
		Source:   metadata["source"],
		Metadata: datatypes.JSON(meta),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, contract.ErrDuplicateEntry) {
			return ErrAlreadyOnWaitlist
		}
		return fmt.Errorf("save waitlist entry: %w", err)
	}

	if s.mail != nil {
		if err := s.mail.SendWaitlistConfirmation(entry.Email, entry.Name); err != nil {
			s.log.Warn("WaitlistService", "confirmation mail failed", map[string]interface{}{"error": err.Error()})
		}
	}

	event := events.New(events.TypeWaitlistJoined, map[string]interface{}{
		"entry_id": entry.Id.String(),
		"role":     entry.Role,
		"source":   entry.Source,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("WaitlistService", "failed to publish waitlist event", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("WaitlistService", "waitlist entry created", map[string]interface{}{"entry_id": entry.Id.String()})
	return nil
}

func (s *waitlistService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
