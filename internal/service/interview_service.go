package service

import (
	"context"
	"errors"
	"fmt"

	"recruai-web/internal/dto"
	"recruai-web/internal/pkg/logger"
)

type InterviewAPI interface {
	ListInterviews(ctx context.Context, token string) ([]dto.Record, error)
	CreateInterview(ctx context.Context, token string, payload map[string]interface{}) error
	UpdateInterview(ctx context.Context, token, id string, payload map[string]interface{}) error
	DeleteInterview(ctx context.Context, token, id string) error
	AssignAgent(ctx context.Context, token, id string, payload map[string]interface{}) error
}

// IInterviewService never patches a local copy: callers re-fetch with List
// after every successful mutation.
type IInterviewService interface {
	List(ctx context.Context, p Principal) ([]dto.Record, error)
	Schedule(ctx context.Context, p Principal, form dto.InterviewForm) error
	Update(ctx context.Context, p Principal, id string, form dto.InterviewForm) error
	Cancel(ctx context.Context, p Principal, id string) error
	Delete(ctx context.Context, p Principal, id string) error
	BulkDelete(ctx context.Context, p Principal, ids []string) (int, error)
	AssignAgent(ctx context.Context, p Principal, id string, form dto.AssignAgentForm) error
}

type interviewService struct {
	api     InterviewAPI
	refresh IRefreshPublisher
	log     logger.ILogger
}

func NewInterviewService(api InterviewAPI, refresh IRefreshPublisher, log logger.ILogger) IInterviewService {
	return &interviewService{api: api, refresh: refresh, log: log}
}

func (s *interviewService) List(ctx context.Context, p Principal) ([]dto.Record, error) {
	return s.api.ListInterviews(ctx, p.Token)
}

func (s *interviewService) Schedule(ctx context.Context, p Principal, form dto.InterviewForm) error {
	if err := s.api.CreateInterview(ctx, p.Token, form.Payload()); err != nil {
		return err
	}
	s.changed(ctx, p, "scheduled", "")
	return nil
}

func (s *interviewService) Update(ctx context.Context, p Principal, id string, form dto.InterviewForm) error {
	if err := s.api.UpdateInterview(ctx, p.Token, id, form.Payload()); err != nil {
		return err
	}
	s.changed(ctx, p, "updated", id)
	return nil
}

func (s *interviewService) Cancel(ctx context.Context, p Principal, id string) error {
	if err := s.api.UpdateInterview(ctx, p.Token, id, map[string]interface{}{"status": "cancelled"}); err != nil {
		return err
	}
	s.changed(ctx, p, "cancelled", id)
	return nil
}

func (s *interviewService) Delete(ctx context.Context, p Principal, id string) error {
	if err := s.api.DeleteInterview(ctx, p.Token, id); err != nil {
		return err
	}
	s.changed(ctx, p, "deleted", id)
	return nil
}

// BulkDelete issues one DELETE per id and keeps going past failures. It
// returns how many succeeded and every failure joined.
func (s *interviewService) BulkDelete(ctx context.Context, p Principal, ids []string) (int, error) {
	var (
		deleted int
		errs    []error
	)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := s.api.DeleteInterview(ctx, p.Token, id); err != nil {
			errs = append(errs, fmt.Errorf("interview %s: %w", id, err))
			continue
		}
		deleted++
	}

	if deleted > 0 {
		s.changed(ctx, p, "deleted", "")
	}
	if len(errs) > 0 {
		s.log.Warn("InterviewService", "bulk delete partially failed", map[string]interface{}{
			"requested": len(ids),
			"deleted":   deleted,
		})
	}
	return deleted, errors.Join(errs...)
}

func (s *interviewService) AssignAgent(ctx context.Context, p Principal, id string, form dto.AssignAgentForm) error {
	if err := s.api.AssignAgent(ctx, p.Token, id, form.Payload()); err != nil {
		return err
	}
	s.changed(ctx, p, "agent_assigned", id)
	return nil
}

func (s *interviewService) changed(ctx context.Context, p Principal, action, id string) {
	s.refresh.CollectionChanged(ctx, ChangeNotice{
		Scope:      p.Scope(),
		Collection: CollectionInterviews,
		Action:     action,
		ID:         id,
	})
}
