package service

import (
	"context"

	"recruai-web/internal/dto"
)

type PipelineAPI interface {
	GetPipeline(ctx context.Context, token, orgID string) ([]dto.Stage, error)
	Decide(ctx context.Context, token, orgID, interviewID string, payload map[string]interface{}) error
}

type IPipelineService interface {
	Board(ctx context.Context, p Principal) ([]dto.Stage, error)
	Decide(ctx context.Context, p Principal, interviewID string, form dto.DecisionForm) error
}

type pipelineService struct {
	api     PipelineAPI
	refresh IRefreshPublisher
}

func NewPipelineService(api PipelineAPI, refresh IRefreshPublisher) IPipelineService {
	return &pipelineService{api: api, refresh: refresh}
}

func (s *pipelineService) Board(ctx context.Context, p Principal) ([]dto.Stage, error) {
	orgID, err := p.OrganizationID()
	if err != nil {
		return nil, err
	}
	return s.api.GetPipeline(ctx, p.Token, orgID)
}

// Decide records a hiring decision. Both the board and the interview list show
// the outcome, so both are announced as changed.
func (s *pipelineService) Decide(ctx context.Context, p Principal, interviewID string, form dto.DecisionForm) error {
	orgID, err := p.OrganizationID()
	if err != nil {
		return err
	}
	if err := s.api.Decide(ctx, p.Token, orgID, interviewID, form.Payload()); err != nil {
		return err
	}
	for _, collection := range []string{CollectionPipeline, CollectionInterviews} {
		s.refresh.CollectionChanged(ctx, ChangeNotice{
			Scope:      p.Scope(),
			Collection: collection,
			Action:     "decided",
			ID:         interviewID,
		})
	}
	return nil
}
