package service

import (
	"context"

	"recruai-web/internal/dto"
)

type OrganizationAPI interface {
	ListOrganizations(ctx context.Context, token string) ([]dto.Record, error)
	ListUsers(ctx context.Context, token string) ([]dto.Record, error)
	GetAnalytics(ctx context.Context, token, orgID string) (dto.Record, error)
}

type IOrganizationService interface {
	Directory(ctx context.Context, p Principal) ([]dto.Record, error)
	Candidates(ctx context.Context, p Principal) ([]dto.Record, error)
	Analytics(ctx context.Context, p Principal) (dto.Record, error)
}

type organizationService struct {
	api OrganizationAPI
}

func NewOrganizationService(api OrganizationAPI) IOrganizationService {
	return &organizationService{api: api}
}

func (s *organizationService) Directory(ctx context.Context, p Principal) ([]dto.Record, error) {
	return s.api.ListOrganizations(ctx, p.Token)
}

// Candidates is the user directory as an organization sees it.
func (s *organizationService) Candidates(ctx context.Context, p Principal) ([]dto.Record, error) {
	return s.api.ListUsers(ctx, p.Token)
}

func (s *organizationService) Analytics(ctx context.Context, p Principal) (dto.Record, error) {
	orgID, err := p.OrganizationID()
	if err != nil {
		return nil, err
	}
	return s.api.GetAnalytics(ctx, p.Token, orgID)
}
