package service

import (
	"context"

	"recruai-web/internal/dto"
)

type TeamAPI interface {
	ListTeamMembers(ctx context.Context, token, orgID string) ([]dto.Record, error)
	InviteMember(ctx context.Context, token, orgID string, payload map[string]interface{}) error
	UpdateMember(ctx context.Context, token, orgID, memberID string, payload map[string]interface{}) error
	RemoveMember(ctx context.Context, token, orgID, memberID string) error
}

type ITeamService interface {
	Members(ctx context.Context, p Principal) ([]dto.Record, error)
	Invite(ctx context.Context, p Principal, form dto.InviteForm) error
	Update(ctx context.Context, p Principal, memberID string, form dto.MemberUpdateForm) error
	Remove(ctx context.Context, p Principal, memberID string) error
}

type teamService struct {
	api     TeamAPI
	refresh IRefreshPublisher
}

func NewTeamService(api TeamAPI, refresh IRefreshPublisher) ITeamService {
	return &teamService{api: api, refresh: refresh}
}

func (s *teamService) Members(ctx context.Context, p Principal) ([]dto.Record, error) {
	orgID, err := p.OrganizationID()
	if err != nil {
		return nil, err
	}
	return s.api.ListTeamMembers(ctx, p.Token, orgID)
}

func (s *teamService) Invite(ctx context.Context, p Principal, form dto.InviteForm) error {
	orgID, err := p.OrganizationID()
	if err != nil {
		return err
	}
	if err := s.api.InviteMember(ctx, p.Token, orgID, form.Payload()); err != nil {
		return err
	}
	s.changed(ctx, p, "invited", "")
	return nil
}

func (s *teamService) Update(ctx context.Context, p Principal, memberID string, form dto.MemberUpdateForm) error {
	orgID, err := p.OrganizationID()
	if err != nil {
		return err
	}
	if err := s.api.UpdateMember(ctx, p.Token, orgID, memberID, form.Payload()); err != nil {
		return err
	}
	s.changed(ctx, p, "updated", memberID)
	return nil
}

func (s *teamService) Remove(ctx context.Context, p Principal, memberID string) error {
	orgID, err := p.OrganizationID()
	if err != nil {
		return err
	}
	if err := s.api.RemoveMember(ctx, p.Token, orgID, memberID); err != nil {
		return err
	}
	s.changed(ctx, p, "removed", memberID)
	return nil
}

func (s *teamService) changed(ctx context.Context, p Principal, action, id string) {
	s.refresh.CollectionChanged(ctx, ChangeNotice{
		Scope:      p.Scope(),
		Collection: CollectionTeam,
		Action:     action,
		ID:         id,
	})
}
