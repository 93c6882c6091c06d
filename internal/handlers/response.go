package handlers

import (
	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/pkg/dto"
)

func teamResponse(t *models.Team) dto.TeamResponse {
	return dto.TeamResponse{
		ID:       t.ID,
		Name:     t.Name,
		IsPublic: t.IsPublic,
		Score:    t.Score,
	}
}

func playerResponse(p *models.Player) dto.PlayerResponse {
	resp := dto.PlayerResponse{
		ID:     p.ID,
		UserID: p.UserID,
		TeamID: p.TeamID,
	}
	if p.User != nil {
		resp.User = &dto.UserResponse{
			ID:      p.User.ID,
			Name:    p.User.Name,
			Surname: p.User.Surname,
			Mail:    p.User.Mail,
		}
	}
	return resp
}

func propositionResponse(p *models.ScoreProposition) *dto.PropositionResponse {
	if p == nil {
		return nil
	}
	return &dto.PropositionResponse{
		ID:               p.ID,
		Side:             string(p.Side),
		SuggestingTeamID: p.TeamID,
		InvitingScore:    p.InvitingScore,
		GuestScore:       p.GuestScore,
		Note:             p.Note,
		CreatedAt:        p.CreatedAt,
	}
}

func matchResponse(m *models.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:               m.ID,
		Status:           m.Status,
		InvitingTeamID:   m.InvitingTeamID,
		GuestTeamID:      m.GuestTeamID,
		InvitingScore:    m.InvitingScore,
		GuestScore:       m.GuestScore,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		ExpiresAt:        m.ExpiresAt,
		SuggestedAt:      m.SuggestedAt,
		HostProposition:  propositionResponse(m.HostProposition),
		GuestProposition: propositionResponse(m.GuestProposition),
	}
}

func eventResponse(e *models.MatchEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		MatchID:     e.MatchID,
		EventType:   e.EventType,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func inviteResponse(i *models.PlayerInvite) dto.InviteResponse {
	return dto.InviteResponse{
		ID:         i.ID,
		PlayerID:   i.PlayerID,
		TeamID:     i.TeamID,
		ExpireDate: i.ExpireDate,
		CreatedAt:  i.CreatedAt,
	}
}

func joinRequestResponse(r *models.TeamRequest) dto.JoinRequestResponse {
	return dto.JoinRequestResponse{
		ID:         r.ID,
		PlayerID:   r.PlayerID,
		TeamID:     r.TeamID,
		Status:     r.Status,
		Message:    r.Message,
		ExpireDate: r.ExpireDate,
		CreatedAt:  r.CreatedAt,
	}
}
