package handlers

import (
	"context"
	"time"

	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	CreatePlayer(ctx context.Context, name, surname, mail string) (*models.Player, error)
}

// PlayerServiceInterface defines the methods used by handlers from PlayerService
type PlayerServiceInterface interface {
	GetByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	LeaveTeam(ctx context.Context, playerID uuid.UUID) error
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	Create(ctx context.Context, name string, isPublic bool) (*models.Team, error)
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, teamID uuid.UUID, name *string, isPublic *bool) (*models.Team, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
	Matches(ctx context.Context, teamID uuid.UUID, filter models.MatchFilter) ([]models.Match, error)
}

// MatchServiceInterface defines the methods used by handlers from MatchService
type MatchServiceInterface interface {
	Create(ctx context.Context, p services.CreateMatchParams) (*models.Match, error)
	GetByID(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	Start(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	Propose(ctx context.Context, p services.ProposeParams) (*models.Match, error)
	History(ctx context.Context, matchID uuid.UUID) ([]models.ScoreProposition, error)
	AddEvent(ctx context.Context, matchID uuid.UUID, eventType string, description *string) (*models.MatchEvent, error)
	Events(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error)
}

// InviteServiceInterface defines the methods used by handlers from InviteService
type InviteServiceInterface interface {
	CreateInvite(ctx context.Context, teamID, playerID uuid.UUID, expireDate *time.Time) (*models.PlayerInvite, error)
	GetPlayerInvites(ctx context.Context, playerID uuid.UUID) ([]models.PlayerInvite, error)
	AcceptInvite(ctx context.Context, inviteID uuid.UUID) (*models.Player, error)
	DeclineInvite(ctx context.Context, inviteID uuid.UUID) error
	CreateRequest(ctx context.Context, teamID, playerID uuid.UUID, message *string, expireDate *time.Time) (*models.TeamRequest, error)
	GetTeamPendingRequests(ctx context.Context, teamID uuid.UUID) ([]models.TeamRequest, error)
	AcceptRequest(ctx context.Context, requestID uuid.UUID) (*models.Player, error)
	DeclineRequest(ctx context.Context, requestID uuid.UUID) error
}

// Ensure concrete types implement interfaces
var (
	_ UserServiceInterface   = (*services.UserService)(nil)
	_ PlayerServiceInterface = (*services.PlayerService)(nil)
	_ TeamServiceInterface   = (*services.TeamService)(nil)
	_ MatchServiceInterface  = (*services.MatchService)(nil)
	_ InviteServiceInterface = (*services.InviteService)(nil)
)
