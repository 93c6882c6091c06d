package testutil

import (
	"context"
	"time"

	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreatePlayer(ctx context.Context, name, surname, mail string) (*models.Player, error) {
	args := m.Called(ctx, name, surname, mail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

// MockPlayerService mocks the PlayerService
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) GetByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerService) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *MockPlayerService) LeaveTeam(ctx context.Context, playerID uuid.UUID) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

// MockTeamService mocks the TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(ctx context.Context, name string, isPublic bool) (*models.Team, error) {
	args := m.Called(ctx, name, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) List(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, teamID uuid.UUID, name *string, isPublic *bool) (*models.Team, error) {
	args := m.Called(ctx, teamID, name, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamService) Matches(ctx context.Context, teamID uuid.UUID, filter models.MatchFilter) ([]models.Match, error) {
	args := m.Called(ctx, teamID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Match), args.Error(1)
}

// MockMatchService mocks the MatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Create(ctx context.Context, p services.CreateMatchParams) (*models.Match, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) GetByID(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) Start(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) Propose(ctx context.Context, p services.ProposeParams) (*models.Match, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) History(ctx context.Context, matchID uuid.UUID) ([]models.ScoreProposition, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScoreProposition), args.Error(1)
}

func (m *MockMatchService) AddEvent(ctx context.Context, matchID uuid.UUID, eventType string, description *string) (*models.MatchEvent, error) {
	args := m.Called(ctx, matchID, eventType, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchEvent), args.Error(1)
}

func (m *MockMatchService) Events(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchEvent), args.Error(1)
}

// MockInviteService mocks the InviteService
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) CreateInvite(ctx context.Context, teamID, playerID uuid.UUID, expireDate *time.Time) (*models.PlayerInvite, error) {
	args := m.Called(ctx, teamID, playerID, expireDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerInvite), args.Error(1)
}

func (m *MockInviteService) GetPlayerInvites(ctx context.Context, playerID uuid.UUID) ([]models.PlayerInvite, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerInvite), args.Error(1)
}

func (m *MockInviteService) AcceptInvite(ctx context.Context, inviteID uuid.UUID) (*models.Player, error) {
	args := m.Called(ctx, inviteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockInviteService) DeclineInvite(ctx context.Context, inviteID uuid.UUID) error {
	args := m.Called(ctx, inviteID)
	return args.Error(0)
}

func (m *MockInviteService) CreateRequest(ctx context.Context, teamID, playerID uuid.UUID, message *string, expireDate *time.Time) (*models.TeamRequest, error) {
	args := m.Called(ctx, teamID, playerID, message, expireDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamRequest), args.Error(1)
}

func (m *MockInviteService) GetTeamPendingRequests(ctx context.Context, teamID uuid.UUID) ([]models.TeamRequest, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamRequest), args.Error(1)
}

func (m *MockInviteService) AcceptRequest(ctx context.Context, requestID uuid.UUID) (*models.Player, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockInviteService) DeclineRequest(ctx context.Context, requestID uuid.UUID) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}
