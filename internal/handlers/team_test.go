package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/dimitrije/league-api/pkg/dto"
	"github.com/dimitrije/league-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTeamTest(t *testing.T) (*testutil.MockTeamService, *testutil.MockPlayerService, *testutil.MockMatchService, *TeamHandler) {
	t.Helper()
	mockTeamService := new(testutil.MockTeamService)
	mockPlayerService := new(testutil.MockPlayerService)
	mockMatchService := new(testutil.MockMatchService)
	handler := NewTeamHandler(mockTeamService, mockPlayerService, mockMatchService)
	return mockTeamService, mockPlayerService, mockMatchService, handler
}

func TestTeamHandler_Create_Success(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	team := &models.Team{ID: uuid.New(), Name: "Red Lions", IsPublic: false}
	mockTeamService.On("Create", mock.Anything, "Red Lions", false).Return(team, nil)

	isPublic := false
	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams", handler.Create))
	rec := client.POST("/teams", dto.CreateTeamRequest{Name: "Red Lions", IsPublic: &isPublic})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.TeamResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, team.ID, response.ID)
	assert.Equal(t, "Red Lions", response.Name)
	assert.False(t, response.IsPublic)
	assert.Equal(t, 0, response.Score)

	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Create_DefaultsToPublic(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	team := &models.Team{ID: uuid.New(), Name: "Red Lions", IsPublic: true}
	mockTeamService.On("Create", mock.Anything, "Red Lions", true).Return(team, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams", handler.Create))
	rec := client.POST("/teams", dto.CreateTeamRequest{Name: "Red Lions"})

	testutil.AssertStatus(t, rec, http.StatusCreated)
	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Create_EmptyName(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams", handler.Create))
	rec := client.POST("/teams", dto.CreateTeamRequest{})

	testutil.AssertError(t, rec, http.StatusBadRequest, "name is required")
	mockTeamService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamHandler_Get_Success(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	team := &models.Team{ID: uuid.New(), Name: "Red Lions", IsPublic: true, Score: 12}
	mockTeamService.On("GetByID", mock.Anything, team.ID).Return(team, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id", handler.Get))
	rec := client.GET("/teams/" + team.ID.String())

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.TeamResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, 12, response.Score)
}

func TestTeamHandler_Get_NotFound(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	mockTeamService.On("GetByID", mock.Anything, teamID).Return(nil, services.ErrTeamNotFound)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id", handler.Get))
	rec := client.GET("/teams/" + teamID.String())

	testutil.AssertError(t, rec, http.StatusNotFound, "team not found")
}

func TestTeamHandler_Get_InvalidID(t *testing.T) {
	_, _, _, handler := setupTeamTest(t)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id", handler.Get))
	rec := client.GET("/teams/not-a-uuid")

	testutil.AssertError(t, rec, http.StatusBadRequest, "invalid team id")
}

func TestTeamHandler_List(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teams := []models.Team{
		{ID: uuid.New(), Name: "Red Lions", Score: 9},
		{ID: uuid.New(), Name: "Blue Sharks", Score: 4},
	}
	mockTeamService.On("List", mock.Anything).Return(teams, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams", handler.List))
	rec := client.GET("/teams")

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.TeamResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "Blue Sharks", response[1].Name)
}

func TestTeamHandler_List_StorageFailure(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	mockTeamService.On("List", mock.Anything).Return(nil, errors.New("connection reset"))

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams", handler.List))
	rec := client.GET("/teams")

	testutil.AssertError(t, rec, http.StatusInternalServerError, "failed to get teams")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestTeamHandler_Update(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	name := "Golden Lions"
	team := &models.Team{ID: teamID, Name: name, IsPublic: true, Score: 3}
	mockTeamService.On("Update", mock.Anything, teamID, &name, (*bool)(nil)).Return(team, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPatch, "/teams/:id", handler.Update))
	rec := client.PATCH("/teams/"+teamID.String(), map[string]any{"name": name})

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.TeamResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, name, response.Name)
	assert.Equal(t, 3, response.Score)
}

func TestTeamHandler_Delete(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	mockTeamService.On("Delete", mock.Anything, teamID).Return(nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodDelete, "/teams/:id", handler.Delete))
	rec := client.DELETE("/teams/" + teamID.String())

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "team deleted")
	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Players(t *testing.T) {
	mockTeamService, mockPlayerService, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	players := []models.Player{{
		ID:     uuid.New(),
		UserID: uuid.New(),
		TeamID: &teamID,
		User:   &models.User{Name: "Ana", Surname: "Petrovic", Mail: "ana@example.com"},
	}}
	mockTeamService.On("GetByID", mock.Anything, teamID).Return(&models.Team{ID: teamID}, nil)
	mockPlayerService.On("ListByTeam", mock.Anything, teamID).Return(players, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id/players", handler.Players))
	rec := client.GET("/teams/" + teamID.String() + "/players")

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.PlayerResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Len(t, response, 1)
	assert.Equal(t, "Ana", response[0].User.Name)
}

func TestTeamHandler_Matches_DefaultsToAll(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	mockTeamService.On("Matches", mock.Anything, teamID, models.MatchFilterAll).Return([]models.Match{}, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id/matches", handler.Matches))
	rec := client.GET("/teams/" + teamID.String() + "/matches")

	testutil.AssertStatus(t, rec, http.StatusOK)
	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Matches_Played(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	three, one := 3, 1
	matches := []models.Match{{
		ID: uuid.New(), Status: models.MatchStatusCompleted,
		InvitingTeamID: teamID, GuestTeamID: uuid.New(),
		InvitingScore: &three, GuestScore: &one,
	}}
	mockTeamService.On("Matches", mock.Anything, teamID, models.MatchFilterPlayed).Return(matches, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id/matches", handler.Matches))
	rec := client.GET("/teams/" + teamID.String() + "/matches?filter=played")

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.MatchResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Len(t, response, 1)
	assert.Equal(t, 3, *response[0].InvitingScore)
}

func TestTeamHandler_Matches_InvalidFilter(t *testing.T) {
	mockTeamService, _, _, handler := setupTeamTest(t)

	teamID := uuid.New()
	mockTeamService.On("Matches", mock.Anything, teamID, models.MatchFilter("soon")).Return(nil, services.ErrInvalidFilter)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id/matches", handler.Matches))
	rec := client.GET("/teams/" + teamID.String() + "/matches?filter=soon")

	testutil.AssertError(t, rec, http.StatusBadRequest, "filter must be one of")
}

func TestTeamHandler_Challenge(t *testing.T) {
	_, _, mockMatchService, handler := setupTeamTest(t)

	teamID := uuid.New()
	guestID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	match := &models.Match{ID: uuid.New(), Status: models.MatchStatusPending, InvitingTeamID: teamID, GuestTeamID: guestID, Version: 1, CreatedAt: createdAt}
	mockMatchService.On("Create", mock.Anything, services.CreateMatchParams{
		InvitingTeamID: teamID,
		GuestTeamID:    guestID,
		CreatedAt:      &createdAt,
	}).Return(match, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/challenge", handler.Challenge))
	rec := client.POST("/teams/"+teamID.String()+"/challenge", dto.ChallengeRequest{GuestTeamID: guestID, CreatedAt: &createdAt})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.MatchResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, match.ID, response.ID)
	assert.Equal(t, teamID, response.InvitingTeamID)
	assert.Nil(t, response.HostProposition)
	assert.True(t, createdAt.Equal(response.CreatedAt))
	mockMatchService.AssertExpectations(t)
}
