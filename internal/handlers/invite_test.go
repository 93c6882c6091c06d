package handlers

import (
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
	"github.com/stretchr/testify/require"
)

func setupInviteTest(t *testing.T) (*testutil.MockInviteService, *InviteHandler) {
	t.Helper()
	mockInviteService := new(testutil.MockInviteService)
	return mockInviteService, NewInviteHandler(mockInviteService)
}

func TestInviteHandler_CreateInvite_Success(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	teamID, playerID := uuid.New(), uuid.New()
	invite := &models.PlayerInvite{ID: uuid.New(), PlayerID: playerID, TeamID: teamID, CreatedAt: time.Now()}
	mockInviteService.On("CreateInvite", mock.Anything, teamID, playerID, (*time.Time)(nil)).Return(invite, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/invites", handler.CreateInvite))
	rec := client.POST("/teams/"+teamID.String()+"/invites", dto.CreateInviteRequest{PlayerID: playerID})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.InviteResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, invite.ID, response.ID)
	assert.Equal(t, teamID, response.TeamID)
}

func TestInviteHandler_CreateInvite_MissingPlayer(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/invites", handler.CreateInvite))
	rec := client.POST("/teams/"+uuid.New().String()+"/invites", dto.CreateInviteRequest{})

	testutil.AssertError(t, rec, http.StatusBadRequest, "player_id is required")
	mockInviteService.AssertNotCalled(t, "CreateInvite", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInviteHandler_CreateInvite_AlreadyOnTeam(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	teamID, playerID := uuid.New(), uuid.New()
	mockInviteService.On("CreateInvite", mock.Anything, teamID, playerID, (*time.Time)(nil)).Return(nil, services.ErrAlreadyOnTeam)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/invites", handler.CreateInvite))
	rec := client.POST("/teams/"+teamID.String()+"/invites", dto.CreateInviteRequest{PlayerID: playerID})

	testutil.AssertError(t, rec, http.StatusBadRequest, "player is already on this team")
}

func TestInviteHandler_AcceptInvite(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	inviteID := uuid.New()
	teamID := uuid.New()
	player := &models.Player{ID: uuid.New(), UserID: uuid.New(), TeamID: &teamID}
	mockInviteService.On("AcceptInvite", mock.Anything, inviteID).Return(player, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/invites/:id/accept", handler.AcceptInvite))
	rec := client.POST("/invites/"+inviteID.String()+"/accept", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.PlayerResponse
	testutil.ParseJSON(t, rec, &response)
	require.NotNil(t, response.TeamID)
	assert.Equal(t, teamID, *response.TeamID)
}

func TestInviteHandler_AcceptInvite_NotFound(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	inviteID := uuid.New()
	mockInviteService.On("AcceptInvite", mock.Anything, inviteID).Return(nil, services.ErrInviteNotFound)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/invites/:id/accept", handler.AcceptInvite))
	rec := client.POST("/invites/"+inviteID.String()+"/accept", nil)

	testutil.AssertError(t, rec, http.StatusNotFound, "invite not found")
}

func TestInviteHandler_DeclineInvite(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	inviteID := uuid.New()
	mockInviteService.On("DeclineInvite", mock.Anything, inviteID).Return(nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/invites/:id/decline", handler.DeclineInvite))
	rec := client.POST("/invites/"+inviteID.String()+"/decline", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "invite declined")
}

func TestInviteHandler_CreateRequest(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	teamID, playerID := uuid.New(), uuid.New()
	message := "I play left wing"
	joinReq := &models.TeamRequest{
		ID: uuid.New(), PlayerID: playerID, TeamID: teamID,
		Status: models.RequestStatusPending, Message: &message,
	}
	mockInviteService.On("CreateRequest", mock.Anything, teamID, playerID, &message, (*time.Time)(nil)).Return(joinReq, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/requests", handler.CreateRequest))
	rec := client.POST("/teams/"+teamID.String()+"/requests", dto.CreateJoinRequest{PlayerID: playerID, Message: &message})

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.JoinRequestResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, models.RequestStatusPending, response.Status)
	require.NotNil(t, response.Message)
	assert.Equal(t, message, *response.Message)
}

func TestInviteHandler_CreateRequest_UnknownPlayer(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	teamID, playerID := uuid.New(), uuid.New()
	mockInviteService.On("CreateRequest", mock.Anything, teamID, playerID, (*string)(nil), (*time.Time)(nil)).Return(nil, services.ErrInvalidPlayer)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/teams/:id/requests", handler.CreateRequest))
	rec := client.POST("/teams/"+teamID.String()+"/requests", dto.CreateJoinRequest{PlayerID: playerID})

	testutil.AssertError(t, rec, http.StatusBadRequest, "player not found")
}

func TestInviteHandler_ListRequests(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	teamID := uuid.New()
	requests := []models.TeamRequest{
		{ID: uuid.New(), PlayerID: uuid.New(), TeamID: teamID, Status: models.RequestStatusPending},
		{ID: uuid.New(), PlayerID: uuid.New(), TeamID: teamID, Status: models.RequestStatusPending},
	}
	mockInviteService.On("GetTeamPendingRequests", mock.Anything, teamID).Return(requests, nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodGet, "/teams/:id/requests", handler.ListRequests))
	rec := client.GET("/teams/" + teamID.String() + "/requests")

	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.JoinRequestResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Len(t, response, 2)
}

func TestInviteHandler_AcceptRequest_NotPending(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	requestID := uuid.New()
	mockInviteService.On("AcceptRequest", mock.Anything, requestID).Return(nil, services.ErrRequestNotPending)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/requests/:id/accept", handler.AcceptRequest))
	rec := client.POST("/requests/"+requestID.String()+"/accept", nil)

	testutil.AssertError(t, rec, http.StatusBadRequest, "Invalid status")
}

func TestInviteHandler_DeclineRequest(t *testing.T) {
	mockInviteService, handler := setupInviteTest(t)

	requestID := uuid.New()
	mockInviteService.On("DeclineRequest", mock.Anything, requestID).Return(nil)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/requests/:id/decline", handler.DeclineRequest))
	rec := client.POST("/requests/"+requestID.String()+"/decline", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "request declined")
}

func TestInviteHandler_DeclineRequest_InvalidID(t *testing.T) {
	_, handler := setupInviteTest(t)

	client := testutil.NewHTTPTestClient(t, newRouter(http.MethodPost, "/requests/:id/decline", handler.DeclineRequest))
	rec := client.POST("/requests/abc/decline", nil)

	testutil.AssertError(t, rec, http.StatusBadRequest, "invalid request id")
}
