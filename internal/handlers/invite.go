package handlers

import (
	"github.com/dimitrije/league-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// InviteHandler serves both directions of team membership: invites sent by a
// team and join requests sent by a player.
type InviteHandler struct {
	inviteService InviteServiceInterface
}

func NewInviteHandler(inviteService InviteServiceInterface) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

func (h *InviteHandler) CreateInvite(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req dto.CreateInviteRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.PlayerID == uuid.Nil {
		c.BadRequest("player_id is required")
		return
	}

	invite, err := h.inviteService.CreateInvite(c.Request.Context(), teamID, req.PlayerID, req.ExpireDate)
	if err != nil {
		respondError(c, err, "create invite")
		return
	}

	_ = c.JSON(201, inviteResponse(invite))
}

func (h *InviteHandler) AcceptInvite(c *drift.Context) {
	inviteID, ok := parseID(c, "id", "invalid invite id")
	if !ok {
		return
	}

	player, err := h.inviteService.AcceptInvite(c.Request.Context(), inviteID)
	if err != nil {
		respondError(c, err, "accept invite")
		return
	}

	_ = c.JSON(200, playerResponse(player))
}

func (h *InviteHandler) DeclineInvite(c *drift.Context) {
	inviteID, ok := parseID(c, "id", "invalid invite id")
	if !ok {
		return
	}

	if err := h.inviteService.DeclineInvite(c.Request.Context(), inviteID); err != nil {
		respondError(c, err, "decline invite")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "invite declined"})
}

func (h *InviteHandler) CreateRequest(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req dto.CreateJoinRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.PlayerID == uuid.Nil {
		c.BadRequest("player_id is required")
		return
	}

	joinReq, err := h.inviteService.CreateRequest(c.Request.Context(), teamID, req.PlayerID, req.Message, req.ExpireDate)
	if err != nil {
		respondError(c, err, "create request")
		return
	}

	_ = c.JSON(201, joinRequestResponse(joinReq))
}

func (h *InviteHandler) ListRequests(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	requests, err := h.inviteService.GetTeamPendingRequests(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err, "get requests")
		return
	}

	response := make([]dto.JoinRequestResponse, len(requests))
	for i := range requests {
		response[i] = joinRequestResponse(&requests[i])
	}

	_ = c.JSON(200, response)
}

func (h *InviteHandler) AcceptRequest(c *drift.Context) {
	requestID, ok := parseID(c, "id", "invalid request id")
	if !ok {
		return
	}

	player, err := h.inviteService.AcceptRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err, "accept request")
		return
	}

	_ = c.JSON(200, playerResponse(player))
}

func (h *InviteHandler) DeclineRequest(c *drift.Context) {
	requestID, ok := parseID(c, "id", "invalid request id")
	if !ok {
		return
	}

	if err := h.inviteService.DeclineRequest(c.Request.Context(), requestID); err != nil {
		respondError(c, err, "decline request")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "request declined"})
}
