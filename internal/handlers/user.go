package handlers

import (
	"github.com/dimitrije/league-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type UserHandler struct {
	userService   UserServiceInterface
	playerService PlayerServiceInterface
	inviteService InviteServiceInterface
}

func NewUserHandler(userService UserServiceInterface, playerService PlayerServiceInterface, inviteService InviteServiceInterface) *UserHandler {
	return &UserHandler{
		userService:   userService,
		playerService: playerService,
		inviteService: inviteService,
	}
}

// Register creates a user and the player record that represents them.
func (h *UserHandler) Register(c *drift.Context) {
	var req dto.CreatePlayerRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Surname == "" || req.Mail == "" {
		c.BadRequest("name, surname and mail are required")
		return
	}

	player, err := h.userService.CreatePlayer(c.Request.Context(), req.Name, req.Surname, req.Mail)
	if err != nil {
		respondError(c, err, "create player")
		return
	}

	_ = c.JSON(201, playerResponse(player))
}

func (h *UserHandler) GetPlayer(c *drift.Context) {
	playerID, ok := parseID(c, "id", "invalid player id")
	if !ok {
		return
	}

	player, err := h.playerService.GetByID(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, err, "get player")
		return
	}

	_ = c.JSON(200, playerResponse(player))
}

func (h *UserHandler) LeaveTeam(c *drift.Context) {
	playerID, ok := parseID(c, "id", "invalid player id")
	if !ok {
		return
	}

	if err := h.playerService.LeaveTeam(c.Request.Context(), playerID); err != nil {
		respondError(c, err, "leave team")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "left team"})
}

func (h *UserHandler) Invites(c *drift.Context) {
	playerID, ok := parseID(c, "id", "invalid player id")
	if !ok {
		return
	}

	if _, err := h.playerService.GetByID(c.Request.Context(), playerID); err != nil {
		respondError(c, err, "get player")
		return
	}

	invites, err := h.inviteService.GetPlayerInvites(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, err, "get invites")
		return
	}

	response := make([]dto.InviteResponse, len(invites))
	for i := range invites {
		response[i] = inviteResponse(&invites[i])
	}

	_ = c.JSON(200, response)
}
