package handlers

import (
	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/dimitrije/league-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type TeamHandler struct {
	teamService   TeamServiceInterface
	playerService PlayerServiceInterface
	matchService  MatchServiceInterface
}

func NewTeamHandler(teamService TeamServiceInterface, playerService PlayerServiceInterface, matchService MatchServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:   teamService,
		playerService: playerService,
		matchService:  matchService,
	}
}

func (h *TeamHandler) Create(c *drift.Context) {
	var req dto.CreateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	team, err := h.teamService.Create(c.Request.Context(), req.Name, isPublic)
	if err != nil {
		respondError(c, err, "create team")
		return
	}

	_ = c.JSON(201, teamResponse(team))
}

func (h *TeamHandler) List(c *drift.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "get teams")
		return
	}

	response := make([]dto.TeamResponse, len(teams))
	for i := range teams {
		response[i] = teamResponse(&teams[i])
	}

	_ = c.JSON(200, response)
}

func (h *TeamHandler) Get(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err, "get team")
		return
	}

	_ = c.JSON(200, teamResponse(team))
}

func (h *TeamHandler) Update(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), teamID, req.Name, req.IsPublic)
	if err != nil {
		respondError(c, err, "update team")
		return
	}

	_ = c.JSON(200, teamResponse(team))
}

func (h *TeamHandler) Delete(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), teamID); err != nil {
		respondError(c, err, "delete team")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "team deleted"})
}

func (h *TeamHandler) Players(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	if _, err := h.teamService.GetByID(c.Request.Context(), teamID); err != nil {
		respondError(c, err, "get team")
		return
	}

	players, err := h.playerService.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err, "get players")
		return
	}

	response := make([]dto.PlayerResponse, len(players))
	for i := range players {
		response[i] = playerResponse(&players[i])
	}

	_ = c.JSON(200, response)
}

// Matches serves the all/played/planned views, defaulting to all.
func (h *TeamHandler) Matches(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	filter := models.MatchFilter(c.QueryParam("filter"))
	if filter == "" {
		filter = models.MatchFilterAll
	}

	matches, err := h.teamService.Matches(c.Request.Context(), teamID, filter)
	if err != nil {
		respondError(c, err, "get matches")
		return
	}

	response := make([]dto.MatchResponse, len(matches))
	for i := range matches {
		response[i] = matchResponse(&matches[i])
	}

	_ = c.JSON(200, response)
}

// Challenge opens a match with the path team as the inviting side.
func (h *TeamHandler) Challenge(c *drift.Context) {
	teamID, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req dto.ChallengeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), services.CreateMatchParams{
		InvitingTeamID: teamID,
		GuestTeamID:    req.GuestTeamID,
		CreatedAt:      req.CreatedAt,
		ExpiresAt:      req.ExpiresAt,
		SuggestedAt:    req.SuggestedAt,
	})
	if err != nil {
		respondError(c, err, "create match")
		return
	}

	_ = c.JSON(201, matchResponse(match))
}
