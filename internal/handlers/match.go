package handlers

import (
	"github.com/dimitrije/league-api/internal/services"
	"github.com/dimitrije/league-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type MatchHandler struct {
	matchService MatchServiceInterface
}

func NewMatchHandler(matchService MatchServiceInterface) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Create(c *drift.Context) {
	var req dto.CreateMatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.InvitingTeamID == uuid.Nil || req.GuestTeamID == uuid.Nil {
		c.BadRequest("inviting_team_id and guest_team_id are required")
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), services.CreateMatchParams{
		InvitingTeamID: req.InvitingTeamID,
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

func (h *MatchHandler) Get(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	match, err := h.matchService.GetByID(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err, "get match")
		return
	}

	_ = c.JSON(200, matchResponse(match))
}

func (h *MatchHandler) Start(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	match, err := h.matchService.Start(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err, "start match")
		return
	}

	_ = c.JSON(200, matchResponse(match))
}

// Propose submits one team's claimed result. Disagreement with the other
// side still answers 200; the response shows both slots.
func (h *MatchHandler) Propose(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	var req dto.ProposeScoreRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.TeamID == uuid.Nil {
		c.BadRequest("team_id is required")
		return
	}
	if req.MyScore == nil || req.OpponentScore == nil {
		c.BadRequest("my_score and opponent_score are required")
		return
	}

	match, err := h.matchService.Propose(c.Request.Context(), services.ProposeParams{
		MatchID:       matchID,
		TeamID:        req.TeamID,
		MyScore:       *req.MyScore,
		OpponentScore: *req.OpponentScore,
		Note:          req.Note,
	})
	if err != nil {
		respondError(c, err, "submit proposition")
		return
	}

	_ = c.JSON(200, matchResponse(match))
}

func (h *MatchHandler) History(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	history, err := h.matchService.History(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err, "get propositions")
		return
	}

	response := make([]*dto.PropositionResponse, len(history))
	for i := range history {
		response[i] = propositionResponse(&history[i])
	}

	_ = c.JSON(200, response)
}

func (h *MatchHandler) AddEvent(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	event, err := h.matchService.AddEvent(c.Request.Context(), matchID, req.EventType, req.Description)
	if err != nil {
		respondError(c, err, "create event")
		return
	}

	_ = c.JSON(201, eventResponse(event))
}

func (h *MatchHandler) Events(c *drift.Context) {
	matchID, ok := parseID(c, "id", "invalid match id")
	if !ok {
		return
	}

	events, err := h.matchService.Events(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err, "get events")
		return
	}

	response := make([]dto.EventResponse, len(events))
	for i := range events {
		response[i] = eventResponse(&events[i])
	}

	_ = c.JSON(200, response)
}
