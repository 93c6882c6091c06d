package handlers

import (
	"log"

	"github.com/dimitrije/league-api/internal/apperrors"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondError maps a service error onto an HTTP status. Unknown failures are
// logged and hidden behind a generic message.
func respondError(c *drift.Context, err error, action string) {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeNotFound:
		c.NotFound(apperrors.MessageOf(err))
	case apperrors.CodeValidation, apperrors.CodeConflict:
		c.BadRequest(apperrors.MessageOf(err))
	default:
		log.Printf("failed to %s: %v", action, err)
		c.InternalServerError("failed to " + action)
	}
}

func parseID(c *drift.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.BadRequest(message)
		return uuid.Nil, false
	}
	return id, true
}
