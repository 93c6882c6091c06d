package services

import (
	"errors"

	"github.com/dimitrije/league-api/internal/apperrors"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound    = apperrors.NotFound("user not found")
	ErrPlayerNotFound  = apperrors.NotFound("player not found")
	ErrTeamNotFound    = apperrors.NotFound("team not found")
	ErrMatchNotFound   = apperrors.NotFound("match not found")
	ErrInviteNotFound  = apperrors.NotFound("invite not found")
	ErrRequestNotFound = apperrors.NotFound("request not found")

	ErrNameRequired     = apperrors.Validation("name is required")
	ErrInvalidPlayer    = apperrors.Validation("player not found")
	ErrNotOnTeam        = apperrors.Validation("player is not on a team")
	ErrEventTypeMissing = apperrors.Validation("event type is required")
	ErrInvalidFilter    = apperrors.Validation("filter must be one of all, played, planned")

	ErrRequestNotPending = apperrors.Conflict("Invalid status")
	ErrMatchNotPending   = apperrors.Conflict("match is not pending")
	ErrAlreadyOnTeam     = apperrors.Conflict("player is already on this team")
)

// notFound maps pgx.ErrNoRows to the given sentinel and passes other errors through.
func notFound(err error, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}
