package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesCategorySentinel(t *testing.T) {
	errMatch := NotFound("match not found")
	wrapped := fmt.Errorf("load match: %w", errMatch)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, errMatch)
	assert.NotErrorIs(t, wrapped, ErrValidation)
	assert.NotErrorIs(t, wrapped, ErrConflict)
}

func TestIs_SpecificSentinelsDoNotCrossMatch(t *testing.T) {
	errMatch := NotFound("match not found")
	errTeam := NotFound("team not found")

	assert.NotErrorIs(t, errMatch, errTeam)
	assert.NotErrorIs(t, ErrNotFound, errTeam)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"validation", Validation("bad score"), CodeValidation},
		{"wrapped conflict", fmt.Errorf("accept: %w", Conflict("already resolved")), CodeConflict},
		{"plain error", errors.New("boom"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestWrap_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeUnknown, "storage failure", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage failure", err.Error())
	assert.Equal(t, "storage failure", MessageOf(fmt.Errorf("x: %w", err)))
	assert.Equal(t, "", MessageOf(cause))
}

func TestError_EmptyMessageFallsBackToCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", ErrNotFound.Error())
}
