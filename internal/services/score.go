package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/google/uuid"
)

// recomputeScores rewrites each team's cached score from its settled matches.
// Team rows are locked in id order with FOR NO KEY UPDATE, which does not
// conflict with the key-share locks that foreign key checks on propositions
// already hold. It must run inside a transaction.
func recomputeScores(ctx context.Context, q database.Querier, teamIDs ...uuid.UUID) (map[uuid.UUID]int, error) {
	ids := uniqueSorted(teamIDs)
	scores := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return scores, nil
	}

	for _, id := range ids {
		if _, err := q.Exec(ctx, `SELECT id FROM teams WHERE id = $1 FOR NO KEY UPDATE`, id); err != nil {
			return nil, fmt.Errorf("failed to lock team %s: %w", id, err)
		}
	}

	for _, id := range ids {
		var score int
		err := q.QueryRow(ctx, `
			UPDATE teams SET score = (
				SELECT COALESCE(SUM(inviting_score), 0) FROM matches
				WHERE inviting_team_id = $1 AND inviting_score IS NOT NULL AND guest_score IS NOT NULL
			) + (
				SELECT COALESCE(SUM(guest_score), 0) FROM matches
				WHERE guest_team_id = $1 AND inviting_score IS NOT NULL AND guest_score IS NOT NULL
			), updated_at = NOW()
			WHERE id = $1
			RETURNING score
		`, id).Scan(&score)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute score for team %s: %w", id, notFound(err, ErrTeamNotFound))
		}
		scores[id] = score
	}
	return scores, nil
}

func uniqueSorted(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}
