package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dimitrije/league-api/internal/config"
	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/google/uuid"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: recompute-scores [team-id]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	teamService := services.NewTeamService(db)

	if len(os.Args) == 2 {
		teamID, err := uuid.Parse(os.Args[1])
		if err != nil {
			log.Fatalf("Invalid team id %q: %v", os.Args[1], err)
		}

		score, err := teamService.RecomputeScore(ctx, teamID)
		if err != nil {
			log.Fatalf("Failed to recompute team %s: %v", teamID, err)
		}
		fmt.Printf("Team %s score is now %d\n", teamID, score)
		return
	}

	scores, err := teamService.RecomputeAll(ctx)
	if err != nil {
		log.Fatalf("Failed to recompute scores: %v", err)
	}

	for id, score := range scores {
		log.Printf("team %s: %d", id, score)
	}
	fmt.Printf("Recomputed scores for %d teams\n", len(scores))
}
