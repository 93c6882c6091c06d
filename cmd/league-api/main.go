package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/league-api/internal/config"
	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/handlers"
	leaguemw "github.com/dimitrije/league-api/internal/middleware"
	"github.com/dimitrije/league-api/internal/services"
	"github.com/dimitrije/league-api/internal/telemetry"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userService := services.NewUserService(db)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)
	matchService := services.NewMatchService(db)
	inviteService := services.NewInviteService(db)

	userHandler := handlers.NewUserHandler(userService, playerService, inviteService)
	teamHandler := handlers.NewTeamHandler(teamService, playerService, matchService)
	matchHandler := handlers.NewMatchHandler(matchService)
	inviteHandler := handlers.NewInviteHandler(inviteService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", leaguemw.RequestIDHeader, "traceparent"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(leaguemw.RequestID())
	app.Use(leaguemw.Tracing())
	app.Use(leaguemw.Logger())

	api := app.Group("/api/v1")

	api.Post("/users", userHandler.Register)
	api.Get("/players/:id", userHandler.GetPlayer)
	api.Post("/players/:id/leave", userHandler.LeaveTeam)
	api.Get("/players/:id/invites", userHandler.Invites)

	api.Get("/teams", teamHandler.List)
	api.Post("/teams", teamHandler.Create)
	api.Get("/teams/:id", teamHandler.Get)
	api.Patch("/teams/:id", teamHandler.Update)
	api.Delete("/teams/:id", teamHandler.Delete)
	api.Get("/teams/:id/players", teamHandler.Players)
	api.Get("/teams/:id/matches", teamHandler.Matches)
	api.Post("/teams/:id/challenge", teamHandler.Challenge)
	api.Post("/teams/:id/invites", inviteHandler.CreateInvite)
	api.Post("/teams/:id/requests", inviteHandler.CreateRequest)
	api.Get("/teams/:id/requests", inviteHandler.ListRequests)

	api.Post("/matches", matchHandler.Create)
	api.Get("/matches/:id", matchHandler.Get)
	api.Post("/matches/:id/start", matchHandler.Start)
	api.Post("/matches/:id/propositions", matchHandler.Propose)
	api.Get("/matches/:id/propositions", matchHandler.History)
	api.Post("/matches/:id/events", matchHandler.AddEvent)
	api.Get("/matches/:id/events", matchHandler.Events)

	api.Post("/invites/:id/accept", inviteHandler.AcceptInvite)
	api.Post("/invites/:id/decline", inviteHandler.DeclineInvite)
	api.Post("/requests/:id/accept", inviteHandler.AcceptRequest)
	api.Post("/requests/:id/decline", inviteHandler.DeclineRequest)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}
}
