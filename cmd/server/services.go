package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"amistoso/internal/auth"
	"amistoso/internal/matches"
	"amistoso/internal/outbox"
	"amistoso/internal/requests"
	"amistoso/internal/teams"
	"amistoso/internal/users"

	matchesdb "amistoso/internal/matches/db"
	requestsdb "amistoso/internal/requests/db"
	teamsdb "amistoso/internal/teams/db"
	usersdb "amistoso/internal/users/db"
)

type Services struct {
	Users    *users.Service
	Teams    *teams.Service
	Requests *requests.Service
	Matches  *matches.Service

	Verifier     *auth.JWTVerifier
	OutboxWorker *outbox.Worker
	Publisher    *outbox.NATSPublisher
}

func setupServices(database *sql.DB, cfg *Config) (*Services, error) {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	verifier := auth.NewJWTVerifier(jwtSecret)

	clock := clockwork.NewRealClock()

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	// Teams
	teamQueries := teamsdb.New(database)
	teamRepo := teams.NewRepository(teamQueries)
	teamApp := teams.NewApp(teamRepo)
	teamService := teams.NewService(teamApp)

	// The guard resolves team ownership through the teams app; request and
	// match predicates work on already-loaded entities.
	guard := auth.NewGuard(teamApp)

	// Requests
	requestQueries := requestsdb.New(database)
	requestRepo := requests.NewRepository(requestQueries)
	requestApp := requests.NewApp(requestRepo, guard, clock)
	requestService := requests.NewService(requestApp)

	// Matches
	matchQueries := matchesdb.New(database)
	matchRepo := matches.NewRepository(database, matchQueries)
	matchApp := matches.NewApp(matchRepo, requestApp, teamApp, userApp, guard)
	matchService := matches.NewService(matchApp)

	// Outbox
	outboxCfg := outbox.DefaultConfig()
	if cfg.Outbox.PollInterval > 0 {
		outboxCfg.PollInterval = time.Duration(cfg.Outbox.PollInterval)
	}
	if cfg.Outbox.BatchSize > 0 {
		outboxCfg.BatchSize = cfg.Outbox.BatchSize
	}

	var publisher outbox.EventPublisher
	var natsPublisher *outbox.NATSPublisher
	if cfg.NATS.Enabled {
		natsCfg := outbox.DefaultNATSConfig()
		if cfg.NATS.URL != "" {
			natsCfg.URL = cfg.NATS.URL
		}
		if cfg.NATS.SubjectPrefix != "" {
			natsCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
		}

		var err error
		natsPublisher, err = outbox.NewNATSPublisher(natsCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		publisher = natsPublisher
	} else {
		publisher = outbox.NewMockPublisher()
	}

	worker := outbox.NewWorker(database, publisher, outboxCfg)

	return &Services{
		Users:        userService,
		Teams:        teamService,
		Requests:     requestService,
		Matches:      matchService,
		Verifier:     verifier,
		OutboxWorker: worker,
		Publisher:    natsPublisher,
	}, nil
}
