package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"amistoso/internal/dbconfig"
)

// SeedUser mirrors the JSON snapshot structure
type SeedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SeedTeam mirrors the JSON snapshot structure
type SeedTeam struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	SocialHandle *string `json:"social_handle"`
}

type snapshot struct {
	Users []SeedUser `json:"users"`
	Teams []SeedTeam `json:"teams"`
}

func main() {
	// 1) Load the JSON snapshot
	data, err := os.ReadFile("internal/assets/demo_teams.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert users first so team FKs resolve
	var inserted, skipped, errs int

	for _, u := range snap.Users {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO users (id, username, email)
            VALUES ($1, $2, $3)
            ON CONFLICT (id) DO NOTHING
        `, u.ID, u.Username, u.Email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", u.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	for _, t := range snap.Teams {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO teams (id, user_id, name, social_handle)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (id) DO NOTHING
        `, t.ID, t.UserID, t.Name, t.SocialHandle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %s: %v\n", t.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Seed complete: %d users, %d teams, %d inserted, %d skipped, %d errors\n",
		len(snap.Users), len(snap.Teams), inserted, skipped, errs,
	)
}
