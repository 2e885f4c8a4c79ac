package matches

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"amistoso/internal/apperrors"
	"amistoso/internal/matches/db"
	"amistoso/internal/models"
	"amistoso/internal/sqlutil"
)

// Repository implements match data access. The accept and settle paths run
// multi-statement transactions, so it holds the raw *sql.DB as well as the
// generated queries.
type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

// NewRepository creates a new matches repository
func NewRepository(database *sql.DB, queries *db.Queries) *Repository {
	return &Repository{
		database: database,
		queries:  queries,
	}
}

// AcceptRequest flips the request to matched and creates the match in one
// transaction. The conditional status update is the race guard: zero rows
// affected means a concurrent acceptance (or cancellation) won, and the call
// fails with Conflict. The unique constraint on matches.request_id backstops
// the same race at the storage layer.
func (r *Repository) AcceptRequest(ctx context.Context, params AcceptParams) (*models.Match, error) {
	var match *models.Match

	err := sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			rows, err := q.MarkMatchRequestMatched(ctx, params.RequestID)
			if err != nil {
				return fmt.Errorf("failed to mark request matched: %w", err)
			}
			if rows == 0 {
				return apperrors.Conflict("request %s is no longer active", params.RequestID)
			}

			dbMatch, err := q.CreateMatch(ctx, db.CreateMatchParams{
				ID:          uuid.New(),
				RequestID:   params.RequestID,
				HomeTeamID:  params.HomeTeamID,
				AwayTeamID:  params.AwayTeamID,
				HomeUserID:  params.HomeUserID,
				AwayUserID:  params.AwayUserID,
				Venue:       params.Venue,
				Price:       sqlutil.ToSqlFloat64(params.Price),
				ScheduledAt: sqlutil.ToSqlTime(params.ScheduledAt),
			})
			if err != nil {
				if sqlutil.IsUniqueViolation(err, "matches_request_id_key") {
					return apperrors.Conflict("request %s already has a match", params.RequestID)
				}
				return fmt.Errorf("failed to create match: %w", err)
			}

			payload, err := json.Marshal(MatchCreatedPayload{
				MatchID:     dbMatch.ID,
				RequestID:   dbMatch.RequestID,
				HomeTeamID:  dbMatch.HomeTeamID,
				AwayTeamID:  dbMatch.AwayTeamID,
				Venue:       dbMatch.Venue,
				ScheduledAt: sqlutil.FromSqlTime(dbMatch.ScheduledAt),
			})
			if err != nil {
				return fmt.Errorf("failed to marshal match created payload: %w", err)
			}

			if err := q.InsertMatchOutbox(ctx, db.InsertMatchOutboxParams{
				ID:        uuid.New(),
				MatchID:   dbMatch.ID,
				EventType: EventTypeMatchCreated,
				Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
			}); err != nil {
				return fmt.Errorf("failed to insert match created outbox event: %w", err)
			}

			match = dbMatchToModel(dbMatch)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return match, nil
}

// SettleMatch commits the result, closes the match and request, and posts
// the ledger increments — all in one transaction. The unique constraint on
// match_results.match_id is the authoritative double-settlement guard;
// violating it surfaces as Conflict ("already settled"), never as an
// internal error.
func (r *Repository) SettleMatch(ctx context.Context, params SettleParams) (*models.MatchResult, error) {
	var result *models.MatchResult

	err := sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			dbResult, err := q.CreateMatchResult(ctx, db.CreateMatchResultParams{
				ID:           uuid.New(),
				MatchID:      params.MatchID,
				HomeScore:    int32(params.HomeScore),
				AwayScore:    int32(params.AwayScore),
				WinnerTeamID: sqlutil.ToNullUUID(params.WinnerTeamID),
			})
			if err != nil {
				if sqlutil.IsUniqueViolation(err, "match_results_match_id_key") {
					return apperrors.Conflict("match %s already settled", params.MatchID)
				}
				return fmt.Errorf("failed to create match result: %w", err)
			}

			rows, err := q.CompleteMatch(ctx, params.MatchID)
			if err != nil {
				return fmt.Errorf("failed to complete match: %w", err)
			}
			if rows == 0 {
				return apperrors.Conflict("match %s already settled", params.MatchID)
			}

			if err := q.CompleteMatchRequest(ctx, params.RequestID); err != nil {
				return fmt.Errorf("failed to complete match request: %w", err)
			}

			if params.WinnerTeamID == nil {
				if err := q.IncrementTeamDrawn(ctx, params.HomeTeamID); err != nil {
					return fmt.Errorf("failed to increment drawn: %w", err)
				}
				if err := q.IncrementTeamDrawn(ctx, params.AwayTeamID); err != nil {
					return fmt.Errorf("failed to increment drawn: %w", err)
				}
			} else {
				if err := q.IncrementTeamWon(ctx, *params.WinnerTeamID); err != nil {
					return fmt.Errorf("failed to increment won: %w", err)
				}
				if err := q.IncrementTeamLost(ctx, *params.LoserTeamID); err != nil {
					return fmt.Errorf("failed to increment lost: %w", err)
				}
			}

			payload, err := json.Marshal(MatchSettledPayload{
				MatchID:      params.MatchID,
				HomeScore:    params.HomeScore,
				AwayScore:    params.AwayScore,
				WinnerTeamID: params.WinnerTeamID,
			})
			if err != nil {
				return fmt.Errorf("failed to marshal match settled payload: %w", err)
			}

			if err := q.InsertMatchOutbox(ctx, db.InsertMatchOutboxParams{
				ID:        uuid.New(),
				MatchID:   params.MatchID,
				EventType: EventTypeMatchSettled,
				Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
			}); err != nil {
				return fmt.Errorf("failed to insert match settled outbox event: %w", err)
			}

			result = dbResultToModel(dbResult)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	dbMatch, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("match", id)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return dbMatchToModel(dbMatch), nil
}

// GetResult retrieves the result for a match, or nil if unsettled
func (r *Repository) GetResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error) {
	dbResult, err := r.queries.GetMatchResult(ctx, matchID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	return dbResultToModel(dbResult), nil
}

// ListMatchesByUser retrieves every match a user participates in
func (r *Repository) ListMatchesByUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	dbMatches, err := r.queries.ListMatchesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by user: %w", err)
	}

	matches := make([]models.Match, len(dbMatches))
	for i, dbMatch := range dbMatches {
		matches[i] = *dbMatchToModel(dbMatch)
	}

	return matches, nil
}

func dbMatchToModel(dbMatch db.Match) *models.Match {
	return &models.Match{
		ID:          dbMatch.ID,
		RequestID:   dbMatch.RequestID,
		HomeTeamID:  dbMatch.HomeTeamID,
		AwayTeamID:  dbMatch.AwayTeamID,
		HomeUserID:  dbMatch.HomeUserID,
		AwayUserID:  dbMatch.AwayUserID,
		Status:      models.MatchStatus(dbMatch.Status),
		Venue:       dbMatch.Venue,
		Price:       sqlutil.FromSqlFloat64(dbMatch.Price),
		ScheduledAt: sqlutil.FromSqlTime(dbMatch.ScheduledAt),
		CreatedAt:   dbMatch.CreatedAt,
		UpdatedAt:   dbMatch.UpdatedAt,
	}
}

func dbResultToModel(dbResult db.MatchResult) *models.MatchResult {
	return &models.MatchResult{
		ID:           dbResult.ID,
		MatchID:      dbResult.MatchID,
		HomeScore:    int(dbResult.HomeScore),
		AwayScore:    int(dbResult.AwayScore),
		WinnerTeamID: sqlutil.FromNullUUID(dbResult.WinnerTeamID),
		CreatedAt:    dbResult.CreatedAt,
	}
}
