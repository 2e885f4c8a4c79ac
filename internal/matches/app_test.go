package matches

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/auth"
	"amistoso/internal/models"
)

// fakeRepo mimics the storage guards: accepting a consumed request or
// settling a settled match fails with Conflict, and ledger increments happen
// atomically with the result write.
type fakeRepo struct {
	mu       sync.Mutex
	matches  map[uuid.UUID]*models.Match
	results  map[uuid.UUID]*models.MatchResult
	consumed map[uuid.UUID]bool
	teams    map[uuid.UUID]*models.Team
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		matches:  make(map[uuid.UUID]*models.Match),
		results:  make(map[uuid.UUID]*models.MatchResult),
		consumed: make(map[uuid.UUID]bool),
		teams:    make(map[uuid.UUID]*models.Team),
	}
}

func (r *fakeRepo) AcceptRequest(ctx context.Context, params AcceptParams) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.consumed[params.RequestID] {
		return nil, apperrors.Conflict("request %s is no longer active", params.RequestID)
	}
	r.consumed[params.RequestID] = true

	match := &models.Match{
		ID:          uuid.New(),
		RequestID:   params.RequestID,
		HomeTeamID:  params.HomeTeamID,
		AwayTeamID:  params.AwayTeamID,
		HomeUserID:  params.HomeUserID,
		AwayUserID:  params.AwayUserID,
		Status:      models.MatchStatusPending,
		Venue:       params.Venue,
		Price:       params.Price,
		ScheduledAt: params.ScheduledAt,
	}
	r.matches[match.ID] = match
	return match, nil
}

func (r *fakeRepo) SettleMatch(ctx context.Context, params SettleParams) (*models.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[params.MatchID]; ok {
		return nil, apperrors.Conflict("match %s already settled", params.MatchID)
	}

	result := &models.MatchResult{
		ID:           uuid.New(),
		MatchID:      params.MatchID,
		HomeScore:    params.HomeScore,
		AwayScore:    params.AwayScore,
		WinnerTeamID: params.WinnerTeamID,
	}
	r.results[params.MatchID] = result
	r.matches[params.MatchID].Status = models.MatchStatusCompleted

	if params.WinnerTeamID == nil {
		r.bump(params.HomeTeamID, func(t *models.Team) { t.Drawn++ })
		r.bump(params.AwayTeamID, func(t *models.Team) { t.Drawn++ })
	} else {
		r.bump(*params.WinnerTeamID, func(t *models.Team) { t.Won++ })
		r.bump(*params.LoserTeamID, func(t *models.Team) { t.Lost++ })
	}

	return result, nil
}

func (r *fakeRepo) bump(teamID uuid.UUID, f func(*models.Team)) {
	if t, ok := r.teams[teamID]; ok {
		f(t)
		t.Total++
	}
}

func (r *fakeRepo) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match, ok := r.matches[id]
	if !ok {
		return nil, apperrors.NotFound("match", id)
	}
	copied := *match
	return &copied, nil
}

func (r *fakeRepo) GetResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, ok := r.results[matchID]
	if !ok {
		return nil, nil
	}
	copied := *result
	return &copied, nil
}

func (r *fakeRepo) ListMatchesByUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Match
	for _, m := range r.matches {
		if m.HomeUserID == userID || m.AwayUserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeRequests struct {
	requests map[uuid.UUID]*models.MatchRequest
}

func (f *fakeRequests) GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, apperrors.NotFound("match request", id)
	}
	copied := *req
	return &copied, nil
}

type fakeTeams struct {
	repo *fakeRepo
}

func (f *fakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()

	team, ok := f.repo.teams[id]
	if !ok {
		return nil, apperrors.NotFound("team", id)
	}
	copied := *team
	return &copied, nil
}

type fakeUsers struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUsers) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user", id)
	}
	return user, nil
}

// fixture wires an App over the fakes with two users, each owning one team,
// and one active request published by the home side.
type fixture struct {
	app       *App
	repo      *fakeRepo
	requests  *fakeRequests
	requestID uuid.UUID
	homeUser  uuid.UUID
	awayUser  uuid.UUID
	homeTeam  uuid.UUID
	awayTeam  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:      newFakeRepo(),
		requestID: uuid.New(),
		homeUser:  uuid.New(),
		awayUser:  uuid.New(),
		homeTeam:  uuid.New(),
		awayTeam:  uuid.New(),
	}

	f.repo.teams[f.homeTeam] = &models.Team{ID: f.homeTeam, UserID: f.homeUser, Name: "Deportivo Garaje"}
	f.repo.teams[f.awayTeam] = &models.Team{ID: f.awayTeam, UserID: f.awayUser, Name: "Las Pumas FC"}

	f.requests = &fakeRequests{requests: map[uuid.UUID]*models.MatchRequest{
		f.requestID: {
			ID:     f.requestID,
			UserID: f.homeUser,
			TeamID: f.homeTeam,
			Venue:  "Cancha Municipal",
			Status: models.RequestStatusActive,
		},
	}}

	users := &fakeUsers{users: map[uuid.UUID]*models.User{
		f.homeUser: {ID: f.homeUser, Username: "marcos", Email: "marcos@example.com"},
		f.awayUser: {ID: f.awayUser, Username: "lucia", Email: "lucia@example.com"},
	}}

	teams := &fakeTeams{repo: f.repo}
	guard := auth.NewGuard(teams)
	f.app = NewApp(f.repo, f.requests, teams, users, guard)
	return f
}

func (f *fixture) acceptedMatch(t *testing.T) *models.Match {
	t.Helper()

	match, err := f.app.AcceptRequest(context.Background(), f.requestID, f.awayUser, f.awayTeam)
	if err != nil {
		t.Fatalf("AcceptRequest: %v", err)
	}
	return match
}

func TestAcceptRequestFormsMatch(t *testing.T) {
	f := newFixture(t)

	match := f.acceptedMatch(t)

	if match.HomeTeamID != f.homeTeam || match.AwayTeamID != f.awayTeam {
		t.Errorf("team pairing wrong: home=%s away=%s", match.HomeTeamID, match.AwayTeamID)
	}
	if match.HomeUserID != f.homeUser || match.AwayUserID != f.awayUser {
		t.Errorf("user pairing wrong: home=%s away=%s", match.HomeUserID, match.AwayUserID)
	}
	if match.Status != models.MatchStatusPending {
		t.Errorf("status = %s, want pending", match.Status)
	}
	if match.Venue != "Cancha Municipal" {
		t.Errorf("venue not snapshotted, got %q", match.Venue)
	}
}

func TestAcceptRequestRejectsNonActive(t *testing.T) {
	statuses := []models.RequestStatus{
		models.RequestStatusMatched,
		models.RequestStatusCompleted,
		models.RequestStatusCancelled,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			f.requests.requests[f.requestID].Status = status

			_, err := f.app.AcceptRequest(context.Background(), f.requestID, f.awayUser, f.awayTeam)
			if kind := apperrors.KindOf(err); kind != apperrors.KindBusinessRule {
				t.Errorf("kind = %s, want BUSINESS_RULE", kind)
			}
		})
	}
}

func TestAcceptRequestRejectsOwnRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.AcceptRequest(context.Background(), f.requestID, f.homeUser, f.homeTeam)
	if kind := apperrors.KindOf(err); kind != apperrors.KindBusinessRule {
		t.Errorf("kind = %s, want BUSINESS_RULE", kind)
	}
}

func TestAcceptRequestRejectsForeignTeam(t *testing.T) {
	f := newFixture(t)

	// away user tries to accept with the home side's team
	_, err := f.app.AcceptRequest(context.Background(), f.requestID, f.awayUser, f.homeTeam)
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnauthorized {
		t.Errorf("kind = %s, want UNAUTHORIZED", kind)
	}
}

func TestAcceptRequestUnknownRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.AcceptRequest(context.Background(), uuid.New(), f.awayUser, f.awayTeam)
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Errorf("kind = %s, want NOT_FOUND", kind)
	}
}

func TestAcceptRequestConcurrentAccepters(t *testing.T) {
	f := newFixture(t)

	// second rival user with their own team
	rivalUser := uuid.New()
	rivalTeam := uuid.New()
	f.repo.mu.Lock()
	f.repo.teams[rivalTeam] = &models.Team{ID: rivalTeam, UserID: rivalUser, Name: "Atletico Lunes"}
	f.repo.mu.Unlock()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.app.AcceptRequest(context.Background(), f.requestID, f.awayUser, f.awayTeam)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.app.AcceptRequest(context.Background(), f.requestID, rivalUser, rivalTeam)
	}()
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.KindOf(err) == apperrors.KindConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Errorf("got %d successes and %d conflicts, want exactly one of each", ok, conflicts)
	}
}

func TestRegisterResultOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		homeScore int
		awayScore int
		homeWon   int
		homeLost  int
		homeDrawn int
		awayWon   int
		awayLost  int
		awayDrawn int
		wantDraw  bool
	}{
		{name: "home win", homeScore: 3, awayScore: 1, homeWon: 1, awayLost: 1},
		{name: "away win", homeScore: 1, awayScore: 3, homeLost: 1, awayWon: 1},
		{name: "draw", homeScore: 2, awayScore: 2, homeDrawn: 1, awayDrawn: 1, wantDraw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			match := f.acceptedMatch(t)

			result, err := f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{
				HomeScore: tt.homeScore,
				AwayScore: tt.awayScore,
			})
			if err != nil {
				t.Fatalf("RegisterResult: %v", err)
			}

			if tt.wantDraw {
				if result.WinnerTeamID != nil {
					t.Errorf("winner = %s, want none", result.WinnerTeamID)
				}
			} else {
				want := f.homeTeam
				if tt.awayScore > tt.homeScore {
					want = f.awayTeam
				}
				if result.WinnerTeamID == nil || *result.WinnerTeamID != want {
					t.Errorf("winner = %v, want %s", result.WinnerTeamID, want)
				}
			}

			home := f.repo.teams[f.homeTeam]
			away := f.repo.teams[f.awayTeam]
			if home.Won != tt.homeWon || home.Lost != tt.homeLost || home.Drawn != tt.homeDrawn {
				t.Errorf("home record = %d/%d/%d, want %d/%d/%d",
					home.Won, home.Lost, home.Drawn, tt.homeWon, tt.homeLost, tt.homeDrawn)
			}
			if away.Won != tt.awayWon || away.Lost != tt.awayLost || away.Drawn != tt.awayDrawn {
				t.Errorf("away record = %d/%d/%d, want %d/%d/%d",
					away.Won, away.Lost, away.Drawn, tt.awayWon, tt.awayLost, tt.awayDrawn)
			}
			for _, team := range []*models.Team{home, away} {
				if team.Total != team.Won+team.Lost+team.Drawn {
					t.Errorf("team %s record unbalanced: total=%d won=%d lost=%d drawn=%d",
						team.Name, team.Total, team.Won, team.Lost, team.Drawn)
				}
			}
		})
	}
}

func TestRegisterResultEitherParticipantMayReport(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	// the away side (accepter) reports
	if _, err := f.app.RegisterResult(context.Background(), match.ID, f.awayUser, RegisterResult{HomeScore: 1, AwayScore: 0}); err != nil {
		t.Fatalf("RegisterResult by away participant: %v", err)
	}
}

func TestRegisterResultRejectsNonParticipant(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	_, err := f.app.RegisterResult(context.Background(), match.ID, uuid.New(), RegisterResult{HomeScore: 1, AwayScore: 0})
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnauthorized {
		t.Errorf("kind = %s, want UNAUTHORIZED", kind)
	}
}

func TestRegisterResultScoreBounds(t *testing.T) {
	tests := []struct {
		name      string
		homeScore int
		awayScore int
	}{
		{name: "negative home", homeScore: -1, awayScore: 0},
		{name: "negative away", homeScore: 0, awayScore: -1},
		{name: "home above cap", homeScore: 100, awayScore: 0},
		{name: "away above cap", homeScore: 0, awayScore: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			match := f.acceptedMatch(t)

			_, err := f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{
				HomeScore: tt.homeScore,
				AwayScore: tt.awayScore,
			})
			if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
				t.Errorf("kind = %s, want VALIDATION", kind)
			}
		})
	}
}

func TestRegisterResultSecondAttemptConflicts(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	if _, err := f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{HomeScore: 2, AwayScore: 0}); err != nil {
		t.Fatalf("first RegisterResult: %v", err)
	}

	_, err := f.app.RegisterResult(context.Background(), match.ID, f.awayUser, RegisterResult{HomeScore: 0, AwayScore: 2})
	if kind := apperrors.KindOf(err); kind != apperrors.KindConflict {
		t.Errorf("kind = %s, want CONFLICT", kind)
	}

	// the losing report must not have touched the ledger
	home := f.repo.teams[f.homeTeam]
	if home.Won != 1 || home.Total != 1 {
		t.Errorf("home record mutated by rejected report: won=%d total=%d", home.Won, home.Total)
	}
}

func TestRegisterResultCancelledMatch(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)
	f.repo.matches[match.ID].Status = models.MatchStatusCancelled

	_, err := f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{HomeScore: 1, AwayScore: 0})
	if kind := apperrors.KindOf(err); kind != apperrors.KindBusinessRule {
		t.Errorf("kind = %s, want BUSINESS_RULE", kind)
	}
}

func TestRegisterResultConcurrentReports(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{HomeScore: 2, AwayScore: 1})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.app.RegisterResult(context.Background(), match.ID, f.awayUser, RegisterResult{HomeScore: 2, AwayScore: 1})
	}()
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.KindOf(err) == apperrors.KindConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Errorf("got %d successes and %d conflicts, want exactly one of each", ok, conflicts)
	}

	// ledger moved exactly once
	home := f.repo.teams[f.homeTeam]
	away := f.repo.teams[f.awayTeam]
	if home.Won != 1 || home.Total != 1 || away.Lost != 1 || away.Total != 1 {
		t.Errorf("ledger incremented more than once: home won=%d total=%d, away lost=%d total=%d",
			home.Won, home.Total, away.Lost, away.Total)
	}
}

func TestGetMatchDetailContacts(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	participant, err := f.app.GetMatchDetail(context.Background(), match.ID, f.homeUser)
	if err != nil {
		t.Fatalf("GetMatchDetail: %v", err)
	}
	if participant.Contacts == nil {
		t.Fatal("participant should see contact details")
	}
	if participant.Contacts.Away.Email != "lucia@example.com" {
		t.Errorf("away contact email = %q", participant.Contacts.Away.Email)
	}

	outsider, err := f.app.GetMatchDetail(context.Background(), match.ID, uuid.New())
	if err != nil {
		t.Fatalf("GetMatchDetail as outsider: %v", err)
	}
	if outsider.Contacts != nil {
		t.Error("outsider should not see contact details")
	}
}

func TestGetMatchDetailIncludesResult(t *testing.T) {
	f := newFixture(t)
	match := f.acceptedMatch(t)

	if _, err := f.app.RegisterResult(context.Background(), match.ID, f.homeUser, RegisterResult{HomeScore: 4, AwayScore: 2}); err != nil {
		t.Fatalf("RegisterResult: %v", err)
	}

	detail, err := f.app.GetMatchDetail(context.Background(), match.ID, f.homeUser)
	if err != nil {
		t.Fatalf("GetMatchDetail: %v", err)
	}
	if detail.Result == nil {
		t.Fatal("settled match should include its result")
	}
	if detail.Result.HomeScore != 4 || detail.Result.AwayScore != 2 {
		t.Errorf("result = %d-%d, want 4-2", detail.Result.HomeScore, detail.Result.AwayScore)
	}
	if detail.Status != models.MatchStatusCompleted {
		t.Errorf("status = %s, want completed", detail.Status)
	}
}
