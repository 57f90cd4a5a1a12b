package service

import (
	"context"
	"errors"
	"testing"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/testutil"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	clock *clockwork.FakeClock
	opts  Options

	leagues        *LeagueService
	seasons        *SeasonService
	gameweeks      *GameweekService
	teams          *TeamService
	matches        *MatchService
	users          *UserService
	pools          *PoolService
	participations *ParticipationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := testutil.NewFakeClock()
	db := testutil.NewTestDB(t, clock)
	opts := Options{Logger: testutil.NewLogger(), Clock: clock, ActorID: 7}
	matchRepo := repository.NewMatchRepository(db)
	poolRepo := repository.NewPoolRepository(db)
	return &fixture{
		db:             db,
		clock:          clock,
		opts:           opts,
		leagues:        NewLeagueService(repository.NewLeagueRepository(db), opts),
		seasons:        NewSeasonService(repository.NewSeasonRepository(db), opts),
		gameweeks:      NewGameweekService(repository.NewGameweekRepository(db), matchRepo, poolRepo, opts),
		teams:          NewTeamService(repository.NewTeamRepository(db), opts),
		matches:        NewMatchService(matchRepo, opts),
		users:          NewUserService(repository.NewUserRepository(db), opts),
		pools:          NewPoolService(poolRepo, opts),
		participations: NewParticipationService(repository.NewParticipationRepository(db), repository.NewResultRepository(db), opts),
	}
}

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }
func uint64Ptr(v uint64) *uint64 { return &v }

// seedGameweek 联赛 -> 赛季 -> 比赛周
func (f *fixture) seedGameweek(t *testing.T) uint64 {
	t.Helper()
	ctx := context.Background()
	league, err := f.leagues.Create(ctx, &CreateLeagueRequest{Name: "Premier League", Slug: "premier-league"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	season, err := f.seasons.Create(ctx, &CreateSeasonRequest{LeagueID: league.ID, Name: "2025/26", Year: 2025})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	gw, err := f.gameweeks.Create(ctx, &CreateGameweekRequest{
		SeasonID:             season.ID,
		WeekNumber:           1,
		Name:                 "Week 1",
		StartDate:            "2025-08-15T19:00",
		EndDate:              "2025-08-18",
		RegistrationDeadline: "2025-08-15T18:00:00Z",
	})
	if err != nil {
		t.Fatalf("create gameweek: %v", err)
	}
	return gw.ID
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
}
