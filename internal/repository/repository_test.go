package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/testutil"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewTestDB(t, testutil.NewFakeClock())
}

func u64(v uint64) *uint64 { return &v }

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func newGameweek(seasonID *uint64, week int) *model.Gameweek {
	start := testutil.Epoch.Add(24 * time.Hour)
	return &model.Gameweek{
		SeasonID:             seasonID,
		WeekNumber:           week,
		Name:                 "Week",
		StartDate:            start,
		EndDate:              start.Add(72 * time.Hour),
		RegistrationDeadline: start.Add(-time.Hour),
	}
}

func TestDuplicateSlugIsUniqueViolation(t *testing.T) {
	db := newDB(t)
	repo := NewLeagueRepository(db)
	ctx := context.Background()
	if err := repo.Create(ctx, &model.League{Name: "A", Slug: "epl", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &model.League{Name: "B", Slug: "epl", IsActive: true})
	if !IsUniqueViolation(err) {
		t.Fatalf("err = %v, want unique violation", err)
	}
	if IsForeignKeyViolation(err) {
		t.Fatalf("unique violation misreported as foreign key violation")
	}
}

func TestMissingReferenceIsForeignKeyViolation(t *testing.T) {
	db := newDB(t)
	err := NewSeasonRepository(db).Create(context.Background(), &model.Season{LeagueID: u64(77), Name: "S", Year: 2025})
	if !IsForeignKeyViolation(err) {
		t.Fatalf("err = %v, want foreign key violation", err)
	}
}

func TestListGameweeksWithNullReferences(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	league := &model.League{Name: "Serie A", Slug: "serie-a", IsActive: true}
	mustCreate(t, db, league)
	withLeague := &model.Season{LeagueID: &league.ID, Name: "2025/26", Year: 2025}
	mustCreate(t, db, withLeague)
	orphanSeason := &model.Season{Name: "Friendlies", Year: 2025}
	mustCreate(t, db, orphanSeason)

	mustCreate(t, db, newGameweek(&withLeague.ID, 1))
	mustCreate(t, db, newGameweek(&orphanSeason.ID, 2))
	mustCreate(t, db, newGameweek(nil, 3))

	repo := NewGameweekRepository(db)
	list, err := repo.ListWithSeason(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}

	full, noLeague, noSeason := list[0], list[1], list[2]
	if full.SeasonName == nil || *full.SeasonName != "2025/26" || full.LeagueName == nil || *full.LeagueName != "Serie A" {
		t.Errorf("joined names = %v / %v", full.SeasonName, full.LeagueName)
	}
	if noLeague.SeasonName == nil || noLeague.LeagueName != nil {
		t.Errorf("season without league: %v / %v", noLeague.SeasonName, noLeague.LeagueName)
	}
	if noSeason.SeasonName != nil || noSeason.LeagueName != nil {
		t.Errorf("gameweek without season: %v / %v", noSeason.SeasonName, noSeason.LeagueName)
	}
	if full.Status != model.GameweekScheduled {
		t.Errorf("status = %s", full.Status)
	}

	filtered, err := repo.ListWithSeason(ctx, &orphanSeason.ID)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].WeekNumber != 2 {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestListMatchesByGameweek(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	gw1, gw2 := newGameweek(nil, 1), newGameweek(nil, 2)
	mustCreate(t, db, gw1)
	mustCreate(t, db, gw2)
	home := &model.Team{Name: "Inter", ShortName: strPtr("INT"), IsActive: true}
	away := &model.Team{Name: "Milan", IsActive: true}
	mustCreate(t, db, home)
	mustCreate(t, db, away)

	late := &model.Match{GameweekID: &gw1.ID, HomeTeamID: &away.ID, AwayTeamID: &home.ID, ScheduledAt: testutil.Epoch.Add(48 * time.Hour), Status: model.MatchStatusScheduled}
	early := &model.Match{GameweekID: &gw1.ID, HomeTeamID: &home.ID, AwayTeamID: &away.ID, ScheduledAt: testutil.Epoch.Add(24 * time.Hour), Status: model.MatchStatusScheduled}
	other := &model.Match{GameweekID: &gw2.ID, HomeTeamID: &home.ID, ScheduledAt: testutil.Epoch, Status: model.MatchStatusScheduled}
	mustCreate(t, db, late)
	mustCreate(t, db, early)
	mustCreate(t, db, other)

	list, err := NewMatchRepository(db).ListByGameweek(ctx, gw1.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != early.ID || list[1].ID != late.ID {
		t.Errorf("order = %d,%d, want %d,%d", list[0].ID, list[1].ID, early.ID, late.ID)
	}
	first := list[0]
	if *first.HomeTeam.Name != "Inter" || *first.HomeTeam.ShortName != "INT" || *first.AwayTeam.Name != "Milan" {
		t.Errorf("teams = %v vs %v", *first.HomeTeam.Name, *first.AwayTeam.Name)
	}
	if first.AwayTeam.ShortName != nil {
		t.Errorf("away short name = %v, want nil", *first.AwayTeam.ShortName)
	}

	orphan, err := NewMatchRepository(db).ListByGameweek(ctx, gw2.ID)
	if err != nil {
		t.Fatalf("list gw2: %v", err)
	}
	if len(orphan) != 1 || orphan[0].AwayTeam.ID != nil || orphan[0].AwayTeam.Name != nil {
		t.Errorf("match without away team = %+v", orphan)
	}
}

func TestUpdateByIDMissingRow(t *testing.T) {
	db := newDB(t)
	_, err := NewTeamRepository(db).Update(context.Background(), 5, map[string]interface{}{"name": "x"})
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestCreateWithPoolTallyRollsBack(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	gw := newGameweek(nil, 1)
	mustCreate(t, db, gw)
	pool := &model.Pool{GameweekID: &gw.ID, CostUSDC: decimal.NewFromInt(5), PrizeFundUSDC: decimal.Zero, IsActive: true}
	mustCreate(t, db, pool)

	repo := NewParticipationRepository(db)
	p := &model.Participation{
		PoolID:        &pool.ID,
		UserID:        u64(404),
		WalletAddress: "0x0000000000000000000000000000000000000001",
		Picks:         []byte(`[]`),
		PaidUSDC:      decimal.NewFromInt(5),
		PaidETHFee:    decimal.Zero,
	}
	if err := repo.CreateWithPoolTally(ctx, p); !IsForeignKeyViolation(err) {
		t.Fatalf("err = %v, want foreign key violation", err)
	}

	got, err := NewPoolRepository(db).GetByID(ctx, pool.ID)
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if got.ParticipantsCount != 0 || !got.PrizeFundUSDC.IsZero() {
		t.Errorf("pool tallied despite failure: %+v", got)
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateLockedMergeSeesCurrentRow(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	gw := newGameweek(nil, 1)
	gw.IsActive = true
	mustCreate(t, db, gw)
	repo := NewGameweekRepository(db)

	errBusy := errors.New("already active")
	_, err := repo.UpdateLocked(ctx, gw.ID, func(current *model.Gameweek) (map[string]interface{}, error) {
		if current.IsActive {
			return nil, errBusy
		}
		return map[string]interface{}{"is_closed": true}, nil
	})
	if !errors.Is(err, errBusy) {
		t.Fatalf("err = %v, want merge error", err)
	}

	got, err := repo.UpdateLocked(ctx, gw.ID, func(current *model.Gameweek) (map[string]interface{}, error) {
		return map[string]interface{}{"is_active": false, "is_closed": true}, nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.IsActive || !got.IsClosed || got.Status != model.GameweekClosed {
		t.Errorf("row = %+v", got)
	}

	_, err = repo.UpdateLocked(ctx, gw.ID+100, func(*model.Gameweek) (map[string]interface{}, error) {
		t.Fatal("merge called for missing row")
		return nil, nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestColumnDefaultsMatchMigration(t *testing.T) {
	db := newDB(t)
	now := testutil.Epoch
	if err := db.Exec("INSERT INTO leagues (name, slug, created_at, updated_at) VALUES (?, ?, ?, ?)", "Ligue 1", "ligue-1", now, now).Error; err != nil {
		t.Fatalf("insert league: %v", err)
	}
	var league model.League
	if err := db.Where("slug = ?", "ligue-1").First(&league).Error; err != nil {
		t.Fatalf("load league: %v", err)
	}
	if !league.IsActive || league.AllowsDraws {
		t.Errorf("defaults: isActive=%v allowsDraws=%v", league.IsActive, league.AllowsDraws)
	}

	// false 必须原样写入，不能被列默认值 TRUE 覆盖
	inactive := &model.Team{Name: "Retired FC", IsActive: false}
	mustCreate(t, db, inactive)
	var team model.Team
	if err := db.First(&team, inactive.ID).Error; err != nil {
		t.Fatalf("load team: %v", err)
	}
	if team.IsActive {
		t.Errorf("team isActive = true, want false")
	}

	err := db.Exec("INSERT INTO leagues (name, slug, is_active, created_at, updated_at) VALUES (?, ?, NULL, ?, ?)", "Null", "null", now, now).Error
	if err == nil {
		t.Errorf("NULL is_active accepted")
	}
}
