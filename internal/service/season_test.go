package service

import (
	"context"
	"testing"
	"time"

	"PredictAdmin/internal/testutil"
)

func TestSeasonCreateMissingFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.seasons.Create(context.Background(), &CreateSeasonRequest{})
	assertKind(t, err, ErrValidation)
	if got, want := err.(*Error).Message, "leagueId, name, and year are required"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	_, err = f.seasons.Create(context.Background(), &CreateSeasonRequest{LeagueID: 1, Name: "2025/26"})
	assertKind(t, err, ErrValidation)
	if got, want := err.(*Error).Message, "year is required"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestSeasonCreateUnknownLeague(t *testing.T) {
	f := newFixture(t)
	_, err := f.seasons.Create(context.Background(), &CreateSeasonRequest{LeagueID: 404, Name: "2025/26", Year: 2025})
	assertKind(t, err, ErrInvalidReference)
}

func TestSeasonCreateOptionalDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	league, err := f.leagues.Create(ctx, &CreateLeagueRequest{Name: "Eredivisie", Slug: "eredivisie"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	season, err := f.seasons.Create(ctx, &CreateSeasonRequest{
		LeagueID: league.ID, Name: "2025/26", Year: 2025,
		StartDate: strPtr("2025-08-08"), EndDate: strPtr(""),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if season.StartDate == nil || !season.StartDate.Equal(time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("startDate = %v", season.StartDate)
	}
	if season.EndDate != nil {
		t.Errorf("endDate = %v, want nil", season.EndDate)
	}
	if !season.IsActive {
		t.Errorf("isActive defaulted to false")
	}

	_, err = f.seasons.Create(ctx, &CreateSeasonRequest{LeagueID: league.ID, Name: "x", Year: 2025, StartDate: strPtr("soon")})
	assertKind(t, err, ErrValidation)
}

func TestSeasonListFiltersByLeague(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	epl, err := f.leagues.Create(ctx, &CreateLeagueRequest{Name: "Premier League", Slug: "epl"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	liga, err := f.leagues.Create(ctx, &CreateLeagueRequest{Name: "La Liga", Slug: "la-liga"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	for _, req := range []CreateSeasonRequest{
		{LeagueID: epl.ID, Name: "2024/25", Year: 2024},
		{LeagueID: epl.ID, Name: "2025/26", Year: 2025},
		{LeagueID: liga.ID, Name: "2025/26", Year: 2025},
	} {
		req := req
		if _, err := f.seasons.Create(ctx, &req); err != nil {
			t.Fatalf("create season: %v", err)
		}
	}

	all, err := f.seasons.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	list, err := f.seasons.List(ctx, &liga.ID)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].LeagueName == nil || *list[0].LeagueName != "La Liga" {
		t.Errorf("leagueName = %v", list[0].LeagueName)
	}

	none := uint64(999)
	empty, err := f.seasons.List(ctx, &none)
	if err != nil {
		t.Fatalf("list unknown league: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len = %d, want 0", len(empty))
	}
}

func TestSeasonUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	league, err := f.leagues.Create(ctx, &CreateLeagueRequest{Name: "Bundesliga", Slug: "bundesliga"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	season, err := f.seasons.Create(ctx, &CreateSeasonRequest{LeagueID: league.ID, Name: "2025/26", Year: 2025})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.clock.Advance(time.Hour)
	got, err := f.seasons.Update(ctx, season.ID, &UpdateSeasonRequest{IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.IsActive || got.Name != "2025/26" || got.Year != 2025 {
		t.Errorf("season = %+v", got)
	}
	if !got.UpdatedAt.Equal(testutil.Epoch.Add(time.Hour)) {
		t.Errorf("updatedAt = %v", got.UpdatedAt)
	}

	_, err = f.seasons.Update(ctx, season.ID, &UpdateSeasonRequest{Name: strPtr("  ")})
	assertKind(t, err, ErrValidation)

	_, err = f.seasons.Update(ctx, 404, &UpdateSeasonRequest{Name: strPtr("x")})
	assertKind(t, err, ErrNotFound)
	if got := err.(*Error).Message; got != "Season not found" {
		t.Errorf("message = %q", got)
	}
}
