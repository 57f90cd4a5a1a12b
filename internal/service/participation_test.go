package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"PredictAdmin/internal/repository"

	"github.com/shopspring/decimal"
)

const wallet = "0x52908400098527886e0f7030069857d2e4169ee7"

func TestUserWalletChecksummed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.Create(ctx, &CreateUserRequest{WalletAddress: wallet})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if want := "0x52908400098527886E0F7030069857D2E4169EE7"; user.WalletAddress != want {
		t.Errorf("wallet = %s, want %s", user.WalletAddress, want)
	}

	found, err := f.users.GetByWallet(ctx, strings.ToUpper(wallet[2:]))
	if err != nil {
		t.Fatalf("get by wallet: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("found user %d, want %d", found.ID, user.ID)
	}

	_, err = f.users.Create(ctx, &CreateUserRequest{WalletAddress: strings.ToUpper(wallet[2:])})
	assertKind(t, err, ErrConflict)

	_, err = f.users.Create(ctx, &CreateUserRequest{WalletAddress: "0x1234"})
	assertKind(t, err, ErrValidation)
}

// seedPool 比赛周 + 奖池 + 用户
func (f *fixture) seedPool(t *testing.T) (poolID, userID uint64) {
	t.Helper()
	ctx := context.Background()
	gwID := f.seedGameweek(t)
	cost := decimal.RequireFromString("10")
	pool, err := f.pools.Create(ctx, &CreatePoolRequest{GameweekID: gwID, CostUSDC: &cost})
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	user, err := f.users.Create(ctx, &CreateUserRequest{WalletAddress: wallet})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return pool.ID, user.ID
}

func newParticipation(poolID, userID uint64, paid string) *CreateParticipationRequest {
	usdc := decimal.RequireFromString(paid)
	fee := decimal.RequireFromString("0.00042")
	return &CreateParticipationRequest{
		PoolID:        poolID,
		UserID:        userID,
		WalletAddress: wallet,
		Picks:         json.RawMessage(`{"1":"home","2":"draw"}`),
		PaidUSDC:      &usdc,
		PaidETHFee:    &fee,
	}
}

func TestParticipationCreateTalliesPool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poolID, userID := f.seedPool(t)

	for _, paid := range []string{"10", "12.5"} {
		if _, err := f.participations.Create(ctx, newParticipation(poolID, userID, paid)); err != nil {
			t.Fatalf("create participation: %v", err)
		}
	}

	pool, err := f.pools.Get(ctx, poolID)
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if pool.ParticipantsCount != 2 {
		t.Errorf("participantsCount = %d, want 2", pool.ParticipantsCount)
	}
	if want := decimal.RequireFromString("22.5"); !pool.PrizeFundUSDC.Equal(want) {
		t.Errorf("prizeFund = %s, want %s", pool.PrizeFundUSDC, want)
	}

	list, err := f.participations.List(ctx, repository.ParticipationFilter{PoolID: &poolID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("len = %d, want 2", len(list))
	}
}

func TestParticipationUnknownPoolLeavesNoRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, userID := f.seedPool(t)

	_, err := f.participations.Create(ctx, newParticipation(999, userID, "10"))
	if err == nil {
		t.Fatal("expected error for unknown pool")
	}
	list, err := f.participations.List(ctx, repository.ParticipationFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("participation rows = %d, want 0", len(list))
	}
}

func TestParticipationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := newParticipation(1, 1, "10")
	req.Picks = nil
	_, err := f.participations.Create(ctx, req)
	assertKind(t, err, ErrValidation)

	req = newParticipation(1, 1, "10")
	req.Picks = json.RawMessage(`{"1":`)
	_, err = f.participations.Create(ctx, req)
	assertKind(t, err, ErrValidation)

	req = newParticipation(1, 1, "10")
	req.TxHash = strPtr("0xdeadbeef")
	_, err = f.participations.Create(ctx, req)
	assertKind(t, err, ErrValidation)
}

func TestParticipationTxHashNormalized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poolID, userID := f.seedPool(t)
	p, err := f.participations.Create(ctx, newParticipation(poolID, userID, "10"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	hash := "0x" + strings.Repeat("AB", 32)
	p, err = f.participations.Update(ctx, p.ID, &UpdateParticipationRequest{TxHash: &hash, IsValidated: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.TxHash == nil || *p.TxHash != strings.ToLower(hash) || !p.IsValidated {
		t.Errorf("unexpected participation %+v", p)
	}
}

func TestResultAccuracyDerived(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poolID, userID := f.seedPool(t)
	p, err := f.participations.Create(ctx, newParticipation(poolID, userID, "10"))
	if err != nil {
		t.Fatalf("create participation: %v", err)
	}

	res, err := f.participations.CreateResult(ctx, &CreateResultRequest{
		ParticipationID: p.ID, TotalPicks: intPtr(3), CorrectPicks: intPtr(2),
	})
	if err != nil {
		t.Fatalf("create result: %v", err)
	}
	if want := decimal.RequireFromString("66.67"); !res.Accuracy.Valid || !res.Accuracy.Decimal.Equal(want) {
		t.Errorf("accuracy = %v, want %s", res.Accuracy, want)
	}

	_, err = f.participations.CreateResult(ctx, &CreateResultRequest{ParticipationID: p.ID, TotalPicks: intPtr(3)})
	assertKind(t, err, ErrConflict)

	res, err = f.participations.UpdateResult(ctx, res.ID, &UpdateResultRequest{CorrectPicks: intPtr(3)})
	if err != nil {
		t.Fatalf("update result: %v", err)
	}
	if !res.Accuracy.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("accuracy = %s, want 100", res.Accuracy.Decimal)
	}

	_, err = f.participations.UpdateResult(ctx, res.ID, &UpdateResultRequest{CorrectPicks: intPtr(4)})
	assertKind(t, err, ErrValidation)

	got, err := f.participations.ResultOf(ctx, p.ID)
	if err != nil {
		t.Fatalf("result of: %v", err)
	}
	if got.ID != res.ID {
		t.Errorf("result id = %d, want %d", got.ID, res.ID)
	}
}

func TestResolveAccuracy(t *testing.T) {
	if acc := resolveAccuracy(nil, 0, 0); acc.Valid {
		t.Errorf("zero total should be null, got %s", acc.Decimal)
	}
	given := decimal.RequireFromString("12.345")
	if acc := resolveAccuracy(&given, 1, 10); !acc.Decimal.Equal(decimal.RequireFromString("12.35")) {
		t.Errorf("given accuracy = %s", acc.Decimal)
	}
}

func TestResultAccuracyOutOfRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poolID, userID := f.seedPool(t)
	p, err := f.participations.Create(ctx, newParticipation(poolID, userID, "10"))
	if err != nil {
		t.Fatalf("create participation: %v", err)
	}

	for _, v := range []string{"-5", "150", "1000"} {
		acc := decimal.RequireFromString(v)
		_, err := f.participations.CreateResult(ctx, &CreateResultRequest{
			ParticipationID: p.ID, TotalPicks: intPtr(3), Accuracy: &acc,
		})
		assertKind(t, err, ErrValidation)
	}

	full := decimal.NewFromInt(100)
	res, err := f.participations.CreateResult(ctx, &CreateResultRequest{
		ParticipationID: p.ID, TotalPicks: intPtr(3), CorrectPicks: intPtr(3), Accuracy: &full,
	})
	if err != nil {
		t.Fatalf("create result: %v", err)
	}

	over := decimal.RequireFromString("100.01")
	_, err = f.participations.UpdateResult(ctx, res.ID, &UpdateResultRequest{Accuracy: &over})
	assertKind(t, err, ErrValidation)
	if got := err.(*Error).Message; got != "accuracy must be between 0 and 100" {
		t.Errorf("message = %q", got)
	}
}
