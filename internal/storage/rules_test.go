package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "rules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testRule(id, payee string, created time.Time) *model.Rule {
	return &model.Rule{
		ID:        id,
		Payee:     payee,
		Category:  "Subscriptions",
		Type:      model.RuleTypeExpense,
		Active:    true,
		CreatedAt: created,
	}
}

func TestNewSQLiteStore(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMigrateIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSaveAndGetRule(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rule := testRule("r1", "netflix", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveRule(ctx, rule))

	got, err := store.GetRule(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, rule.Payee, got.Payee)
	assert.Equal(t, rule.Category, got.Category)
	assert.Equal(t, rule.Type, got.Type)
	assert.True(t, got.Active)

	_, err = store.GetRule(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSaveRuleUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rule := testRule("r1", "netflix", time.Now().UTC())
	require.NoError(t, store.SaveRule(ctx, rule))

	rule.Category = "Entertainment"
	require.NoError(t, store.SaveRule(ctx, rule))

	got, err := store.GetRule(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Entertainment", got.Category)

	rules, err := store.ListRules(ctx)
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestSaveRuleValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		rule *model.Rule
		name string
	}{
		{nil, "nil rule"},
		{&model.Rule{Payee: "x", Category: "y", Type: model.RuleTypeExpense}, "missing ID"},
		{&model.Rule{ID: "r", Category: "y", Type: model.RuleTypeExpense}, "missing payee"},
		{&model.Rule{ID: "r", Payee: "x", Type: model.RuleTypeExpense}, "missing category"},
		{&model.Rule{ID: "r", Payee: "x", Category: "y", Type: "bogus"}, "bad type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveRule(ctx, tt.rule))
		})
	}
}

func TestActiveRulesOrderAndFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := testRule("r-old", "spotify", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testRule("r-new", "netflix", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	inactive := testRule("r-off", "hulu", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	inactive.Active = false

	for _, r := range []*model.Rule{newer, older, inactive} {
		require.NoError(t, store.SaveRule(ctx, r))
	}

	active, err := store.ActiveRules(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Oldest first, so earlier-created rules win matching ties.
	assert.Equal(t, "r-old", active[0].ID)
	assert.Equal(t, "r-new", active[1].ID)

	all, err := store.ListRules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeactivateRule(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rule := testRule("r1", "netflix", time.Now().UTC())
	require.NoError(t, store.SaveRule(ctx, rule))
	require.NoError(t, store.DeactivateRule(ctx, "r1"))

	active, err := store.ActiveRules(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Never deleted, only marked inactive.
	got, err := store.GetRule(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, got.Active)

	err = store.DeactivateRule(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
