// Package service defines the interfaces between the engine and its
// collaborators.
package service

import (
	"context"

	"github.com/tallyhq/tally/internal/model"
)

// RuleStore is the persistence contract for user rules. The engine reads a
// snapshot of active rules once per batch invocation.
type RuleStore interface {
	ActiveRules(ctx context.Context) ([]model.Rule, error)
	ListRules(ctx context.Context) ([]model.Rule, error)
	GetRule(ctx context.Context, id string) (*model.Rule, error)
	SaveRule(ctx context.Context, rule *model.Rule) error
	DeactivateRule(ctx context.Context, id string) error
	Migrate(ctx context.Context) error
	Close() error
}
