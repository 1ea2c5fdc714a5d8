package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// SaveRule inserts or replaces a user rule.
func (s *SQLiteStore) SaveRule(ctx context.Context, rule *model.Rule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(rule); err != nil {
		return err
	}

	query := `
		INSERT INTO rules (id, payee, category, type, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payee = excluded.payee,
			category = excluded.category,
			type = excluded.type,
			active = excluded.active
	`
	if _, err := s.db.ExecContext(ctx, query,
		rule.ID, rule.Payee, rule.Category, string(rule.Type),
		rule.Active, rule.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}
	return nil
}

// GetRule retrieves a rule by ID.
func (s *SQLiteStore) GetRule(ctx context.Context, id string) (*model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, payee, category, type, active, created_at
		FROM rules
		WHERE id = ?
	`
	rule, err := scanRule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	return rule, nil
}

// ActiveRules returns all active rules, oldest first, so earlier-created
// rules win ties during matching.
func (s *SQLiteStore) ActiveRules(ctx context.Context) ([]model.Rule, error) {
	return s.queryRules(ctx, `
		SELECT id, payee, category, type, active, created_at
		FROM rules
		WHERE active = 1
		ORDER BY created_at, id
	`)
}

// ListRules returns every rule, active or not.
func (s *SQLiteStore) ListRules(ctx context.Context) ([]model.Rule, error) {
	return s.queryRules(ctx, `
		SELECT id, payee, category, type, active, created_at
		FROM rules
		ORDER BY created_at, id
	`)
}

// DeactivateRule marks a rule inactive. Rules are never deleted.
func (s *SQLiteStore) DeactivateRule(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "UPDATE rules SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to deactivate rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) queryRules(ctx context.Context, query string) ([]model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}
	return rules, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (*model.Rule, error) {
	var rule model.Rule
	var ruleType string
	if err := row.Scan(&rule.ID, &rule.Payee, &rule.Category, &ruleType,
		&rule.Active, &rule.CreatedAt); err != nil {
		return nil, err
	}
	rule.Type = model.RuleType(ruleType)
	return &rule, nil
}

func validateRule(rule *model.Rule) error {
	if rule == nil {
		return fmt.Errorf("rule is required")
	}
	if rule.ID == "" {
		return fmt.Errorf("rule ID is required")
	}
	if strings.TrimSpace(rule.Payee) == "" {
		return fmt.Errorf("rule payee pattern is required")
	}
	if rule.Category == "" {
		return fmt.Errorf("rule category is required")
	}
	if !rule.Type.Valid() {
		return fmt.Errorf("invalid rule type: %q", rule.Type)
	}
	return nil
}
