package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage user payee rules",
		Long:  `View, add, and deactivate user-authored payee classification rules.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesDeactivateCmd())

	return cmd
}

func openRuleStore(cmd *cobra.Command) (*storage.SQLiteStore, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule store: %w", err)
	}
	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate rule store: %w", err)
	}
	return store, nil
}

func rulesListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payee rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openRuleStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var rules []model.Rule
			if all {
				rules, err = store.ListRules(cmd.Context())
			} else {
				rules, err = store.ActiveRules(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rules) == 0 {
				fmt.Fprintln(out, cli.FormatSubtle("(no rules)"))
				return nil
			}

			fmt.Fprintln(out, cli.TableHeaderStyle.Render(
				fmt.Sprintf("%-36s  %-20s  %-14s  %-8s  %s", "ID", "Payee", "Category", "Type", "Active")))
			for _, rule := range rules {
				fmt.Fprintln(out, cli.TableCellStyle.Render(
					fmt.Sprintf("%-36s  %-20s  %-14s  %-8s  %t",
						rule.ID, rule.Payee, rule.Category, rule.Type, rule.Active)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive rules")
	return cmd
}

func rulesAddCmd() *cobra.Command {
	var ruleType string

	cmd := &cobra.Command{
		Use:   "add <payee-pattern> <category>",
		Short: "Add a payee rule",
		Long: `Add a rule matching the payee pattern (case-insensitive substring of the
transaction's payee or description) to the given category.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := model.NewRule(args[0], args[1], model.RuleType(ruleType))
			if err != nil {
				return err
			}

			store, err := openRuleStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveRule(cmd.Context(), rule); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Added rule %s: %q → %s", rule.ID, rule.Payee, rule.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&ruleType, "type", string(model.RuleTypeExpense), "rule type (income, expense, transfer, ignored)")
	return cmd
}

func rulesDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <rule-id>",
		Short: "Deactivate a payee rule",
		Long:  `Deactivate a rule. Rules are never deleted, only marked inactive.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRuleStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeactivateRule(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Rule deactivated: "+args[0]))
			return nil
		},
	}
}
