package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Initialize or upgrade the rule database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openRuleStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Rule database is up to date"))
			return nil
		},
	}
}
