package main

import (
	"context" // Command context
	"fmt"     // Console output

	"planetary_api/internal/db" // Custom import path (Database)

	"github.com/spf13/cobra" // CLI framework
)

// storeOpener returns the store the commands run against
type storeOpener func(ctx context.Context) (*db.Store, error)

// newRootCommand builds the manage CLI with its three subcommands
func newRootCommand(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:          "manage",
		Short:        "Planetary API database administration",
		SilenceUsage: true,
	}
	root.AddCommand(
		storeCommand(open, "db_create", "Creates the users and planets tables", "Database created!", (*db.Store).CreateSchema),
		storeCommand(open, "db_drop", "Drops the users and planets tables", "Database dropped!", (*db.Store).DropSchema),
		storeCommand(open, "db_seed", "Inserts the fixture planets and user", "Database seeded!", (*db.Store).Seed),
	)
	return root
}

// storeCommand runs op against the store and prints done on success
func storeCommand(open storeOpener, use, short, done string, op func(*db.Store, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := open(ctx)
			if err != nil {
				return err
			}
			if err := op(store, ctx); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), done)
			return err
		},
	}
}
