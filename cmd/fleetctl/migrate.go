package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fleet-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	dir     string
	atlas   string
	timeout time.Duration
}

func newMigrateCmd() *cobra.Command {
	opts := &migrateOptions{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema with Atlas",
	}
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "migrations", "migration directory")
	cmd.PersistentFlags().StringVar(&opts.atlas, "atlas", "atlas", "path to the atlas binary")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "command timeout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "apply",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd, func(ctx context.Context, client *atlasexec.Client, url string) error {
					res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
					if err != nil {
						return fmt.Errorf("migrate apply: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), now at version %q\n", len(res.Applied), res.Target)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the migration status",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd, func(ctx context.Context, client *atlasexec.Client, url string) error {
					res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "status %s, current %q, next %q, pending %d\n",
						res.Status, res.Current, res.Next, len(res.Pending))
					return nil
				})
			},
		},
	)
	return cmd
}

func (o *migrateOptions) run(cmd *cobra.Command, fn func(ctx context.Context, client *atlasexec.Client, url string) error) error {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(o.dir)))
	if err != nil {
		return fmt.Errorf("failed to load migrations from %s: %w", o.dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), o.atlas)
	if err != nil {
		return fmt.Errorf("failed to start atlas: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	return fn(ctx, client, dbCfg.BuildDSN())
}
