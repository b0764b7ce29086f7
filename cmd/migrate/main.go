// Command migrate applies the SQL files under migrations/ using the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"referral-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg.DB, *dir, *bin, *dryRun, logger); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dbCfg config.DBConfig, dir, bin string, dryRun bool, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("Applied migration", "version", f.Version, "name", f.Name)
	}
	logger.Info("Migrations complete", "applied", len(res.Applied), "current", res.Target, "dry_run", dryRun)
	return nil
}
