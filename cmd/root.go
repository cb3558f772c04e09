package cmd

import (
	"context"
	"log/slog"
	"os"
	"path"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/domain/repository"
	"github.com/secwatch/sirt/domain/service"
	"github.com/secwatch/sirt/handler"
)

var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "sirt",
	Short: "sirt tracks security incidents",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Defaults to sirt.toml in the home directory.
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Error("Failed to get user home directory", slog.Any("error", err))
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", path.Join(home, "sirt.toml"), "config file path")
}

// withHandler builds the full dependency chain for one command invocation and
// tears it down afterwards.
func withHandler(fn func(ctx context.Context, h *handler.IncidentHandler) error) error {
	ctx := context.Background()

	cfg, err := repository.NewConfigRepository(configPath)
	if err != nil {
		return err
	}

	store, err := repository.NewSQLiteRepository(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	var slackRepo repository.SlackRepositoryer
	if cfg.Slack.Enabled && os.Getenv("SLACK_BOT_TOKEN") != "" {
		slackRepo = repository.NewSlackRepository(slack.New(os.Getenv("SLACK_BOT_TOKEN")))
	}

	repo := repository.NewRepository(store, cfg)
	svc := service.NewIncidentService(ctx, repo)
	return fn(ctx, handler.NewIncidentHandler(svc, repo, slackRepo))
}
