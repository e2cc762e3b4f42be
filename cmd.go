package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "controller-status",
		Short:         "Status bar showing the game controller battery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			closer, err := setupLogging(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			return runBar(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.json")

	root.AddCommand(newStatusCmd(&configPath))
	return root
}

func runBar(cfg *Config) error {
	applyColors(cfg.Colors)
	log.Info().Strs("modules", cfg.Modules).Int("poll_interval", cfg.PollInterval).Msg("starting bar")

	p := tea.NewProgram(
		initialModel(cfg, newUpowerSource(), newDesktopNotifier()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "program failed to run")
	}
	return nil
}

func newStatusCmd(configPath *string) *cobra.Command {
	var notify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Poll the controller once and print its battery level and tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			closer, err := setupLogging(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			var notifier Notifier
			if notify {
				notifier = newDesktopNotifier()
			}
			return printStatus(cmd.Context(), cmd.OutOrStdout(), newUpowerSource(), notifier)
		},
	}
	cmd.Flags().BoolVarP(&notify, "notify", "n", false, "also raise a desktop notification")
	return cmd
}

func printStatus(ctx context.Context, out io.Writer, source StatusSource, notifier Notifier) error {
	if ctx == nil {
		ctx = context.Background()
	}
	status := pollStatus(ctx, source)
	if _, err := fmt.Fprintf(out, "%s %s\n", status, classify(status)); err != nil {
		return errors.Wrap(err, "write status")
	}
	if notifier == nil {
		return nil
	}
	return notifier.Notify(noticeTitle, noticeBody(status))
}
