package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
)

type application struct {
	configName string
	cfg        *config.Config
}

// loadConfig reads the config and swaps the bootstrap logger for one built
// from application.env and application.log_file.
func (app *application) loadConfig(cmd *cobra.Command, _ []string) error {
	c := cmd.Context()
	cfg, err := config.InitConfig(c, app.configName)
	if err != nil {
		return err
	}
	app.cfg = cfg

	logger := log.InitLogger(cfg.Application.LogFile, cfg.Application.Env).
		With().
		Str(log.KeyAppName, constants.AppStorefront).
		Logger()
	cmd.SetContext(logger.WithContext(c))
	return nil
}

func newRootCommand(app *application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "storefront",
		Short:             "Storefront backend serving products, cart, orders and payment summary",
		SilenceUsage:      true,
		PersistentPreRunE: app.loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), app.cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(
		&app.configName,
		"config",
		constants.AppStorefront,
		"config file name looked up in ./env without extension",
	)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Sync schema, seed when empty and serve http",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServer(cmd.Context(), app.cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), app.cfg)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Sync schema and seed default data when the catalog is empty",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context(), app.cfg)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Wipe every table and reload default data",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReset(cmd.Context(), app.cfg)
			},
		},
	)
	return rootCmd
}

func Start() {
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str(log.KeyAppName, constants.AppMainCommand).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	app := &application{}
	if err := newRootCommand(app).ExecuteContext(c); err != nil {
		stop()
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
