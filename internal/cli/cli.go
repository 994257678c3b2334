package cli

import (
	"fmt"
	"net/http"

	"github.com/ChadProbert/celerity/api"
	"github.com/ChadProbert/celerity/internal/config"
	"github.com/ChadProbert/celerity/internal/logger"
	"github.com/ChadProbert/celerity/store"
	"github.com/ChadProbert/celerity/suggest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// env bundles the long-lived pieces every command needs.
type env struct {
	cfg      *config.Config
	manager  *store.Manager
	runtime  *config.Runtime
	provider *suggest.Provider
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.InitConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir: %w", err)
	}
	mgr, err := store.NewManager(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands: %w", err)
	}
	return &env{
		cfg:      cfg,
		manager:  mgr,
		runtime:  config.NewRuntime(cfg),
		provider: suggest.NewProvider(nil),
	}, nil
}

func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "celerity",
		Short: "celerity resolves new-tab queries into navigation actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				configPath, err := config.InitConfigFile()
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Printf("Config file created at: %s\n", configPath)
				fmt.Printf("Edit the file to customize your settings\n")
				return nil
			}
			return runServe(cmd)
		},
	}
	config.BindFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the resolver daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.AddCommand(
		serveCmd,
		newResolveCmd(),
		newSuggestCmd(),
		newListCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newResetCmd(),
		newExportCmd(),
		newImportCmd(),
	)
	return rootCmd
}

func runServe(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	router := api.RegisterRoutes(e.manager, e.runtime, e.provider)
	logrus.WithFields(logrus.Fields{
		"addr":    e.cfg.ListenAddr,
		"dataDir": e.cfg.DataDir,
	}).Info("celerity listening")
	return http.ListenAndServe(e.cfg.ListenAddr, router)
}
