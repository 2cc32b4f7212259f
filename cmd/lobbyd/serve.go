package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"redoubt/internal/admin"
	"redoubt/internal/auth"
	"redoubt/internal/config"
	"redoubt/internal/log"
	"redoubt/internal/transport"
)

// flags holds the CLI overrides layered on top of a config file,
// following Seednode-partybox's cobra/pflag composition style (a flat
// struct of bound flags, normalized to kebab-case).
type flags struct {
	configPath string
	listenAddr string
	adminAddr  string
	authDSN    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "lobbyd",
		Short:         "The authoritative lobby and room coordinator for the game server.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.StringVarP(&f.configPath, "config", "c", "", "path to a lobbyd.toml config file")
	fs.StringVarP(&f.listenAddr, "listen-addr", "l", "", "override the client-facing TCP listen address")
	fs.StringVar(&f.adminAddr, "admin-addr", "", "override the admin HTTP listen address")
	fs.StringVar(&f.authDSN, "auth-dsn", "", "override the account-database DSN (empty disables auth)")
	fs.StringVarP(&f.logLevel, "log-level", "v", "", "override the log level (debug|info|warn|error)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	return cmd
}

func run(ctx context.Context, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, f)

	logger := log.New(cfg.Log.ToLogConfig())

	srv := transport.New(transport.Config{
		ClientCapacity: cfg.ClientCapacity,
		RoomCapacity:   cfg.RoomCapacity,
		Seed:           cfg.Seed,
	}, logger)

	if cfg.Auth.DSN != "" {
		store, err := auth.Open(cfg.Auth.DSN)
		if err != nil {
			return err
		}
		defer store.Close()
		srv.SetAuthenticator(store)
		logger.Infof("lobbyd: account persistence enabled")
	}

	adminSrv := admin.New(cfg.AdminAddr, srv, logger)
	go func() {
		if err := adminSrv.ListenAndServe(); err != nil {
			logger.Errorf("admin: %v", err)
		}
	}()

	logger.Infof("lobbyd: listening on %s (admin on %s)", cfg.ListenAddr, cfg.AdminAddr)
	return srv.ListenAndServe(cfg.ListenAddr)
}

func applyOverrides(cfg *config.Config, f *flags) {
	if f.listenAddr != "" {
		cfg.ListenAddr = f.listenAddr
	}
	if f.adminAddr != "" {
		cfg.AdminAddr = f.adminAddr
	}
	if f.authDSN != "" {
		cfg.Auth.DSN = f.authDSN
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
}
