package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/buildinfo"
	"github.com/dmitrijs2005/odontofast/internal/devserver"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	def := devserver.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "devserver",
		Short:        "Local OdontoFast login backend",
		Long:         "devserver serves POST /api/login for local development of the OdontoFast client.",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.Flags().StringP("addr", "a", def.Addr, "Listen address")
	cmd.Flags().StringP("users", "u", "", "Users YAML file (default: built-in test users)")
	cmd.Flags().String("jwt-secret", def.JWTSecret, "HS256 signing secret")
	cmd.Flags().Duration("token-ttl", def.TokenTTL, "Token lifetime")
	cmd.Flags().StringSlice("cors-origin", def.AllowedOrigins, "Allowed CORS origins (ignored with --dev)")
	cmd.Flags().Float64("login-rate", def.LoginRate, "Login attempts per second per IP")
	cmd.Flags().Int("login-burst", def.LoginBurst, "Login burst per IP")
	cmd.Flags().Bool("dev", def.Dev, "Development mode: any origin, console logs")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := devserver.DefaultConfig()
	cfg.Addr, _ = cmd.Flags().GetString("addr")
	cfg.UsersFile, _ = cmd.Flags().GetString("users")
	cfg.JWTSecret, _ = cmd.Flags().GetString("jwt-secret")
	cfg.TokenTTL, _ = cmd.Flags().GetDuration("token-ttl")
	cfg.AllowedOrigins, _ = cmd.Flags().GetStringSlice("cors-origin")
	cfg.LoginRate, _ = cmd.Flags().GetFloat64("login-rate")
	cfg.LoginBurst, _ = cmd.Flags().GetInt("login-burst")
	cfg.Dev, _ = cmd.Flags().GetBool("dev")

	log := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	if cfg.Dev {
		log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}

	srv, err := devserver.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
