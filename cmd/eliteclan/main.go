// eliteclan es el cliente de backoffice del sitio: login con segundo
// factor, edición de los seis recursos de contenido y administración de
// la biblioteca de media. Cada invocación restaura la sesión persistida
// (si hay) antes de correr el comando.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eliteclan/backoffice/internal/app"
	"github.com/eliteclan/backoffice/internal/config"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

var (
	flagConfig string

	theApp *app.App
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eliteclan",
		Short:         "Backoffice del sitio de EliteClan",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("cargando configuración: %w", err)
			}
			logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "eliteclan"})

			theApp, err = app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			theApp.Machine.Initialize(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if theApp != nil {
				theApp.Close()
			}
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "ruta al YAML de configuración")

	root.AddCommand(loginCmd(), logoutCmd(), refreshCmd(), whoamiCmd())
	root.AddCommand(resourceCommands()...)
	root.AddCommand(mediaCmd(), adminCmd())

	return root
}
