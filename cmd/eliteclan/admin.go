package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eliteclan/backoffice/internal/config"
	"github.com/eliteclan/backoffice/internal/content"
	gwpg "github.com/eliteclan/backoffice/internal/gateway/pg"
	"github.com/eliteclan/backoffice/internal/security/totp"
)

// adminCmd agrupa operaciones de administración que van directo contra
// la base: alta de cuentas y enrolamiento de segundo factor. Requieren
// backend configurado.
func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administración de cuentas del backoffice",
	}
	cmd.AddCommand(adminProvisionCmd(), adminEnrollTOTPCmd())
	return cmd
}

func adminAuthProvider(cmd *cobra.Command) (*gwpg.AuthProvider, func(), error) {
	cfg := theApp.Cfg
	if !cfg.Configured() {
		return nil, nil, fmt.Errorf("se requiere base de datos configurada")
	}
	store, err := gwpg.New(cmd.Context(), cfg.Database.DSN, gwpg.Config{})
	if err != nil {
		return nil, nil, err
	}
	p := gwpg.NewAuthProvider(store, []byte(cfg.Auth.JWTSecret),
		config.Duration(cfg.Auth.AccessTTL), config.Duration(cfg.Auth.RefreshTTL))
	return p, store.Close, nil
}

func adminProvisionCmd() *cobra.Command {
	var (
		emailF string
		passF  string
		roleF  string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Crea o actualiza una cuenta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if emailF == "" || passF == "" {
				return fmt.Errorf("--email y --password son obligatorios")
			}
			role := content.Role(roleF)
			if role != content.RoleAdmin && role != content.RoleEditor {
				return fmt.Errorf("rol inválido %q (Admin | Editor)", roleF)
			}

			p, closeFn, err := adminAuthProvider(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			id, err := p.ProvisionAccount(cmd.Context(), emailF, passF, role)
			if err != nil {
				return err
			}
			fmt.Printf("cuenta %s lista (id %s)\n", emailF, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&emailF, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&passF, "password", "", "password inicial")
	cmd.Flags().StringVar(&roleF, "role", "Editor", "rol (Admin | Editor)")
	return cmd
}

func adminEnrollTOTPCmd() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "enroll-totp",
		Short: "Genera y registra un secreto TOTP para una cuenta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountID == "" {
				return fmt.Errorf("--account es obligatorio")
			}

			p, closeFn, err := adminAuthProvider(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			_, secret, err := totp.GenerateSecret()
			if err != nil {
				return err
			}
			if err := p.EnrollTOTP(cmd.Context(), accountID, secret); err != nil {
				return err
			}

			// El secreto se muestra una única vez.
			fmt.Printf("secreto: %s\n", secret)
			fmt.Printf("otpauth: %s\n", totp.OTPAuthURL("EliteClan Backoffice", accountID, secret))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "id de la cuenta")
	return cmd
}
