package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eliteclan/backoffice/internal/auth"
	"github.com/eliteclan/backoffice/internal/gateway"
)

func loginCmd() *cobra.Command {
	var (
		email    string
		password string
		useSMS   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión en el backoffice",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := theApp.Machine

			if m.Status() == auth.StatusAuthenticated {
				acct, _ := m.Account()
				fmt.Printf("ya hay una sesión activa como %s\n", acct.Email)
				return nil
			}

			if email == "" {
				var err error
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			if err := m.Login(ctx, email, password); err != nil {
				if errors.Is(err, gateway.ErrInvalidCredentials) {
					return fmt.Errorf("credenciales inválidas")
				}
				return err
			}

			// El desafío de segundo factor se resuelve en el mismo
			// proceso: el estado pendiente no sobrevive al comando.
			if factor, ok := m.FactorRequired(); ok {
				if useSMS {
					m.RequestAlternateFactor(ctx)
					factor, _ = m.FactorRequired()
				}
				label := "código TOTP"
				if factor == auth.FactorSMS {
					label = "código recibido"
				}
				for {
					code, err := promptLine(fmt.Sprintf("Ingresá el %s: ", label))
					if err != nil {
						return err
					}
					err = m.VerifyFactor(ctx, code)
					if err == nil {
						break
					}
					if errors.Is(err, gateway.ErrInvalidCode) {
						fmt.Println("código incorrecto, probá de nuevo")
						continue
					}
					return err
				}
			}

			acct, _ := m.Account()
			fmt.Printf("sesión iniciada como %s (%s)\n", acct.Email, acct.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "password (si no, se pide por prompt)")
	cmd.Flags().BoolVar(&useSMS, "sms", false, "pedir el código por canal alternativo")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra las credenciales persistidas",
		RunE: func(cmd *cobra.Command, args []string) error {
			theApp.Machine.SignOut(cmd.Context())
			fmt.Println("sesión cerrada")
			return nil
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Renueva el access token de la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := theApp.Machine.Session(); !ok {
				return fmt.Errorf("no hay sesión activa")
			}
			if err := theApp.Machine.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("sesión renovada")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la cuenta de la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, ok := theApp.Machine.Account()
			if !ok {
				fmt.Println("sin sesión activa")
				return nil
			}
			fmt.Printf("%s (%s)\n", acct.Email, acct.Role)
			return nil
		},
	}
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// requireAccount corta el comando si no hay sesión activa.
func requireAccount() (gateway.Account, error) {
	acct, ok := theApp.Machine.Account()
	if !ok {
		return gateway.Account{}, fmt.Errorf("se requiere sesión activa: corré `eliteclan login`")
	}
	return acct, nil
}
