package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func mediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Biblioteca multimedia",
	}
	cmd.AddCommand(mediaListCmd(), mediaUploadCmd(), mediaEmbedCmd(), mediaRmCmd())
	return cmd
}

func mediaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los assets registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := theApp.Library.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				fmt.Println("(vacío)")
				return nil
			}
			for _, a := range assets {
				fmt.Printf("%-38s  %-6s  %s\n", a.ID, a.Kind, a.URL)
			}
			return nil
		},
	}
}

func mediaUploadCmd() *cobra.Command {
	var (
		alt string
		raw bool
	)

	cmd := &cobra.Command{
		Use:   "upload <archivo>",
		Short: "Sube una imagen (genera versión principal y thumbnail)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAccount(); err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			asset, err := theApp.Library.Upload(cmd.Context(), filepath.Base(args[0]), data, alt, !raw)
			if err != nil {
				return err
			}
			if asset.ThumbnailURL != "" {
				fmt.Printf("subido %s (%dx%d)\n  %s\n  thumb: %s\n",
					asset.ID, asset.Width, asset.Height, asset.URL, asset.ThumbnailURL)
			} else {
				fmt.Printf("subido %s\n  %s\n", asset.ID, asset.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&alt, "alt", "", "texto alternativo")
	cmd.Flags().BoolVar(&raw, "raw", false, "sube el archivo tal cual, sin reescalar ni thumbnail")
	return cmd
}

func mediaEmbedCmd() *cobra.Command {
	var alt string

	cmd := &cobra.Command{
		Use:   "embed <url>",
		Short: "Registra un embed externo (YouTube, Vimeo, Instagram)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAccount(); err != nil {
				return err
			}
			asset, err := theApp.Library.RegisterEmbed(cmd.Context(), args[0], alt)
			if err != nil {
				return err
			}
			fmt.Printf("registrado %s (%s)\n", asset.ID, asset.Provider)
			return nil
		},
	}

	cmd.Flags().StringVar(&alt, "alt", "", "texto alternativo")
	return cmd
}

func mediaRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Elimina un asset (requiere --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAccount(); err != nil {
				return err
			}
			if !yes {
				fmt.Println("eliminación no confirmada: repetí con --yes")
				return nil
			}
			if err := theApp.Library.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("eliminado %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirma la eliminación")
	return cmd
}
