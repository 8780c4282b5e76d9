package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/editor"
	"github.com/eliteclan/backoffice/internal/gateway"
)

// resourceOps es la vista no genérica de un editor, para que los
// comandos cobra puedan operar sobre cualquier variante.
type resourceOps interface {
	Load(ctx context.Context) error
	Rows() []resourceRow
	Select(id string) error
	UpdateField(name, raw string) error
	Submit(ctx context.Context, actor gateway.Account) (resourceRow, error)
	Delete(ctx context.Context, actor gateway.Account, confirmed bool) error
	CanEdit(actor gateway.Account) bool
	History() []content.ChangeLogEntry
}

type resourceRow struct {
	ID     string
	Title  string
	Status content.Status
}

type opsAdapter[T content.Item] struct{ e *editor.Editor[T] }

func (a opsAdapter[T]) Load(ctx context.Context) error { return a.e.Load(ctx) }

func (a opsAdapter[T]) Rows() []resourceRow {
	items := a.e.Items()
	rows := make([]resourceRow, len(items))
	for i, it := range items {
		rows[i] = resourceRow{ID: it.ItemID(), Title: it.ItemTitle(), Status: it.ItemStatus()}
	}
	return rows
}

func (a opsAdapter[T]) Select(id string) error              { return a.e.Select(id) }
func (a opsAdapter[T]) UpdateField(name, raw string) error  { return a.e.UpdateField(name, raw) }
func (a opsAdapter[T]) CanEdit(actor gateway.Account) bool  { return a.e.CanEdit(actor) }
func (a opsAdapter[T]) History() []content.ChangeLogEntry   { return a.e.History() }

func (a opsAdapter[T]) Submit(ctx context.Context, actor gateway.Account) (resourceRow, error) {
	saved, err := a.e.Submit(ctx, actor)
	if err != nil {
		return resourceRow{}, err
	}
	return resourceRow{ID: saved.ItemID(), Title: saved.ItemTitle(), Status: saved.ItemStatus()}, nil
}

func (a opsAdapter[T]) Delete(ctx context.Context, actor gateway.Account, confirmed bool) error {
	return a.e.DeleteSelected(ctx, actor, confirmed)
}

func resourceCommands() []*cobra.Command {
	return []*cobra.Command{
		resourceCmd("services", "Servicios del colectivo",
			func() resourceOps { return opsAdapter[content.Service]{editor.Services(theApp.GW)} }),
		resourceCmd("shows", "Fechas y shows",
			func() resourceOps { return opsAdapter[content.Show]{editor.Shows(theApp.GW)} }),
		resourceCmd("discography", "Lanzamientos del catálogo",
			func() resourceOps { return opsAdapter[content.DiscographyItem]{editor.Discography(theApp.GW)} }),
		resourceCmd("members", "Integrantes del colectivo",
			func() resourceOps { return opsAdapter[content.Member]{editor.Members(theApp.GW)} }),
		resourceCmd("testimonials", "Testimonios",
			func() resourceOps { return opsAdapter[content.Testimonial]{editor.Testimonials(theApp.GW)} }),
		resourceCmd("events", "Agenda de eventos",
			func() resourceOps { return opsAdapter[content.UpcomingEvent]{editor.Events(theApp.GW)} }),
	}
}

func resourceCmd(name, short string, build func() resourceOps) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: short}
	cmd.AddCommand(
		resourceListCmd(build),
		resourceEditCmd(build),
		resourceRmCmd(build),
		resourceHistoryCmd(build),
	)
	return cmd
}

func resourceListCmd(build func() resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los items de la colección",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := build()
			if err := ops.Load(cmd.Context()); err != nil {
				return err
			}
			rows := ops.Rows()
			if len(rows) == 0 {
				fmt.Println("(vacío)")
				return nil
			}
			for _, r := range rows {
				fmt.Printf("%-40s  %-10s  %s\n", r.ID, r.Status, r.Title)
			}
			return nil
		},
	}
}

func resourceEditCmd(build func() resourceOps) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Crea (sin id) o edita un item con --set campo=valor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := requireAccount()
			if err != nil {
				return err
			}

			ops := build()
			if err := ops.Load(cmd.Context()); err != nil {
				return err
			}
			if len(args) == 1 {
				if err := ops.Select(args[0]); err != nil {
					return err
				}
			}

			for _, kv := range sets {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--set espera campo=valor, recibido %q", kv)
				}
				if err := ops.UpdateField(k, v); err != nil {
					return err
				}
			}

			saved, err := ops.Submit(cmd.Context(), actor)
			if err != nil {
				return err
			}
			fmt.Printf("guardado %s (%s)\n", saved.ID, saved.Title)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "asignación campo=valor (repetible)")
	return cmd
}

func resourceRmCmd(build func() resourceOps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Elimina un item (requiere --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := requireAccount()
			if err != nil {
				return err
			}

			ops := build()
			// El gate de rol corta acá, antes de tocar el gateway: para
			// un rol insuficiente el comando no existe.
			if !ops.CanEdit(actor) {
				return fmt.Errorf("rm no está disponible para el rol %s", actor.Role)
			}
			if err := ops.Load(cmd.Context()); err != nil {
				return err
			}
			if err := ops.Select(args[0]); err != nil {
				return err
			}
			if !yes {
				fmt.Println("eliminación no confirmada: repetí con --yes")
				return nil
			}
			if err := ops.Delete(cmd.Context(), actor, true); err != nil {
				return err
			}
			fmt.Printf("eliminado %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirma la eliminación")
	return cmd
}

func resourceHistoryCmd(build func() resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Muestra el historial de cambios de un item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := build()
			if err := ops.Load(cmd.Context()); err != nil {
				return err
			}
			if err := ops.Select(args[0]); err != nil {
				return err
			}
			entries := ops.History()
			if len(entries) == 0 {
				fmt.Println("(sin historial)")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %-30s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.UserEmail, e.Change)
			}
			return nil
		},
	}
}
