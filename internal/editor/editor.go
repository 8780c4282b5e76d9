// Package editor implementa el motor genérico de edición de recursos:
// un único engine parametrizado por variante de contenido que lista,
// crea, edita y elimina items, mantiene la caché local de la colección
// y aplica el gate de rol para mutaciones.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

// Config describe un recurso editable.
type Config[T content.Item] struct {
	// Name es el nombre del recurso para logs y mensajes ("shows").
	Name string

	// Store es la colección del gateway sobre la que opera el editor.
	Store gateway.Content[T]

	// Fields es el esquema declarativo del formulario.
	Fields content.Schema

	// RequiredRole, si no es vacío, restringe las mutaciones a ese rol.
	RequiredRole content.Role

	// Blank produce la plantilla para un item nuevo.
	Blank func() T
}

// Editor es el engine de edición para una variante. Es dueño exclusivo
// de la colección en memoria del recurso que muestra: ningún otro
// componente la escribe.
type Editor[T content.Item] struct {
	cfg Config[T]
	log *zap.Logger

	mu       sync.Mutex
	items    []T
	form     map[string]any
	selected string
	loadGen  uint64 // invalida resultados de cargas viejas
}

// New construye el editor con el formulario en la plantilla en blanco.
func New[T content.Item](cfg Config[T]) *Editor[T] {
	e := &Editor[T]{
		cfg: cfg,
		log: logger.Named("editor").With(zap.String("resource", cfg.Name)),
	}
	e.form = itemToForm(cfg.Blank())
	return e
}

// Load trae la colección completa desde el gateway. Una nueva Load
// invalida el interés en el resultado de cualquier Load anterior en
// vuelo: el request viejo completa pero su resultado se descarta
// (generación, no cancelación).
func (e *Editor[T]) Load(ctx context.Context) error {
	e.mu.Lock()
	e.loadGen++
	gen := e.loadGen
	e.mu.Unlock()

	items, err := e.cfg.Store.FetchAll(ctx)
	if err != nil {
		e.log.Error("no se pudieron cargar los registros", zap.Error(err))
		return fmt.Errorf("no se pudieron cargar los registros: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.loadGen {
		e.log.Debug("resultado de carga obsoleto descartado")
		return nil
	}
	e.items = items
	return nil
}

// Items retorna una copia de la colección local.
func (e *Editor[T]) Items() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]T(nil), e.items...)
}

// Select cambia el formulario a una copia del item elegido, o a la
// plantilla en blanco con id vacío. Nunca muta la colección.
func (e *Editor[T]) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" {
		e.selected = ""
		e.form = itemToForm(e.cfg.Blank())
		return nil
	}
	for _, it := range e.items {
		if it.ItemID() == id {
			e.selected = id
			e.form = itemToForm(it)
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", gateway.ErrNotFound, e.cfg.Name, id)
}

// Selected retorna el id seleccionado ("" si es un item nuevo).
func (e *Editor[T]) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// UpdateField coerciona raw según el esquema y lo copia al estado del
// formulario. Actualización local pura: no toca red ni colección.
func (e *Editor[T]) UpdateField(name, raw string) error {
	f, ok := e.cfg.Fields.Find(name)
	if !ok {
		return fmt.Errorf("campo desconocido %q", name)
	}
	v, err := f.Coerce(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form[name] = v
	return nil
}

// FormValue lee un valor del formulario.
func (e *Editor[T]) FormValue(name string) any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form[name]
}

// CanEdit aplica el gate de rol del recurso. Cuando retorna false la
// UI no debe ofrecer acciones destructivas en absoluto, no solo
// deshabilitarlas.
func (e *Editor[T]) CanEdit(actor gateway.Account) bool {
	return e.cfg.RequiredRole == "" || e.cfg.RequiredRole == actor.Role
}

// Submit valida y guarda el formulario. El gate de rol se verifica
// antes que nada: un rol insuficiente no genera ninguna llamada de red.
// Tras el guardado, la colección local se actualiza por identidad de
// id (reemplazo in place, orden intacto; append si era nuevo) y el
// item guardado pasa a ser la selección.
func (e *Editor[T]) Submit(ctx context.Context, actor gateway.Account) (T, error) {
	var zero T

	if !e.CanEdit(actor) {
		return zero, gateway.ErrPermissionDenied
	}

	e.mu.Lock()
	title, _ := e.form["title"].(string)
	if strings.TrimSpace(title) == "" {
		e.mu.Unlock()
		return zero, fmt.Errorf("%w: el título es obligatorio", gateway.ErrValidation)
	}
	item, err := formToItem[T](e.form)
	e.mu.Unlock()
	if err != nil {
		return zero, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}

	saved, err := e.cfg.Store.Save(ctx, item, actor)
	if err != nil {
		return zero, fmt.Errorf("no se pudo guardar el registro: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	replaced := false
	for i, it := range e.items {
		if it.ItemID() == saved.ItemID() {
			e.items[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		e.items = append(e.items, saved)
	}
	e.selected = saved.ItemID()
	e.form = itemToForm(saved)
	return saved, nil
}

// DeleteSelected elimina el item seleccionado. Sin confirmación
// explícita no hay llamada al gateway ni cambio en la colección. Es
// destructivo y sin undo.
func (e *Editor[T]) DeleteSelected(ctx context.Context, actor gateway.Account, confirmed bool) error {
	if !e.CanEdit(actor) {
		return gateway.ErrPermissionDenied
	}

	e.mu.Lock()
	id := e.selected
	e.mu.Unlock()
	if id == "" {
		return fmt.Errorf("%w: nada seleccionado", gateway.ErrValidation)
	}
	if !confirmed {
		e.log.Info("eliminación cancelada sin confirmación", zap.String("id", id))
		return nil
	}

	if err := e.cfg.Store.Delete(ctx, id); err != nil {
		return fmt.Errorf("no se pudo eliminar el registro: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.items[:0]
	for _, it := range e.items {
		if it.ItemID() != id {
			kept = append(kept, it)
		}
	}
	e.items = kept
	e.selected = ""
	e.form = itemToForm(e.cfg.Blank())
	return nil
}

// History retorna el historial del item seleccionado, siempre del más
// nuevo al más viejo sin importar el orden de almacenamiento.
func (e *Editor[T]) History() []content.ChangeLogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, it := range e.items {
		if it.ItemID() == e.selected {
			return content.SortedHistory(it.ItemHistory())
		}
	}
	return nil
}

// itemToForm proyecta un item al estado del formulario vía JSON, que es
// la misma representación que viaja al gateway.
func itemToForm(item any) map[string]any {
	b, err := json.Marshal(item)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func formToItem[T any](form map[string]any) (T, error) {
	var item T
	b, err := json.Marshal(form)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(b, &item); err != nil {
		return item, err
	}
	return item, nil
}
