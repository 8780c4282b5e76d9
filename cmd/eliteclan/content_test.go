package main

import (
	"testing"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/editor"
	"github.com/eliteclan/backoffice/internal/gateway"
)

// El comando rm consulta CanEdit antes de cualquier llamada al gateway;
// el adaptador tiene que reflejar el gate de rol de cada recurso.
func TestOpsAdapterRoleGate(t *testing.T) {
	t.Parallel()

	gw := gateway.NewFixture()
	admin := gateway.Account{ID: "u1", Email: "ana@eliteclan.ar", Role: content.RoleAdmin}
	edit := gateway.Account{ID: "u2", Email: "leo@eliteclan.ar", Role: content.RoleEditor}

	services := opsAdapter[content.Service]{editor.Services(gw)}
	if services.CanEdit(edit) {
		t.Fatalf("services es solo Admin, Editor no debería pasar el gate")
	}
	if !services.CanEdit(admin) {
		t.Fatalf("Admin no pasa el gate de services")
	}

	shows := opsAdapter[content.Show]{editor.Shows(gw)}
	if !shows.CanEdit(edit) {
		t.Fatalf("shows no restringe rol, Editor debería pasar el gate")
	}
}
