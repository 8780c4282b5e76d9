package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
)

func testRecord() Record {
	return Record{
		Tokens: gateway.Tokens{
			AccessToken:  "acc-123",
			RefreshToken: "ref-456",
			ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		},
		Account: gateway.Account{ID: "u1", Email: "ana@eliteclan.ar", Role: content.RoleAdmin},
	}
}

func TestSaveLoadEncrypted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	s := New(path, "super-secreto")

	rec := testRecord()
	if err := s.Save(rec); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	// El slot no contiene los tokens en claro.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err: %v", err)
	}
	if strings.Contains(string(raw), "acc-123") || strings.Contains(string(raw), "ref-456") {
		t.Fatalf("tokens en claro en el slot cifrado")
	}

	got, ok := s.Load()
	if !ok {
		t.Fatalf("Load no encontró la sesión guardada")
	}
	if got.Tokens != rec.Tokens || got.Account.Email != rec.Account.Email || got.Account.Role != rec.Account.Role {
		t.Fatalf("Load = %+v, esperado %+v", got, rec)
	}
}

func TestSavePlainWithoutSecret(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	s := New(path, "")

	if err := s.Save(testRecord()); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	// Sin secreto se degrada a JSON plano, y Load igual lo levanta.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		t.Fatalf("sin secreto el slot debería ser JSON plano: %q", raw)
	}
	if _, ok := s.Load(); !ok {
		t.Fatalf("Load del fallback en claro falló")
	}
}

func TestLoadPlaintextWithKey(t *testing.T) {
	t.Parallel()

	// Un slot escrito en claro (por una corrida sin secreto) se lee
	// igual aunque el store actual tenga clave.
	path := filepath.Join(t.TempDir(), "slot")
	data, err := json.Marshal(testRecord())
	if err != nil {
		t.Fatalf("Marshal err: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile err: %v", err)
	}

	s := New(path, "super-secreto")
	if _, ok := s.Load(); !ok {
		t.Fatalf("Load de slot plano con clave configurada falló")
	}
}

func TestLoadCorruptClearsSlot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	if err := os.WriteFile(path, []byte("12,34|99,98,97"), 0o600); err != nil {
		t.Fatalf("WriteFile err: %v", err)
	}

	s := New(path, "super-secreto")
	if _, ok := s.Load(); ok {
		t.Fatalf("Load de slot corrupto retornó ok")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("el slot corrupto no fue limpiado")
	}
}

func TestLoadWrongSecretClearsSlot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	if err := New(path, "secreto-a").Save(testRecord()); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	s := New(path, "secreto-b")
	if _, ok := s.Load(); ok {
		t.Fatalf("Load con otro secreto retornó ok")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("el slot indescifrable no fue limpiado")
	}
}

func TestLoadIncompleteBundle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	s := New(path, "")
	if err := s.Save(Record{}); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	// Un bundle sin tokens no es sesión.
	if _, ok := s.Load(); ok {
		t.Fatalf("Load de bundle incompleto retornó ok")
	}
}

func TestClearIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slot")
	s := New(path, "x")
	if err := s.Save(testRecord()); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	s.Clear()
	s.Clear() // segunda vez no hace nada

	if _, ok := s.Load(); ok {
		t.Fatalf("Load tras Clear retornó ok")
	}
}
