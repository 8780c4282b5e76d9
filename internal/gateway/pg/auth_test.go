package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eliteclan/backoffice/internal/gateway"
)

// Los tests de este archivo cubren lo que no necesita base: la
// validación de access tokens y el parseo de migraciones embebidas.

var testSecret = []byte("test-secret-no-usar-en-prod")

func signedToken(t *testing.T, mutate func(*accessClaims)) string {
	t.Helper()
	now := time.Now().UTC()
	claims := accessClaims{
		Email: "ana@eliteclan.ar",
		Role:  "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			Issuer:    "eliteclan-backoffice",
		},
	}
	if mutate != nil {
		mutate(&claims)
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("SignedString err: %v", err)
	}
	return s
}

func TestValidateAccessToken(t *testing.T) {
	t.Parallel()

	p := NewAuthProvider(nil, testSecret, 0, 0)
	acc, err := p.Validate(context.Background(), signedToken(t, nil))
	if err != nil {
		t.Fatalf("Validate err: %v", err)
	}
	if acc.ID != "u1" || acc.Email != "ana@eliteclan.ar" || string(acc.Role) != "Admin" {
		t.Fatalf("cuenta reconstruida: %+v", acc)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	t.Parallel()

	p := NewAuthProvider(nil, testSecret, 0, 0)
	expired := signedToken(t, func(c *accessClaims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	})
	if _, err := p.Validate(context.Background(), expired); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Fatalf("token expirado: err = %v", err)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	p := NewAuthProvider(nil, []byte("otro-secreto"), 0, 0)
	if _, err := p.Validate(context.Background(), signedToken(t, nil)); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Fatalf("firma ajena: err = %v", err)
	}
}

func TestValidateRejectsAlgNone(t *testing.T) {
	t.Parallel()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString err: %v", err)
	}

	p := NewAuthProvider(nil, testSecret, 0, 0)
	if _, err := p.Validate(context.Background(), unsigned); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Fatalf("alg=none: err = %v", err)
	}

	if _, err := p.Validate(context.Background(), "no-es-un-jwt"); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Fatalf("basura: err = %v", err)
	}
}

func TestParseMigrations(t *testing.T) {
	t.Parallel()

	migs, err := parseMigrations()
	if err != nil {
		t.Fatalf("parseMigrations err: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("sin migraciones embebidas")
	}
	for i, m := range migs {
		if m.SQL == "" {
			t.Fatalf("migración %d_%s vacía", m.Version, m.Name)
		}
		if i > 0 && migs[i-1].Version >= m.Version {
			t.Fatalf("migraciones fuera de orden: %d antes de %d", migs[i-1].Version, m.Version)
		}
	}
	if migs[0].Version != 1 || migs[0].Name != "init" {
		t.Fatalf("primera migración = %d_%s", migs[0].Version, migs[0].Name)
	}
}
