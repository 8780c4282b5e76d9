package totp

import (
	"strings"
	"testing"
	"time"
)

func TestAtRFCVectors(t *testing.T) {
	t.Parallel()

	// Vectores de RFC 6238 (Apéndice B), secreto ASCII "12345678901234567890".
	// Los valores de 8 dígitos del RFC truncados a 6.
	secret := []byte("12345678901234567890")
	cases := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}
	for _, c := range cases {
		got := At(secret, c.unix/30)
		if got != c.want {
			t.Fatalf("At(t=%d) = %q, esperado %q", c.unix, got, c.want)
		}
	}
}

func TestDecodeSecret(t *testing.T) {
	t.Parallel()

	raw, encoded, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret err: %v", err)
	}
	if len(raw) != 20 {
		t.Fatalf("secreto de %d bytes, esperado 20", len(raw))
	}

	// Con espacios, minúsculas y padding igual decodifica.
	sloppy := " " + strings.ToLower(encoded[:4]) + " " + encoded[4:] + "== "
	dec, err := DecodeSecret(sloppy)
	if err != nil {
		t.Fatalf("DecodeSecret err: %v", err)
	}
	if string(dec) != string(raw) {
		t.Fatalf("DecodeSecret no reconstruye el secreto original")
	}
}

func TestVerifyWindow(t *testing.T) {
	t.Parallel()

	secret := []byte("12345678901234567890")
	now := time.Unix(1111111109, 0)
	counter := now.Unix() / 30

	// Paso actual y ±1 se aceptan; ±2 no.
	for _, delta := range []int64{-1, 0, 1} {
		code := At(secret, counter+delta)
		ok, got := Verify(secret, code, now, 1, nil)
		if !ok {
			t.Fatalf("código del paso %+d rechazado", delta)
		}
		if got != counter+delta {
			t.Fatalf("contador aceptado %d, esperado %d", got, counter+delta)
		}
	}
	for _, delta := range []int64{-2, 2} {
		code := At(secret, counter+delta)
		if ok, _ := Verify(secret, code, now, 1, nil); ok {
			t.Fatalf("código del paso %+d aceptado fuera de ventana", delta)
		}
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	secret := []byte("12345678901234567890")
	now := time.Unix(59, 0)
	for _, code := range []string{"", "28708", "2870822", "abcdef"} {
		if ok, _ := Verify(secret, code, now, 1, nil); ok {
			t.Fatalf("código malformado %q aceptado", code)
		}
	}
}

func TestVerifyAntiReplay(t *testing.T) {
	t.Parallel()

	secret := []byte("12345678901234567890")
	now := time.Unix(1234567890, 0)
	code := Now(secret, now)

	last := int64(-1)
	ok, counter := Verify(secret, code, now, 1, &last)
	if !ok {
		t.Fatalf("primer uso del código rechazado")
	}
	last = counter

	// El mismo código (y cualquier contador anterior) ya no verifica.
	if ok, _ := Verify(secret, code, now, 1, &last); ok {
		t.Fatalf("replay del mismo código aceptado")
	}
	prev := At(secret, counter-1)
	if ok, _ := Verify(secret, prev, now, 1, &last); ok {
		t.Fatalf("código de un contador ya consumido aceptado")
	}

	// El paso siguiente sí.
	next := At(secret, counter+1)
	if ok, _ := Verify(secret, next, now, 1, &last); !ok {
		t.Fatalf("código del paso siguiente rechazado tras consumir el actual")
	}
}
