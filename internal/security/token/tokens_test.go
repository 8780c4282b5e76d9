package token

import (
	"strings"
	"testing"
)

func TestGenerateOpaque(t *testing.T) {
	t.Parallel()

	a, err := GenerateOpaque(32)
	if err != nil {
		t.Fatalf("GenerateOpaque err: %v", err)
	}
	b, err := GenerateOpaque(32)
	if err != nil {
		t.Fatalf("GenerateOpaque err: %v", err)
	}
	if a == b {
		t.Fatalf("dos tokens consecutivos idénticos")
	}
	// base64url sin padding: 32 bytes → 43 chars, sin '=' ni '+' ni '/'.
	if len(a) != 43 || strings.ContainsAny(a, "=+/") {
		t.Fatalf("token inesperado: %q", a)
	}
}

func TestSHA256Base64URL(t *testing.T) {
	t.Parallel()

	h := SHA256Base64URL("abc")
	if h != SHA256Base64URL("abc") {
		t.Fatalf("hash no determinístico")
	}
	if h == SHA256Base64URL("abd") {
		t.Fatalf("colisión trivial")
	}
	if len(h) != 43 {
		t.Fatalf("largo de hash %d, esperado 43", len(h))
	}
}
