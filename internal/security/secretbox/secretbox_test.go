package secretbox

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"
)

// Estos tests manipulan la variable de entorno y el estado global del
// paquete, así que no corren en paralelo entre sí.

func setTestKey(t *testing.T) {
	t.Helper()
	UnsafeResetForTests()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand err: %v", err)
	}
	t.Setenv(EnvMasterKey, base64.StdEncoding.EncodeToString(key))
	t.Cleanup(UnsafeResetForTests)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	setTestKey(t)

	sealed, err := Encrypt("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("Encrypt err: %v", err)
	}
	if !strings.Contains(sealed, "|") {
		t.Fatalf("formato sellado inesperado: %q", sealed)
	}
	if !Ready() {
		t.Fatalf("Ready() = false con clave cargada")
	}

	plain, err := Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt err: %v", err)
	}
	if plain != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("Decrypt = %q", plain)
	}
}

func TestDecryptTamperedFails(t *testing.T) {
	setTestKey(t)

	sealed, err := Encrypt("secreto")
	if err != nil {
		t.Fatalf("Encrypt err: %v", err)
	}

	// corromper un byte del ciphertext
	parts := strings.SplitN(sealed, "|", 2)
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	ct[0] ^= 0xff
	tampered := parts[0] + "|" + base64.StdEncoding.EncodeToString(ct)

	if _, err := Decrypt(tampered); err == nil {
		t.Fatalf("Decrypt de ciphertext corrupto no falló")
	}
}

func TestDecryptMalformed(t *testing.T) {
	setTestKey(t)

	for _, sealed := range []string{"", "sin-separador", "!!!|!!!", "Y29ydG8=|Y3Q="} {
		if _, err := Decrypt(sealed); err == nil {
			t.Fatalf("Decrypt de %q no falló", sealed)
		}
	}
}

func TestMissingKey(t *testing.T) {
	UnsafeResetForTests()
	t.Setenv(EnvMasterKey, "")
	t.Cleanup(UnsafeResetForTests)

	if _, err := Encrypt("x"); err == nil {
		t.Fatalf("Encrypt sin clave maestra no falló")
	}
	if Ready() {
		t.Fatalf("Ready() = true sin clave")
	}
}

func TestWrongKeyLength(t *testing.T) {
	UnsafeResetForTests()
	t.Setenv(EnvMasterKey, base64.StdEncoding.EncodeToString([]byte("corta")))
	t.Cleanup(UnsafeResetForTests)

	if _, err := Encrypt("x"); err == nil {
		t.Fatalf("Encrypt con clave de largo inválido no falló")
	}
}
