// Package secretbox cifra secretos en reposo (hoy: secretos TOTP en la
// base) con AES-256-GCM y una clave maestra tomada del entorno.
package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const (
	// EnvMasterKey es la variable de entorno con la clave maestra en
	// base64 (32 bytes decodificados). Generar con: openssl rand -base64 32
	EnvMasterKey = "BACKOFFICE_MASTER_KEY"

	nonceSize = 12 // GCM recomendado (96 bits)
	keyLen    = 32 // AES-256
	sep       = "|"
)

var (
	mu        sync.RWMutex
	masterKey []byte
	loadOnce  sync.Once
	loadErr   error
)

func ensureLoaded() error {
	loadOnce.Do(func() {
		b64 := strings.TrimSpace(os.Getenv(EnvMasterKey))
		if b64 == "" {
			loadErr = fmt.Errorf("%s no seteada", EnvMasterKey)
			return
		}
		k, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			loadErr = fmt.Errorf("decode %s: %w", EnvMasterKey, err)
			return
		}
		if len(k) != keyLen {
			loadErr = fmt.Errorf("%s debe decodificar a %d bytes, obtuvo %d", EnvMasterKey, keyLen, len(k))
			return
		}
		mu.Lock()
		masterKey = append([]byte(nil), k...)
		mu.Unlock()
	})
	return loadErr
}

// Ready expone si la clave maestra está cargada.
func Ready() bool {
	mu.RLock()
	defer mu.RUnlock()
	return len(masterKey) == keyLen
}

// Encrypt cifra plain y devuelve base64(nonce)|base64(ciphertext).
func Encrypt(plain string) (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce random: %w", err)
	}
	ct := gcm.Seal(nil, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(nonce) + sep + base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt recibe base64(nonce)|base64(ciphertext) y devuelve el texto plano.
func Decrypt(sealed string) (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	parts := strings.Split(sealed, sep)
	if len(parts) != 2 {
		return "", errors.New("formato inválido: esperado base64(nonce)|base64(ciphertext)")
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(nonce) != nonceSize {
		return "", fmt.Errorf("nonce inválido: esperado %d bytes, obtuvo %d", nonceSize, len(nonce))
	}
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("gcm auth/decrypt: %w", err)
	}
	return string(pt), nil
}

func newGCM() (cipher.AEAD, error) {
	mu.RLock()
	key := append([]byte(nil), masterKey...)
	mu.RUnlock()

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// UnsafeResetForTests borra el estado interno. Solo para tests.
func UnsafeResetForTests() {
	mu.Lock()
	masterKey = nil
	mu.Unlock()
	loadOnce = sync.Once{}
	loadErr = nil
}
