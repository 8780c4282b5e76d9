// Package session persiste el bundle de tokens entre ejecuciones del
// cliente, cifrado en reposo para que una inspección casual del disco
// no exponga los tokens en claro.
//
// El slot es un único archivo con formato nonce|ciphertext, ambos
// codificados como bytes decimales separados por coma. Si no hay
// secreto configurado (o el cifrado falla) se degrada a JSON plano con
// un warning: guardar nunca falla por criptografía, solo por disco.
package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"

	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

const (
	// Derivación de clave: PBKDF2-SHA256 con salt fijo e iteraciones
	// altas, igual que hacía el panel web.
	kdfSalt       = "eliteclan-admin-salt"
	kdfIterations = 250_000
	keyLen        = 32 // AES-256
	nonceSize     = 12 // GCM

	sep = "|"
)

// Record es lo que se persiste: el bundle de tokens más la cuenta que
// los posee, para restaurar usuario y rol sin round-trip extra.
type Record struct {
	Tokens  gateway.Tokens  `json:"tokens"`
	Account gateway.Account `json:"account"`
}

func (r Record) valid() bool {
	return r.Tokens.AccessToken != "" && r.Tokens.RefreshToken != ""
}

// Store es el slot único de sesión en almacenamiento local del cliente.
type Store struct {
	path string
	key  []byte // nil => capacidad nula, se degrada a plano
	log  *zap.Logger
}

// New crea el store sobre path, derivando la clave desde secret. Un
// secret vacío deja el store sin capacidad de cifrado: degradación
// explícita, logueada en cada Save.
func New(path, secret string) *Store {
	s := &Store{path: path, log: logger.Named("session")}
	if secret != "" {
		s.key = DeriveKey(secret)
	}
	return s
}

// DefaultPath retorna el slot por defecto bajo el directorio de
// configuración del usuario.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "eliteclan", "admin-session")
}

// DeriveKey deriva la clave simétrica desde el secreto configurado.
func DeriveKey(secret string) []byte {
	return pbkdf2.Key([]byte(secret), []byte(kdfSalt), kdfIterations, keyLen, sha256.New)
}

// Save serializa y cifra el record con un nonce fresco por llamada y lo
// escribe al slot. Falla solo si el disco falla.
func (s *Store) Save(rec Record) error {
	plain, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}

	payload := plain
	if s.key == nil {
		s.log.Warn("sin secreto de sesión configurado, guardando tokens en claro")
	} else if sealed, err := s.encrypt(plain); err != nil {
		s.log.Warn("cifrado de sesión falló, guardando en claro", zap.Error(err))
	} else {
		payload = []byte(sealed)
	}

	return writeAtomic(s.path, payload)
}

// Load lee, descifra y deserializa el slot. Cualquier fallo (slot
// ausente, descifrado, JSON, bundle incompleto) degrada a "no hay
// sesión": retorna ok=false y limpia el slot corrupto. Nunca propaga el
// error de descifrado al caller.
func (s *Store) Load() (Record, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, false
	}

	// El fallback en claro es JSON; el payload cifrado empieza con el
	// nonce en decimal. Se distingue por el primer byte.
	plain := raw
	if text := strings.TrimSpace(string(raw)); !strings.HasPrefix(text, "{") {
		dec, err := s.decrypt(text)
		if err != nil {
			s.log.Warn("no se pudo descifrar la sesión persistida, se descarta", zap.Error(err))
			s.Clear()
			return Record{}, false
		}
		plain = dec
	}

	var rec Record
	if err := json.Unmarshal(plain, &rec); err != nil || !rec.valid() {
		s.Clear()
		return Record{}, false
	}
	return rec, true
}

// Clear elimina el slot. Idempotente.
func (s *Store) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("no se pudo limpiar el slot de sesión", zap.Error(err))
	}
}

func (s *Store) encrypt(plain []byte) (string, error) {
	if s.key == nil {
		return "", errors.New("sin clave")
	}
	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ct := gcm.Seal(nil, nonce, plain, nil)
	return encodeBytes(nonce) + sep + encodeBytes(ct), nil
}

func (s *Store) decrypt(payload string) ([]byte, error) {
	if s.key == nil {
		return nil, errors.New("sin clave")
	}
	parts := strings.SplitN(payload, sep, 2)
	if len(parts) != 2 {
		return nil, errors.New("formato inválido")
	}
	nonce, err := decodeBytes(parts[0])
	if err != nil {
		return nil, err
	}
	ct, err := decodeBytes(parts[1])
	if err != nil {
		return nil, err
	}
	if len(nonce) != nonceSize {
		return nil, fmt.Errorf("nonce de %d bytes", len(nonce))
	}
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ct, nil)
}

func (s *Store) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// encodeBytes serializa bytes como decimales separados por coma
// (el mismo encoding binario-seguro que usaba el panel web).
func encodeBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

func decodeBytes(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	out := make([]byte, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("byte inválido %q", p)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// writeAtomic escribe via tmp + rename para no dejar un slot a medias.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
