// Package totp implementa TOTP (RFC 6238): códigos de 6 dígitos,
// HMAC-SHA1, período de 30 segundos.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	digits = 6
	period = 30 // segundos
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret retorna 20 bytes aleatorios y su base32 sin padding
// (RFC 3548), listo para provisionar en una app authenticator.
func GenerateSecret() (raw []byte, encoded string, err error) {
	raw = make([]byte, 20)
	if _, err = rand.Read(raw); err != nil {
		return nil, "", err
	}
	return raw, b32.EncodeToString(raw), nil
}

// DecodeSecret decodifica un secreto base32 (con o sin padding, case
// insensitive, espacios tolerados).
func DecodeSecret(s string) ([]byte, error) {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	s = strings.TrimRight(s, "=")
	return b32.DecodeString(s)
}

// OTPAuthURL construye la URL otpauth:// para el QR de enrolamiento.
func OTPAuthURL(issuer, account, secretB32 string) string {
	label := url.PathEscape(fmt.Sprintf("%s:%s", issuer, account))
	q := url.Values{}
	q.Set("secret", secretB32)
	q.Set("issuer", issuer)
	q.Set("algorithm", "SHA1")
	q.Set("digits", fmt.Sprintf("%d", digits))
	q.Set("period", fmt.Sprintf("%d", period))
	return fmt.Sprintf("otpauth://totp/%s?%s", label, q.Encode())
}

// Verify valida code contra secret en una ventana de ±windowSteps pasos
// (default razonable: 1). lastCounterUsed, si no es nil, implementa
// anti-replay: ningún contador ya consumido vuelve a aceptarse. Retorna
// el contador aceptado para que el caller lo registre.
func Verify(secret []byte, code string, t time.Time, windowSteps int, lastCounterUsed *int64) (ok bool, counter int64) {
	code = strings.TrimSpace(code)
	if len(code) != digits {
		return false, 0
	}
	counter = t.Unix() / period
	for c := counter - int64(windowSteps); c <= counter+int64(windowSteps); c++ {
		if lastCounterUsed != nil && c <= *lastCounterUsed {
			continue // anti-replay
		}
		if At(secret, c) == code {
			return true, c
		}
	}
	return false, 0
}

// At calcula el código HOTP para un contador dado (RFC 4226).
// Exportado para que tests y tooling generen códigos válidos.
func At(secret []byte, counter int64) string {
	var msg [8]byte
	for i := 7; i >= 0; i-- {
		msg[i] = byte(counter & 0xff)
		counter >>= 8
	}
	m := hmac.New(sha1.New, secret)
	_, _ = m.Write(msg[:])
	sum := m.Sum(nil)
	offset := int(sum[len(sum)-1] & 0x0f)
	bin := (int(sum[offset])&0x7f)<<24 | int(sum[offset+1])<<16 | int(sum[offset+2])<<8 | int(sum[offset+3])
	return fmt.Sprintf("%06d", bin%1000000)
}

// Now calcula el código vigente para el instante t.
func Now(secret []byte, t time.Time) string {
	return At(secret, t.Unix()/period)
}
