package gateway

import "errors"

// Taxonomía de errores compartida por todos los componentes. Se
// comparan con errors.Is; los adaptadores envuelven la causa concreta
// con fmt.Errorf("...: %w", err).
var (
	// ErrInvalidCredentials: el par email/password no coincide.
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrNoActiveChallenge: se intentó verificar un factor sin desafío pendiente.
	ErrNoActiveChallenge = errors.New("no hay desafío activo")

	// ErrInvalidCode: el código TOTP no verifica.
	ErrInvalidCode = errors.New("código incorrecto")

	// ErrPermissionDenied: el rol del usuario no permite la mutación.
	ErrPermissionDenied = errors.New("el rol no permite editar este recurso")

	// ErrValidation: falta un campo obligatorio.
	ErrValidation = errors.New("validación fallida")

	// ErrNotConfigured: escritura contra un backend no configurado.
	ErrNotConfigured = errors.New("backend no configurado")

	// ErrUnavailable: fallo transitorio de red/almacenamiento.
	// En lecturas se absorbe (fallback a fixtures); en escrituras se
	// propaga al caller sin reintentos.
	ErrUnavailable = errors.New("backend no disponible")

	// ErrNotFound: el registro no existe.
	ErrNotFound = errors.New("no encontrado")
)
