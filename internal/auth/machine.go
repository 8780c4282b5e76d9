// Package auth implementa la máquina de estados de autenticación del
// backoffice: login con password, desafío de segundo factor TOTP,
// restauración y refresh de sesión, y sign-out.
//
// Estados: loading → {unauthenticated, authenticated};
// unauthenticated → challenge → authenticated; cualquier estado →
// unauthenticated vía SignOut. No hay estado terminal.
//
// La Machine es dueña exclusiva de la Session activa y del
// PendingChallenge; nada más los muta. Se construye una sola vez al
// arranque y se pasa por referencia (inyección), nunca como global.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/observability/logger"
	"github.com/eliteclan/backoffice/internal/security/totp"
	"github.com/eliteclan/backoffice/internal/session"
)

// Status es el estado observable de la máquina.
type Status string

const (
	StatusLoading         Status = "loading"
	StatusUnauthenticated Status = "unauthenticated"
	StatusChallenge       Status = "challenge"
	StatusAuthenticated   Status = "authenticated"
)

// Factor identifica el segundo factor pendiente.
type Factor string

const (
	FactorTOTP Factor = "totp"
	FactorSMS  Factor = "sms"
)

// Session es el bundle de credenciales activo. Exactamente una por
// instancia de cliente en ejecución.
type Session struct {
	Tokens  gateway.Tokens
	Account gateway.Account
}

// pendingChallenge es el estado transitorio de una verificación de
// segundo factor en curso. Nunca se persiste: se pierde con el proceso.
type pendingChallenge struct {
	factor      Factor
	account     gateway.Account
	tokens      gateway.Tokens
	secret      []byte // secreto TOTP crudo
	lastCounter int64  // anti-replay dentro del desafío
	fallback    bool
}

// CodeSender entrega un código de un solo uso por un canal alternativo
// (SMS vía gateway SMTP, o email directo). Opcional.
type CodeSender interface {
	SendCode(ctx context.Context, to, code string) error
}

// FallbackCredentials es el par fijo aceptado cuando el backend no está
// configurado. Solo para uso local/demo; el constructor lo rechaza en
// entornos prod.
type FallbackCredentials struct {
	Email      string
	Password   string
	Role       content.Role
	TOTPSecret string // base32
}

// Enabled indica si el par de fallback está completo.
func (f FallbackCredentials) Enabled() bool {
	return f.Email != "" && f.Password != "" && f.TOTPSecret != ""
}

// Machine es la máquina de estados de autenticación.
type Machine struct {
	gw       *gateway.Gateway
	store    *session.Store
	sender   CodeSender
	fallback FallbackCredentials
	window   int // pasos de tolerancia de reloj TOTP

	mu      sync.Mutex
	status  Status
	sess    *Session
	pending *pendingChallenge

	now func() time.Time
	log *zap.Logger
}

// Option configura la Machine.
type Option func(*Machine)

// WithCodeSender habilita la entrega de códigos por canal alternativo.
func WithCodeSender(s CodeSender) Option {
	return func(m *Machine) { m.sender = s }
}

// WithFallbackCredentials habilita el login sin backend.
func WithFallbackCredentials(f FallbackCredentials) Option {
	return func(m *Machine) { m.fallback = f }
}

// WithClock inyecta el reloj. Para tests.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// New construye la máquina en estado loading.
func New(gw *gateway.Gateway, store *session.Store, opts ...Option) *Machine {
	m := &Machine{
		gw:     gw,
		store:  store,
		window: 1,
		status: StatusLoading,
		now:    time.Now,
		log:    logger.Named("auth"),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Status retorna el estado actual.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Session retorna una copia de la sesión activa, o false si no hay.
func (m *Machine) Session() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return Session{}, false
	}
	return *m.sess, true
}

// Account retorna la cuenta autenticada, o false.
func (m *Machine) Account() (gateway.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return gateway.Account{}, false
	}
	return m.sess.Account, true
}

// FactorRequired retorna el factor pendiente durante un desafío.
func (m *Machine) FactorRequired() (Factor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return "", false
	}
	return m.pending.factor, true
}

// Initialize intenta restaurar una sesión persistida. Es el único punto
// de restauración automática: éxito → authenticated con usuario y rol
// restaurados; ausencia o fallo → unauthenticated.
func (m *Machine) Initialize(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.gw.Configured {
		m.status = StatusUnauthenticated
		return
	}

	rec, ok := m.store.Load()
	if !ok {
		m.status = StatusUnauthenticated
		return
	}

	acct, err := m.gw.Auth.Validate(ctx, rec.Tokens.AccessToken)
	if err != nil {
		m.log.Info("sesión persistida inválida, se requiere login", zap.Error(err))
		m.store.Clear()
		m.status = StatusUnauthenticated
		return
	}

	m.sess = &Session{Tokens: rec.Tokens, Account: acct}
	m.status = StatusAuthenticated
	m.log.Info("sesión restaurada", zap.String("email", acct.Email), zap.String("role", string(acct.Role)))
}

// Login valida credenciales. Cuenta con MFA → estado challenge con un
// PendingChallenge nuevo (un segundo Login reemplaza en silencio al
// pendiente); sin MFA → authenticated y sesión persistida.
func (m *Machine) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.gw.Configured {
		return m.loginFallback(email, password)
	}

	acct, toks, err := m.gw.Auth.PasswordLogin(ctx, email, password)
	if err != nil {
		return err
	}

	if acct.MFAEnabled {
		secret, err := totp.DecodeSecret(acct.TOTPSecret)
		if err != nil {
			return fmt.Errorf("secreto TOTP inválido para %s: %w", acct.Email, err)
		}
		m.pending = &pendingChallenge{
			factor:      FactorTOTP,
			account:     acct,
			tokens:      toks,
			secret:      secret,
			lastCounter: -1,
		}
		m.status = StatusChallenge
		return nil
	}

	m.activateLocked(Session{Tokens: toks, Account: acct})
	return nil
}

// loginFallback acepta únicamente el par fijo de configuración y
// siempre desafía con TOTP. Solo para entorno local sin backend.
func (m *Machine) loginFallback(email, password string) error {
	if !m.fallback.Enabled() {
		return gateway.ErrNotConfigured
	}
	if email != m.fallback.Email || password != m.fallback.Password {
		return gateway.ErrInvalidCredentials
	}
	secret, err := totp.DecodeSecret(m.fallback.TOTPSecret)
	if err != nil {
		return fmt.Errorf("secreto TOTP de fallback inválido: %w", err)
	}
	m.pending = &pendingChallenge{
		factor:      FactorTOTP,
		secret:      secret,
		lastCounter: -1,
		fallback:    true,
	}
	m.status = StatusChallenge
	return nil
}

// VerifyFactor valida el código contra el secreto del desafío activo
// (6 dígitos, paso de 30s, tolerancia ±1 paso). Éxito: promueve los
// candidatos a sesión activa, persiste y limpia el desafío. Un código
// incorrecto deja el estado en challenge y no toca nada persistido.
func (m *Machine) VerifyFactor(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.pending
	if p == nil {
		return gateway.ErrNoActiveChallenge
	}

	ok, counter := totp.Verify(p.secret, code, m.now(), m.window, &p.lastCounter)
	if !ok {
		return gateway.ErrInvalidCode
	}
	p.lastCounter = counter

	sess := Session{Tokens: p.tokens, Account: p.account}
	if p.fallback {
		sess = m.fallbackSession(code)
	}

	m.activateLocked(sess)
	return nil
}

// fallbackSession fabrica una pseudo-sesión local tras verificar el
// factor sin backend. No sobrevive a un reinicio (Initialize sin
// backend siempre termina en unauthenticated).
func (m *Machine) fallbackSession(code string) Session {
	now := m.now()
	return Session{
		Tokens: gateway.Tokens{
			AccessToken:  fmt.Sprintf("dev-%s-%d", code, now.UnixMilli()),
			RefreshToken: fmt.Sprintf("dev-%d", now.UnixMilli()),
			ExpiresAt:    now.Add(time.Hour),
		},
		Account: gateway.Account{
			ID:    "dev-admin",
			Email: m.fallback.Email,
			Role:  m.fallback.Role,
		},
	}
}

// RequestAlternateFactor cambia el desafío pendiente a entrega de
// código por SMS/email cuando hay un sender y un destino disponibles.
// En cualquier otro caso es un no-op observable solo por log: la
// entrega alternativa es infraestructura opcional, no un error.
func (m *Machine) RequestAlternateFactor(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.pending
	if p == nil || m.sender == nil {
		m.log.Info("SMS MFA no configurado, se mantiene flujo TOTP")
		return
	}
	to := p.account.Phone
	if to == "" {
		to = p.account.Email
	}
	if to == "" {
		m.log.Info("desafío sin destino para código alternativo, se mantiene flujo TOTP")
		return
	}

	code := totp.Now(p.secret, m.now())
	if err := m.sender.SendCode(ctx, to, code); err != nil {
		m.log.Warn("entrega de código alternativo falló, se mantiene flujo TOTP", zap.Error(err))
		return
	}
	p.factor = FactorSMS
	m.log.Info("código alternativo enviado", zap.String("to", to))
}

// SignOut limpia sesión activa, desafío pendiente y slot persistido, y
// revoca el refresh token best-effort. Idempotente: firmar salida dos
// veces equivale a una.
func (m *Machine) SignOut(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signOutLocked(ctx)
}

func (m *Machine) signOutLocked(ctx context.Context) {
	if m.sess != nil && m.gw.Configured {
		if err := m.gw.Auth.SignOut(ctx, m.sess.Tokens.RefreshToken); err != nil {
			m.log.Warn("revocación remota falló", zap.Error(err))
		}
	}
	m.sess = nil
	m.pending = nil
	m.store.Clear()
	m.status = StatusUnauthenticated
}

// Refresh intercambia el refresh token por un access token nuevo. Un
// fallo de refresh es muerte de sesión, no un error reintentable: se
// hace sign-out y se propaga la causa.
func (m *Machine) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess == nil || !m.gw.Configured {
		return nil
	}

	toks, err := m.gw.Auth.Refresh(ctx, m.sess.Tokens.RefreshToken)
	if err != nil {
		m.log.Warn("refresh falló, cerrando sesión", zap.Error(err))
		m.signOutLocked(ctx)
		return fmt.Errorf("refresh de sesión: %w", err)
	}

	m.sess.Tokens = toks
	m.persistLocked()
	return nil
}

// activateLocked promueve una sesión a activa, descarta cualquier
// desafío pendiente y la persiste.
func (m *Machine) activateLocked(sess Session) {
	m.sess = &sess
	m.pending = nil
	m.status = StatusAuthenticated
	m.persistLocked()
}

func (m *Machine) persistLocked() {
	if m.sess == nil || m.sess.Tokens.RefreshToken == "" {
		return
	}
	if err := m.store.Save(session.Record{Tokens: m.sess.Tokens, Account: m.sess.Account}); err != nil {
		m.log.Warn("no se pudo persistir la sesión", zap.Error(err))
	}
}
