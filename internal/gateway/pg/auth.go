package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/security/password"
	"github.com/eliteclan/backoffice/internal/security/secretbox"
	"github.com/eliteclan/backoffice/internal/security/token"
)

const refreshTokenBytes = 32

// AuthProvider implementa gateway.Auth sobre Postgres: passwords con
// argon2id, access tokens JWT HS256 y refresh tokens opacos que se
// guardan hasheados y se rotan en cada uso.
type AuthProvider struct {
	store      *Store
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthProvider arma el proveedor. accessTTL y refreshTTL en cero
// toman defaults razonables (15m / 30 días).
func NewAuthProvider(store *Store, jwtSecret []byte, accessTTL, refreshTTL time.Duration) *AuthProvider {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &AuthProvider{store: store, jwtSecret: jwtSecret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (p *AuthProvider) PasswordLogin(ctx context.Context, email, pass string) (gateway.Account, gateway.Tokens, error) {
	var (
		acc  gateway.Account
		hash string
		role string
	)
	err := p.store.pool.QueryRow(ctx, `
		SELECT id, email, role, password_hash, COALESCE(phone, '')
		FROM account WHERE lower(email) = lower($1)
	`, email).Scan(&acc.ID, &acc.Email, &role, &hash, &acc.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return gateway.Account{}, gateway.Tokens{}, gateway.ErrInvalidCredentials
	}
	if err != nil {
		return gateway.Account{}, gateway.Tokens{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	if !password.Verify(pass, hash) {
		return gateway.Account{}, gateway.Tokens{}, gateway.ErrInvalidCredentials
	}
	acc.Role = content.Role(role)

	// MFA: una fila en account_mfa_totp = factor activo. El secreto se
	// descifra solo para armar el desafío; nunca sale de memoria.
	var sealed string
	err = p.store.pool.QueryRow(ctx, `
		SELECT secret_encrypted FROM account_mfa_totp WHERE account_id = $1
	`, acc.ID).Scan(&sealed)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// sin MFA
	case err != nil:
		return gateway.Account{}, gateway.Tokens{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	default:
		secret, derr := secretbox.Decrypt(sealed)
		if derr != nil {
			return gateway.Account{}, gateway.Tokens{}, fmt.Errorf("descifrando secreto totp: %w", derr)
		}
		acc.MFAEnabled = true
		acc.TOTPSecret = secret
	}

	toks, err := p.issueTokens(ctx, acc)
	if err != nil {
		return gateway.Account{}, gateway.Tokens{}, err
	}
	return acc, toks, nil
}

func (p *AuthProvider) Refresh(ctx context.Context, refreshToken string) (gateway.Tokens, error) {
	hash := token.SHA256Base64URL(refreshToken)

	// Revocar y resolver la cuenta en un solo statement: si dos
	// refreshes corren con el mismo token, solo uno ve la fila viva.
	var accountID string
	err := p.store.pool.QueryRow(ctx, `
		UPDATE auth_refresh_token
		   SET revoked_at = NOW()
		 WHERE token_hash = $1
		   AND revoked_at IS NULL
		   AND expires_at > NOW()
		RETURNING account_id
	`, hash).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return gateway.Tokens{}, gateway.ErrInvalidCredentials
	}
	if err != nil {
		return gateway.Tokens{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	var (
		acc  gateway.Account
		role string
	)
	err = p.store.pool.QueryRow(ctx, `
		SELECT id, email, role, COALESCE(phone, '') FROM account WHERE id = $1
	`, accountID).Scan(&acc.ID, &acc.Email, &role, &acc.Phone)
	if err != nil {
		return gateway.Tokens{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	acc.Role = content.Role(role)

	return p.issueTokens(ctx, acc)
}

func (p *AuthProvider) Validate(ctx context.Context, accessToken string) (gateway.Account, error) {
	var claims accessClaims
	tok, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return p.jwtSecret, nil
	})
	if err != nil || !tok.Valid {
		return gateway.Account{}, gateway.ErrInvalidCredentials
	}
	return gateway.Account{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  content.Role(claims.Role),
	}, nil
}

func (p *AuthProvider) SignOut(ctx context.Context, refreshToken string) error {
	hash := token.SHA256Base64URL(refreshToken)
	_, err := p.store.pool.Exec(ctx, `
		UPDATE auth_refresh_token SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`, hash)
	if err != nil {
		// Best-effort: el caller igual descarta la sesión local.
		p.store.log.Warn("sign-out remoto falló", zap.Error(err))
	}
	return nil
}

func (p *AuthProvider) issueTokens(ctx context.Context, acc gateway.Account) (gateway.Tokens, error) {
	now := time.Now().UTC()
	exp := now.Add(p.accessTTL)

	claims := accessClaims{
		Email: acc.Email,
		Role:  string(acc.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Issuer:    "eliteclan-backoffice",
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.jwtSecret)
	if err != nil {
		return gateway.Tokens{}, err
	}

	refresh, err := token.GenerateOpaque(refreshTokenBytes)
	if err != nil {
		return gateway.Tokens{}, err
	}
	_, err = p.store.pool.Exec(ctx, `
		INSERT INTO auth_refresh_token (token_hash, account_id, expires_at)
		VALUES ($1, $2, $3)
	`, token.SHA256Base64URL(refresh), acc.ID, now.Add(p.refreshTTL))
	if err != nil {
		return gateway.Tokens{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	return gateway.Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    exp,
	}, nil
}

// ProvisionAccount crea o actualiza una cuenta. Lo usa el comando de
// administración para sembrar el primer admin.
func (p *AuthProvider) ProvisionAccount(ctx context.Context, email, plainPassword string, role content.Role) (string, error) {
	hash, err := password.Hash(password.Default, plainPassword)
	if err != nil {
		return "", err
	}
	var id string
	err = p.store.pool.QueryRow(ctx, `
		INSERT INTO account (email, password_hash, role)
		VALUES (lower($1), $2, $3)
		ON CONFLICT (email)
		DO UPDATE SET password_hash = EXCLUDED.password_hash,
		              role = EXCLUDED.role,
		              updated_at = NOW()
		RETURNING id
	`, email, hash, string(role)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	return id, nil
}

// EnrollTOTP guarda (cifrado) el secreto TOTP de la cuenta. Re-enrolar
// pisa el secreto anterior y resetea la confirmación.
func (p *AuthProvider) EnrollTOTP(ctx context.Context, accountID, secret string) error {
	sealed, err := secretbox.Encrypt(secret)
	if err != nil {
		return err
	}
	_, err = p.store.pool.Exec(ctx, `
		INSERT INTO account_mfa_totp (account_id, secret_encrypted)
		VALUES ($1, $2)
		ON CONFLICT (account_id)
		DO UPDATE SET secret_encrypted = EXCLUDED.secret_encrypted,
		              confirmed_at = NULL,
		              last_used_at = NULL
	`, accountID, sealed)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	return nil
}

// DisableTOTP borra el factor de la cuenta.
func (p *AuthProvider) DisableTOTP(ctx context.Context, accountID string) error {
	_, err := p.store.pool.Exec(ctx, `DELETE FROM account_mfa_totp WHERE account_id = $1`, accountID)
	return err
}
