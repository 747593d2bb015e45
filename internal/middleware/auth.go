package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rescueops/internal/domain"
	"rescueops/internal/render"
	"rescueops/pkg/e"

	"github.com/golang-jwt/jwt/v5"
)

type identityKey struct{}

// Claims is the token payload: the subject is the numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{secret: []byte(secret), issuer: issuer, parser: jwt.NewParser(opts...)}
}

func (v *Verifier) Verify(token string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, err
	}
	if !parsed.Valid {
		return domain.Identity{}, errors.New("invalid token")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{}, errors.New("subject is not a user id")
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: id, Role: role}, nil
}

// Sign issues an HS256 token for ident.
func (v *Verifier) Sign(ident domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(ident.UserID, 10),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: ident.Role.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Authenticate requires a valid bearer token and stores the identity in the
// request context.
func Authenticate(v *Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				render.Fail(w, http.StatusUnauthorized, e.CodeUnauthorized, "missing bearer token")
				return
			}

			ident, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				logger.Warn("token rejected", slog.String("ip", ClientIP(r)), slog.Any("error", err))
				render.Fail(w, http.StatusUnauthorized, e.CodeUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFrom(r.Context())
			if !ok || ident.Role != role {
				render.Error(w, e.AccessDenied("requires role "+role.String()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, ident domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(domain.Identity)
	return ident, ok
}
