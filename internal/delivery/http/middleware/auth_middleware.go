package middleware

import (
	"log/slog"
	"strings"

	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Keys under which the authenticated identity is stored on echo.Context.
const (
	keyAccountID    = "account_id"
	keyAccountEmail = "account_email"
)

// AuthMiddleware guards routes behind bearer-token authentication. Besides
// validating the token it resolves the account email once per request, since
// job ownership checks key on the owner email rather than the account id.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc    service.TokenService
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    params.TokenSvc,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// Authenticate validates the bearer token and binds the account identity into
// the request context. An expired token fails distinctly from a forged one,
// so clients can tell "log in again" from "token rejected".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired.WrapMessage("bearer token expired")
			}

			return domainerrors.ErrTokenInvalid.WrapMessage("bearer token rejected")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// Token is valid but the account is gone.
				return domainerrors.ErrTokenInvalid.WrapMessage("token account no longer exists")
			}

			return errors.Wrap(err, "resolve authenticated account")
		}

		SetAccount(c, account.ID, account.Email)

		return next(c)
	}
}

// SetAccount binds the authenticated identity to the echo context.
func SetAccount(c echo.Context, id uuid.UUID, email string) {
	c.Set(keyAccountID, id)
	c.Set(keyAccountEmail, email)
}

// GetAccountID extracts the authenticated account id set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAccountID).(uuid.UUID)

	return id, ok
}

// GetAccountEmail extracts the authenticated account email set by Authenticate.
func GetAccountEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(keyAccountEmail).(string)

	return email, ok && email != ""
}
