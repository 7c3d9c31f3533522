package actions

import (
	"errors"
	"net/url"

	"invoice-dashboard-backend/internal/auth"
	"invoice-dashboard-backend/internal/models"
)

// SignInProvider is the identity-provider integration behind Authenticate.
type SignInProvider interface {
	SignIn(strategy string, form url.Values) (*models.Session, error)
}

type AuthActions struct {
	provider SignInProvider
}

func NewAuthActions(provider SignInProvider) *AuthActions {
	return &AuthActions{provider: provider}
}

// Authenticate runs the credentials strategy. Typed auth failures come back
// as a user-facing message; anything else is returned to the caller as-is.
func (a *AuthActions) Authenticate(form url.Values) (*models.Session, string, error) {
	session, err := a.provider.SignIn("credentials", form)
	if err != nil {
		var authErr *auth.Error
		if errors.As(err, &authErr) {
			if authErr.Type == auth.TypeCredentialsSignin {
				return nil, "Invalid credentials.", nil
			}
			return nil, "Something went wrong.", nil
		}
		return nil, "", err
	}
	return session, "", nil
}
