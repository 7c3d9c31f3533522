package auth

import (
	"errors"
	"net/url"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Error type discriminators.
const (
	TypeCredentialsSignin   = "CredentialsSignin"
	TypeUnsupportedStrategy = "UnsupportedStrategy"
)

// Error is a typed authentication failure. Callers switch on Type; anything
// that is not an *Error is an infrastructure problem, not a sign-in outcome.
type Error struct {
	Type string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "auth: " + e.Type + ": " + e.Err.Error()
	}
	return "auth: " + e.Type
}

func (e *Error) Unwrap() error { return e.Err }

var errBadCredentials = errors.New("email or password does not match")

const sessionTTL = 24 * time.Hour

// CredentialsProvider verifies an email/password pair against the users
// table and establishes a session on success.
type CredentialsProvider struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
}

func NewCredentialsProvider(users *repository.UserRepository, sessions *repository.SessionRepository) *CredentialsProvider {
	return &CredentialsProvider{users: users, sessions: sessions}
}

// SignIn runs the named strategy against the credential fields in form.
func (p *CredentialsProvider) SignIn(strategy string, form url.Values) (*models.Session, error) {
	if strategy != "credentials" {
		return nil, &Error{Type: TypeUnsupportedStrategy}
	}

	user, err := p.users.GetByEmail(form.Get("email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Type: TypeCredentialsSignin, Err: errBadCredentials}
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Get("password"))) != nil {
		return nil, &Error{Type: TypeCredentialsSignin, Err: errBadCredentials}
	}

	session := &models.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := p.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
