package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pharma_express/internal/auth"
	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
	"pharma_express/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotRegistered  = errors.New("email not registered")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrSessionNotFound     = errors.New("session not found")
)

// IAuthUseCase signs users in against the remote medical API and manages
// the server-side sessions wrapping its bearer tokens.

type IAuthUseCase interface {
	Register(ctx context.Context, reg entities.Registration) error
	Login(ctx context.Context, email, password string) (string, entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SessionByID(ctx context.Context, sessionID string) (entities.Session, error)
}

type AuthUseCase struct {
	gateway  interfaces.IAuthGateway
	sessions interfaces.ISessionRepository
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IAuthGateway, sessions interfaces.ISessionRepository, secret []byte, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, sessions: sessions, secret: secret, tokenTTL: tokenTTL}
}

func (u *AuthUseCase) Register(ctx context.Context, reg entities.Registration) error {
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.Email == "" || reg.Password == "" {
		return ErrInvalidRegistration
	}
	return u.gateway.Register(ctx, reg)
}

// Login resolves the numeric user id by email lookup, exchanges credentials
// for the upstream token, persists the session and mints the client JWT.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", entities.Session{}, ErrInvalidCredentials
	}

	userID, err := u.gateway.UserIDByEmail(ctx, email)
	if err != nil {
		log.Printf("[auth][usecase] user lookup failed email=%s err=%v", email, err)
		return "", entities.Session{}, err
	}
	if userID == 0 {
		return "", entities.Session{}, ErrEmailNotRegistered
	}

	token, err := u.gateway.Login(ctx, email, password)
	if err != nil {
		var be *pkg.BackendError
		if errors.As(err, &be) {
			log.Printf("[auth][usecase] login rejected email=%s code=%d", email, be.StatusCode)
			return "", entities.Session{}, ErrInvalidCredentials
		}
		return "", entities.Session{}, err
	}

	sess := entities.Session{
		ID:        uuid.NewString(),
		Token:     token,
		Email:     email,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.sessions.Create(ctx, sess)
	if err != nil {
		log.Printf("[auth][usecase] session create failed email=%s err=%v", email, err)
		return "", entities.Session{}, err
	}

	jwtToken, err := auth.MintToken(created.ID, created.UserID, u.secret, u.tokenTTL)
	if err != nil {
		return "", entities.Session{}, err
	}
	log.Printf("[auth][usecase] login success user_id=%d session_id=%s", created.UserID, created.ID)
	return jwtToken, created, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, sessionID)
}

func (u *AuthUseCase) SessionByID(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}
