// Package auth implements the stubbed demo authentication: a plain
// credential check against the user store and a signed bearer token. It
// stands in for real multi-user authentication, which is out of scope.
package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	secret []byte
	issuer string
	ttl    time.Duration
	logger *zap.Logger
}

func New(users repository.UserRepository, secret, issuer string, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		logger: logger,
	}
}

// Login checks the credentials and issues a session token. The password
// comparison is plain text: the only account is the seeded demo user.
func (uc *UseCase) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Password != password {
		return nil, domain.ErrUnauthorized
	}

	expiresAt := time.Now().Add(uc.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": strconv.Itoa(user.ID),
		"iss":     uc.issuer,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to sign session token", err)
	}

	uc.logger.Info("session issued", zap.Int("user_id", user.ID), zap.String("username", user.Username))

	return &domain.Session{
		User:      user.Sanitized(),
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentUser resolves the authenticated user by id.
func (uc *UseCase) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
