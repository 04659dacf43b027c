package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, userID int64) error
}

type userService struct {
	repo     repository.UserRepository
	sessions repository.SessionRepository
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewUserService(repo repository.UserRepository, sessions repository.SessionRepository, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:     repo,
		sessions: sessions,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
	}
}

// passwordMatches accepts both storage forms of the fixed user table:
// bcrypt hashes and plain entries compared verbatim.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil || !passwordMatches(user.Password, req.Password) {
		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	claims := &models.Claims{
		UserID:      user.ID,
		Username:    user.Username,
		Name:        user.Name,
		Role:        user.Role,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
		Name:      user.Name,
		Role:      user.Role,
	}, nil
}

// Logout drops the cashier's POS state: cart and active prescription.
func (s *userService) Logout(ctx context.Context, userID int64) error {

	if err := s.sessions.Clear(ctx, userID); err != nil {
		return errors.InternalError("Failed to clear session").WithError(err)
	}

	return nil
}
