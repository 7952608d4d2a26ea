package services

import (
	"errors"
	"fmt"
	"time"

	"vhotelok-backend/config"
	"vhotelok-backend/errs"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccessClaims is the JWT payload carried by the access_token cookie.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

type AuthService struct {
	users  *repositories.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(store *repositories.Store, settings config.Settings) *AuthService {
	return &AuthService{
		users:  store.Users,
		secret: []byte(settings.JWTSecretKey),
		ttl:    time.Duration(settings.AccessTokenExpireMinutes) * time.Minute,
	}
}

// TokenTTL reports how long issued tokens stay valid. The login cookie
// uses the same lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.ttl
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(firstName, lastName, username, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:      firstName,
		LastName:       lastName,
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.ErrEmailNotRegistered
		}
		return "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", errs.ErrIncorrectPassword
	}

	return s.CreateAccessToken(user.ID)
}

// CreateAccessToken signs a short-lived HS256 token for the user.
func (s *AuthService) CreateAccessToken(userID uint) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// DecodeToken validates a token and returns the user id it carries.
func (s *AuthService) DecodeToken(tokenString string) (uint, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, errs.ErrIncorrectToken
	}
	return claims.UserID, nil
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(userID uint) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
