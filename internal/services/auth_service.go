package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bursa/internal/models"
	"bursa/internal/repositories"
	"bursa/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailRegistered is returned when signing up with an email that
	// already has an account.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is the uniform login rejection. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken is the uniform rejection for any token verification
	// failure: bad signature, malformed payload, missing subject, or expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	mqClient   *rabbitmq.Client // May be nil; signup events are best-effort
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The signing secret is injected
// here once and shared by token issuance and validation.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, mqClient *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		mqClient:   mqClient,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 7 * 24 * time.Hour, // Token valid for one week
	}
}

// RegisterUser registers a new user, hashes their password, and saves them
// to the database. The username is set to the email address.
func (s *AuthService) RegisterUser(user *models.User) error {
	user.Username = user.Email

	// Friendly fast-path check; the unique indexes are the authoritative
	// guard when two signups race.
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return ErrEmailRegistered
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return ErrEmailRegistered
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"userID":   user.ID,
			"username": user.Username,
		}
		if err := s.mqClient.PublishEvent(rabbitmq.EventUserRegistered, payload); err != nil {
			log.Printf("Warning: Failed to publish user registered event for user %d: %v", user.ID, err)
		}
	}

	return nil
}

// LoginUser authenticates a user and returns a signed JWT token if
// successful. Any failure yields ErrInvalidCredentials.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	// Compare the provided password with the stored bcrypt hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// Generate JWT token with the username as the subject
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"exp": time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat": time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid. All verification failures collapse into ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, ok := claims["sub"].(string); !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UserFromToken validates a token and resolves its subject back to a user
// record. Resolution failure is reported the same way as a bad token.
func (s *AuthService) UserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	username := claims["sub"].(string) // presence checked in ValidateToken
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}
