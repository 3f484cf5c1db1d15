package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"bursa/internal/models"
	"bursa/internal/repositories"
	"bursa/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(offset, limit int) ([]models.User, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

// TestMain is used to setup the test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, nil)

	// Test successful registration
	user := &models.User{
		Email:    "a@x.com",
		Password: "pw1pw1",
	}
	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("user with email a@x.com: %w", repositories.ErrUserNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Username, "username should be derived from the email")
	// The stored password must be a hash of the submitted secret
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1pw1")))
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(&models.User{Email: "a@x.com", Password: "pw1pw1"})
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	mockRepo.AssertExpectations(t)

	// Test a duplicate slipping past the pre-check: the unique index kicks
	// in at insert and the conflict error is still reported.
	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("user with email a@x.com: %w", repositories.ErrUserNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("failed: %w", repositories.ErrDuplicateUser)).Once()
	err = authService.RegisterUser(&models.User{Email: "a@x.com", Password: "pw1pw1"})
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, nil)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("pw1pw1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       123,
		Username: "a@x.com",
		Email:    "a@x.com",
		Password: string(hashedPassword),
		IsActive: true,
	}

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("a@x.com", "pw1pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate the token structure and claims
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.Username, claims["sub"])
	// The expiry window is one week
	exp := int64(claims["exp"].(float64))
	expectedExp := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, expectedExp, exp, 10)
	mockRepo.AssertExpectations(t)

	// Test wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("a@x.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Test unknown user: the same rejection, so callers cannot tell which
	// part of the check failed
	mockRepo.On("GetByUsername", "nobody@x.com").Return(nil, fmt.Errorf("user with username nobody@x.com: %w", repositories.ErrUserNotFound)).Once()
	_, err = authService.LoginUser("nobody@x.com", "pw1pw1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, nil)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "a@x.com", claims["sub"])

	// Test malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test token signed with a different secret
	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(foreignTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test token without a subject claim
	noSubToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	noSubTokenString, _ := noSubToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(noSubTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_UserFromToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret, nil)

	user := &models.User{ID: 123, Username: "a@x.com", Email: "a@x.com"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"exp": jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test subject resolution
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	resolved, err := authService.UserFromToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	mockRepo.AssertExpectations(t)

	// Test a token whose subject no longer resolves to a user
	mockRepo.On("GetByUsername", user.Username).Return(nil, fmt.Errorf("user with username a@x.com: %w", repositories.ErrUserNotFound)).Once()
	_, err = authService.UserFromToken(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertExpectations(t)
}
