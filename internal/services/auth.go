package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrSellerDoesNotExist = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionInvalid     = errors.New("session is no longer valid")
)

const minPasswordLen = 6

// saltBytes is the entropy of a freshly generated password salt.
const saltBytes = 16

// SellerReader defines the reads the auth flow needs.
type SellerReader interface {
	GetByID(ctx context.Context, sellerID uuid.UUID) (*models.SellerDB, error)
	GetByUsername(ctx context.Context, username string) (*models.SellerDB, error)
}

// SellerWriter defines write operations for sellers.
type SellerWriter interface {
	Save(ctx context.Context, seller models.SellerDB) (uuid.UUID, error)
}

// TokenGenerator defines an interface for issuing and resolving session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, sellerID uuid.UUID) (string, error)
	GetSellerID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthService handles registration, login, and session resolution.
type AuthService struct {
	reader SellerReader
	writer SellerWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader SellerReader, writer SellerWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// GenerateSalt returns a fresh hex-encoded random salt.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword computes the stored credential form: hex SHA-256 of the
// password concatenated with the salt.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Register creates a new seller account and returns its id with a session token.
func (svc *AuthService) Register(ctx context.Context, username, email, password, location string) (uuid.UUID, string, error) {
	if len(password) < minPasswordLen {
		return uuid.Nil, "", ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return uuid.Nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return uuid.Nil, "", ErrUsernameTaken
	}

	salt, err := GenerateSalt()
	if err != nil {
		logger.Log.Errorw("failed to generate salt", "err", err)
		return uuid.Nil, "", err
	}

	seller := models.SellerDB{
		Username:     username,
		Email:        email,
		PasswordHash: HashPassword(password, salt),
		PasswordSalt: salt,
		Rating:       5.0,
		TotalSales:   0,
		MemberSince:  time.Now(),
		Location:     location,
	}

	sellerID, err := svc.writer.Save(ctx, seller)
	if err != nil {
		logger.Log.Errorw("failed to save seller", "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return uuid.Nil, "", err
	}

	return sellerID, token, nil
}

// Login authenticates a seller and returns a session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	seller, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get seller", "err", err)
		return "", err
	}
	if seller == nil {
		logger.Log.Errorw("seller does not exist", "username", username)
		return "", ErrSellerDoesNotExist
	}

	if !matchesPassword(seller, password) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, seller.SellerID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// VerifyPassword recomputes the credential hash for the stored salt and
// compares it against the stored hash. A missing seller or missing hash
// fields yield false without error.
func (svc *AuthService) VerifyPassword(ctx context.Context, sellerID uuid.UUID, password string) (bool, error) {
	seller, err := svc.reader.GetByID(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if seller == nil {
		return false, nil
	}
	return matchesPassword(seller, password), nil
}

// Resolve maps a session token to a live seller record. A token whose seller
// no longer exists is an invalidated session, not a storage failure.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.SellerDB, error) {
	sellerID, err := svc.jwt.GetSellerID(ctx, tokenString)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	seller, err := svc.reader.GetByID(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to resolve session seller", "err", err)
		return nil, err
	}
	if seller == nil {
		return nil, ErrSessionInvalid
	}
	return seller, nil
}

func matchesPassword(seller *models.SellerDB, password string) bool {
	if seller.PasswordHash == "" || seller.PasswordSalt == "" {
		return false
	}
	computed := HashPassword(password, seller.PasswordSalt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(seller.PasswordHash)) == 1
}
