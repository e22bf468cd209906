package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ecoride/support-backend/internal/config"
	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/ecoride/support-backend/internal/phone"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidPhone    = errors.New("invalid mobile number")
	ErrInvalidCode     = errors.New("invalid or expired code")
	ErrTooManyAttempts = errors.New("too many failed attempts, request a new code")
	ErrInvalidToken    = errors.New("invalid or expired refresh token")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	sms SMSSender
}

func NewAuthService(db *gorm.DB, cfg *config.Config, sms SMSSender) *AuthService {
	return &AuthService{db: db, cfg: cfg, sms: sms}
}

// RequestOTP validates the number, stores a hashed one-time code and hands the
// plaintext to the SMS sender. Previous unconsumed codes for the number are
// invalidated so only the latest code verifies.
func (s *AuthService) RequestOTP(mobileNumber string) error {
	if !phone.Valid(mobileNumber) {
		return ErrInvalidPhone
	}
	normalized := phone.Normalize(mobileNumber)

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash code: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OTPCode{}).
			Where("mobile_number = ? AND consumed = ?", normalized, false).
			Update("consumed", true).Error; err != nil {
			return err
		}
		return tx.Create(&models.OTPCode{
			MobileNumber: normalized,
			CodeHash:     string(hash),
			ExpiresAt:    time.Now().Add(s.cfg.OTPExpiry),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if err := s.sms.SendOTP(normalized, code); err != nil {
		slog.Error("otp delivery failed", "mobile", normalized, "error", err)
		return fmt.Errorf("failed to send code: %w", err)
	}
	return nil
}

// VerifyOTP checks the code against the latest unconsumed entry for the
// number. On success the code is consumed, a profile is created if the number
// has never logged in (role customer), and a token pair is issued.
func (s *AuthService) VerifyOTP(mobileNumber, code string) (*dto.AuthResponse, error) {
	if !phone.Valid(mobileNumber) {
		return nil, ErrInvalidPhone
	}
	normalized := phone.Normalize(mobileNumber)

	var stored models.OTPCode
	err := s.db.Where("mobile_number = ? AND consumed = ?", normalized, false).
		Order("created_at DESC").First(&stored).Error
	if err != nil {
		return nil, ErrInvalidCode
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("consumed", true)
		return nil, ErrInvalidCode
	}
	if stored.Attempts >= s.cfg.OTPMaxAttempts {
		s.db.Model(&stored).Update("consumed", true)
		return nil, ErrTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(code)); err != nil {
		s.db.Model(&stored).Update("attempts", gorm.Expr("attempts + 1"))
		return nil, ErrInvalidCode
	}

	s.db.Model(&stored).Update("consumed", true)

	profile, err := s.findOrCreateProfile(normalized)
	if err != nil {
		return nil, err
	}

	return s.generateTokenPair(profile)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = ?", tokenHash, false).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}

	return s.generateTokenPair(&profile)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) findOrCreateProfile(mobileNumber string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("mobile_number = ?", mobileNumber).First(&profile).Error
	if err == nil {
		return &profile, nil
	}

	profile = models.Profile{
		UserID:       uuid.New(),
		MobileNumber: mobileNumber,
		Role:         models.RoleCustomer,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

func (s *AuthService) generateTokenPair(profile *models.Profile) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(profile)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile: dto.ProfileResponse{
			ID:           profile.ID,
			UserID:       profile.UserID,
			FullName:     profile.FullName,
			Email:        profile.Email,
			MobileNumber: profile.MobileNumber,
			Role:         profile.Role,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":    profile.UserID.String(),
		"mobile": profile.MobileNumber,
		"role":   profile.Role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(profile *models.Profile) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	tokenHash := hashToken(rawToken)

	record := models.RefreshToken{
		UserID:    profile.UserID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
