package services

import (
	"testing"
	"time"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSender records the last code instead of sending it.
type captureSender struct {
	mobile string
	code   string
}

func (s *captureSender) SendOTP(mobile, code string) error {
	s.mobile = mobile
	s.code = code
	return nil
}

func TestOTPLoginFlow(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("98765 43210"))
	assert.Equal(t, "+919876543210", sender.mobile)
	require.Len(t, sender.code, 6)

	// Wrong code is rejected and does not consume the entry.
	wrong := "000000"
	if sender.code == wrong {
		wrong = "000001"
	}
	_, err := svc.VerifyOTP("9876543210", wrong)
	assert.ErrorIs(t, err, ErrInvalidCode)

	resp, err := svc.VerifyOTP("9876543210", sender.code)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleCustomer, resp.Profile.Role)
	assert.Equal(t, "+919876543210", resp.Profile.MobileNumber)

	// A consumed code cannot be replayed.
	_, err = svc.VerifyOTP("9876543210", sender.code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("9876543210"))

	require.NoError(t, db.Model(&models.OTPCode{}).
		Where("mobile_number = ?", "+919876543210").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err := svc.VerifyOTP("9876543210", sender.code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyOTPAttemptCap(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	cfg := testConfig()
	cfg.OTPMaxAttempts = 2
	svc := NewAuthService(db, cfg, sender)

	require.NoError(t, svc.RequestOTP("9876543210"))

	wrong := "999999"
	if sender.code == wrong {
		wrong = "999998"
	}
	for i := 0; i < 2; i++ {
		_, err := svc.VerifyOTP("9876543210", wrong)
		assert.ErrorIs(t, err, ErrInvalidCode)
	}

	// Even the right code is refused once the cap is hit.
	_, err := svc.VerifyOTP("9876543210", sender.code)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestRequestOTPInvalidatesPreviousCode(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("9876543210"))
	firstCode := sender.code

	require.NoError(t, svc.RequestOTP("9876543210"))
	if firstCode == sender.code {
		t.Skip("codes collided, nothing to assert")
	}

	_, err := svc.VerifyOTP("9876543210", firstCode)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = svc.VerifyOTP("9876543210", sender.code)
	assert.NoError(t, err)
}

func TestRequestOTPInvalidPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &captureSender{})

	assert.ErrorIs(t, svc.RequestOTP("12345"), ErrInvalidPhone)
}

func TestSecondLoginReusesProfile(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("9876543210"))
	first, err := svc.VerifyOTP("9876543210", sender.code)
	require.NoError(t, err)

	require.NoError(t, svc.RequestOTP("+91 98765 43210"))
	second, err := svc.VerifyOTP("+91 98765 43210", sender.code)
	require.NoError(t, err)

	assert.Equal(t, first.Profile.UserID, second.Profile.UserID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("9876543210"))
	resp, err := svc.VerifyOTP("9876543210", sender.code)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// Rotation revokes the old token.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := NewAuthService(db, testConfig(), sender)

	require.NoError(t, svc.RequestOTP("9876543210"))
	resp, err := svc.VerifyOTP("9876543210", sender.code)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
