package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecoride/support-backend/internal/config"
)

// SMSSender delivers one-time login codes to a phone number.
type SMSSender interface {
	SendOTP(mobileNumber, code string) error
}

// NewSMSSender picks the gateway sender when configured, otherwise the
// console sender used in development.
func NewSMSSender(cfg *config.Config) SMSSender {
	if cfg.SMSGatewayURL != "" {
		return &GatewaySender{
			url:      cfg.SMSGatewayURL,
			apiKey:   cfg.SMSGatewayKey,
			senderID: cfg.SMSSenderID,
			client:   &http.Client{Timeout: 10 * time.Second},
		}
	}
	return &ConsoleSender{}
}

// ConsoleSender logs codes instead of sending them.
type ConsoleSender struct{}

func (s *ConsoleSender) SendOTP(mobileNumber, code string) error {
	slog.Info("OTP code issued (console sender)", "mobile", mobileNumber, "code", code)
	return nil
}

// GatewaySender posts codes to an HTTP SMS gateway.
type GatewaySender struct {
	url      string
	apiKey   string
	senderID string
	client   *http.Client
}

func (s *GatewaySender) SendOTP(mobileNumber, code string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      mobileNumber,
		"from":    s.senderID,
		"message": fmt.Sprintf("Your EcoRide Support login code is %s. It expires in 5 minutes.", code),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
