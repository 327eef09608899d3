package validators

import (
	"context"
	"errors"

	"github.com/9ssi7/turnstile"
	"go.uber.org/zap"
)

var (
	ErrTokenRequired = errors.New("token is required")
	ErrTokenInvalid  = errors.New("token_not_valid")
)

// Verifier checks a captcha token submitted with the contact form.
type Verifier interface {
	Verify(ctx context.Context, token, ip string) error
}

// TurnstileConfig configures Cloudflare Turnstile verification.
type TurnstileConfig struct {
	Secret    string
	TestToken string
	Release   bool
}

// TurnstileVerifier validates tokens against Cloudflare Turnstile. A verifier
// built without a secret accepts every request.
type TurnstileVerifier struct {
	verify    func(ctx context.Context, token, ip string) (bool, error)
	testToken string
	release   bool
	logger    *zap.Logger
}

func NewTurnstileVerifier(cfg TurnstileConfig, logger *zap.Logger) *TurnstileVerifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &TurnstileVerifier{
		testToken: cfg.TestToken,
		release:   cfg.Release,
		logger:    logger,
	}
	if cfg.Secret != "" {
		srv := turnstile.New(turnstile.Config{Secret: cfg.Secret})
		v.verify = srv.Verify
	}
	return v
}

func (v *TurnstileVerifier) Enabled() bool {
	return v != nil && v.verify != nil
}

func (v *TurnstileVerifier) Verify(ctx context.Context, token, ip string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		v.logger.Info("turnstile token missing", zap.String("ip", ip))
		return ErrTokenRequired
	}
	if !v.release && v.testToken != "" && token == v.testToken {
		v.logger.Info("turnstile test token used", zap.String("ip", ip))
		return nil
	}

	ok, err := v.verify(ctx, token, ip)
	if err != nil {
		v.logger.Error("turnstile verification error", zap.Error(err))
		return err
	}
	if !ok {
		v.logger.Info("turnstile token not valid", zap.String("ip", ip))
		return ErrTokenInvalid
	}
	return nil
}
