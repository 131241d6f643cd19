package auth

import "errors"

var (
	ErrMissingCaptcha  = errors.New("captcha session is missing, request a new captcha")
	ErrBadCaptchaImage = errors.New("captcha image is not a base64 data URL")
	ErrNoDocument      = errors.New("verification document is required")
)
