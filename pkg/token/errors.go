package token

import "errors"

var (
	ErrInvalidToken     = errors.New("token.invalid_format")
	ErrSignatureInvalid = errors.New("token.signature_mismatch")
)
