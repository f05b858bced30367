package domain

import "errors"

// ErrInvalidToken covers a missing, malformed, badly signed or expired
// access token. It always maps to a 401.
var ErrInvalidToken = errors.New("invalid or expired token")
