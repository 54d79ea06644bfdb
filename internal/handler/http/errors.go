package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed headers are reported by [utils.ParseAuthHeader] instead.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
