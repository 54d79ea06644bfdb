package models

// AuthResponse is returned by the registration and login endpoints. The
// token is also echoed so the frontend can persist it without parsing the
// Authorization header.
type AuthResponse struct {
	Token    string `json:"token"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
}

// ErrorResponse is the uniform error body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
