package dto

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
