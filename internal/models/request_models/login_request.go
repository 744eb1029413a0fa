package request_models

// LoginRequest is the OAuth2 password form.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
