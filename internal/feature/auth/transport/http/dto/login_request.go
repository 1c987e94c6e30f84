package dto

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}
