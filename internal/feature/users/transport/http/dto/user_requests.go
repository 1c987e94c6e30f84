// Package dto defines request bodies for the users feature's HTTP transport.
package dto

// CreateUserReq is the body of POST /user/. Same contract as registration.
type CreateUserReq struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	CPF   string `json:"CPF" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}
