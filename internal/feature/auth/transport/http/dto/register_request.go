// Package dto defines request bodies for the auth feature's HTTP transport.
package dto

// RegisterReq is the body of POST /auth/register. Every field is
// required; gin's binding tags enforce presence and email format.
type RegisterReq struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	CPF   string `json:"CPF" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}
