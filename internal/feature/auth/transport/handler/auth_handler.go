// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/api"
	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/auth/transport/http/dto"
	"petmatch_backend/internal/feature/auth/usecase"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations consumed by this handler.
type AuthUsecase interface {
	Register(ctx context.Context, nome, email, cpf, senha string) (*entity.User, string, error)
	Login(ctx context.Context, email, senha string) (*entity.User, string, error)
	Profile(ctx context.Context, id uint) (*entity.User, error)
	CheckAdmin(ctx context.Context, id uint) (*entity.User, bool, error)
}

// AuthHandler serves the /auth route group.
type AuthHandler struct {
	auth AuthUsecase
	dev  bool
}

// NewAuthHandler creates an AuthHandler. dev enables error detail in
// 500 responses.
func NewAuthHandler(auth AuthUsecase, dev bool) *AuthHandler {
	return &AuthHandler{auth: auth, dev: dev}
}

// Register handles POST /auth/register: validates the body, creates the
// user with a hashed password, and returns a token with the public fields.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Todos os campos são obrigatórios"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Nome, req.Email, req.CPF, req.Senha)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailOrCPFTaken) {
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Email ou CPF já cadastrado"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno", err, h.dev))
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{
		"msg":   "Usuário registrado com sucesso",
		"token": token,
		"user":  user.Public(),
	})
}

// Login handles POST /auth/login: verifies credentials and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Email e senha são obrigatórios"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login failed", "reason", "unknown email", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Usuário não encontrado"})
		case errors.Is(err, usecase.ErrWrongPassword):
			slog.Warn("login failed", "reason", "wrong password", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Senha incorreta"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Error("Erro interno", err, h.dev))
		}
		return
	}

	slog.Info("user login", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{
		"msg":   "Login realizado",
		"token": token,
		"user":  user.Public(),
	})
}

// Verify handles GET /auth/verify: echoes the identity decoded by the
// auth middleware, confirming the token is valid.
func (h *AuthHandler) Verify(c *gin.Context) {
	id, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg": "Token válido",
		"user": gin.H{
			"id":    id.ID,
			"nome":  id.Nome,
			"email": id.Email,
		},
	})
}

// CheckAdmin handles GET /auth/check-admin: reports whether the
// authenticated user holds the admin profile.
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	id, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
		return
	}

	user, isAdmin, err := h.auth.CheckAdmin(c.Request.Context(), id.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Usuário não encontrado"})
			return
		}
		slog.Error("check-admin failed", "error", err, "user_id", id.ID)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno", err, h.dev))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "Status verificado",
		"isAdmin": isAdmin,
		"user": gin.H{
			"id":      user.ID,
			"nome":    user.Nome,
			"email":   user.Email,
			"isAdmin": isAdmin,
		},
	})
}

// Profile handles GET /auth/profile: returns the authenticated user's
// row with the password digest excluded.
func (h *AuthHandler) Profile(c *gin.Context) {
	id, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), id.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Usuário não encontrado"})
			return
		}
		slog.Error("profile load failed", "error", err, "user_id", id.ID)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno ao obter perfil", err, h.dev))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Perfil carregado com sucesso",
		"user": user,
	})
}
