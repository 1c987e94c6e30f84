// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/api"
	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/users/transport/http/dto"
	"petmatch_backend/internal/feature/users/usecase"
)

// UsersUsecase defines the user operations consumed by this handler.
type UsersUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, nome, email, cpf, senha string) (*entity.User, error)
	Update(ctx context.Context, id uint, patch usecase.Patch) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler serves the /user route group.
type UserHandler struct {
	users UsersUsecase
	dev   bool
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users UsersUsecase, dev bool) *UserHandler {
	return &UserHandler{users: users, dev: dev}
}

// List handles GET /user/.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Usuários Listados.", "user": users, "total": len(users)})
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Usuário não encontrado"})
			return
		}
		slog.Error("user get failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Usuário encontrado.", "user": user})
}

// Create handles POST /user/.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Todos os campos são obrigatorios."})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Nome, req.Email, req.CPF, req.Senha)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailOrCPFTaken) {
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Email ou CPF já cadastrado"})
			return
		}
		slog.Error("user create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("user created", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"msg": "Usuário criado com sucesso.", "user": user})
}

// Update handles PUT /user/:id with an explicit patch body. Unknown
// fields are rejected rather than silently ignored.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	var patch usecase.Patch
	if err := dec.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Usuário não encontrado"})
		case errors.Is(err, usecase.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Nenhum campo foi fornecido para atualização."})
		case errors.Is(err, usecase.ErrEmailOrCPFTaken):
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Email ou CPF já cadastrado"})
		default:
			slog.Error("user update failed", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Usuário atualizado com sucesso.", "user": user})
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Usuário não encontrado"})
			return
		}
		slog.Error("user delete failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("user deleted", "user_id", id)
	c.JSON(http.StatusOK, api.MessageBody{Msg: "Usuário deletado com sucesso."})
}
