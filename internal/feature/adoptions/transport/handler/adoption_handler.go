// Package handler provides the HTTP handlers for the adoptions feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/api"
	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/adoptions/transport/http/dto"
	"petmatch_backend/internal/feature/adoptions/usecase"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

// AdoptionsUsecase defines the adoption operations consumed by this handler.
type AdoptionsUsecase interface {
	List(ctx context.Context) ([]entity.AdoptionRecord, error)
	Get(ctx context.Context, id uint) (*entity.AdoptionRecord, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error)
	RegisterRescue(ctx context.Context, in usecase.RescueInput) (*entity.AdoptionRecord, error)
	RegisterAdoption(ctx context.Context, in usecase.AdoptionInput) (*entity.AdoptionRecord, error)
	UpdateNotes(ctx context.Context, id uint, observacoes string) (*entity.AdoptionRecord, error)
	Delete(ctx context.Context, id uint) (*entity.AdoptionRecord, error)
	GetStatistics(ctx context.Context) (*usecase.Statistics, error)
}

// AdoptionHandler serves the /doacoes route group.
type AdoptionHandler struct {
	adoptions AdoptionsUsecase
	dev       bool
}

// NewAdoptionHandler creates an AdoptionHandler.
func NewAdoptionHandler(adoptions AdoptionsUsecase, dev bool) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions, dev: dev}
}

// List handles GET /doacoes/.
func (h *AdoptionHandler) List(c *gin.Context) {
	recs, err := h.adoptions.List(c.Request.Context())
	if err != nil {
		slog.Error("adoption list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":     "Histórico de adoções listado com sucesso.",
		"doacoes": recs,
		"total":   len(recs),
	})
}

// Get handles GET /doacoes/:id.
func (h *AdoptionHandler) Get(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	rec, err := h.adoptions.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Registro de adoção não encontrado"})
			return
		}
		slog.Error("adoption get failed", "error", err, "record_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":    "Registro de adoção encontrado com sucesso.",
		"doacao": rec,
	})
}

// ListByUser handles GET /doacoes/usuario/:id.
func (h *AdoptionHandler) ListByUser(c *gin.Context) {
	userID, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	recs, err := h.adoptions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("adoption user list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":     "Adoções do usuário listadas com sucesso.",
		"doacoes": recs,
		"total":   len(recs),
	})
}

// RegisterRescue handles POST /doacoes/resgate: creates the record for
// an existing animal and makes the animal available for adoption.
func (h *AdoptionHandler) RegisterRescue(c *gin.Context) {
	id, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
		return
	}

	var req dto.RescueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Data do resgate e ID do animal são obrigatórios."})
		return
	}

	dataResgate, err := api.ParseDate(req.DataResgate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	rec, err := h.adoptions.RegisterRescue(c.Request.Context(), usecase.RescueInput{
		UserID:      id.ID,
		AnimalID:    req.AnimalID,
		DataResgate: dataResgate,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Animal não encontrado"})
			return
		}
		slog.Error("rescue registration failed", "error", err, "animal_id", req.AnimalID)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("rescue registered", "record_id", rec.ID, "animal_id", rec.AnimalID, "user_id", id.ID)
	c.JSON(http.StatusCreated, gin.H{
		"msg":    "Resgate registrado com sucesso! O animal está disponível para adoção.",
		"doacao": rec,
	})
}

// RegisterAdoption handles POST /doacoes/adocao: concludes an open
// rescue record and flips the animal to adopted.
func (h *AdoptionHandler) RegisterAdoption(c *gin.Context) {
	id, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
		return
	}

	var req dto.AdoptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID do registro e data da adoção são obrigatórios."})
		return
	}

	dataAdocao, err := api.ParseDate(req.DataAdocao)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	rec, err := h.adoptions.RegisterAdoption(c.Request.Context(), usecase.AdoptionInput{
		UserID:      id.ID,
		RecordID:    req.ID,
		DataAdocao:  dataAdocao,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Registro de resgate não encontrado"})
		case errors.Is(err, usecase.ErrAlreadyAdopted):
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Este animal já foi adotado anteriormente."})
		default:
			slog.Error("adoption registration failed", "error", err, "record_id", req.ID)
			c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		}
		return
	}

	slog.Info("adoption registered", "record_id", rec.ID, "animal_id", rec.AnimalID, "user_id", id.ID)
	c.JSON(http.StatusOK, gin.H{
		"msg":    "Adoção registrada com sucesso!",
		"doacao": rec,
	})
}

// UpdateNotes handles PUT /doacoes/:id/observacoes.
func (h *AdoptionHandler) UpdateNotes(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	var req dto.NotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	rec, err := h.adoptions.UpdateNotes(c.Request.Context(), id, req.Observacoes)
	if err != nil {
		if errors.Is(err, usecase.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Registro de adoção não encontrado"})
			return
		}
		slog.Error("notes update failed", "error", err, "record_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":    "Observações atualizadas com sucesso!",
		"doacao": rec,
	})
}

// Delete handles DELETE /doacoes/:id and echoes the removed row.
func (h *AdoptionHandler) Delete(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	rec, err := h.adoptions.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Registro de adoção não encontrado"})
			return
		}
		slog.Error("adoption delete failed", "error", err, "record_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("adoption record deleted", "record_id", id)
	c.JSON(http.StatusOK, gin.H{
		"msg":            "Registro de adoção deletado com sucesso!",
		"doacaoDeletada": rec,
	})
}

// GetStatistics handles GET /doacoes/estatisticas.
func (h *AdoptionHandler) GetStatistics(c *gin.Context) {
	stats, err := h.adoptions.GetStatistics(c.Request.Context())
	if err != nil {
		slog.Error("statistics failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":          "Estatísticas obtidas com sucesso.",
		"estatisticas": stats,
	})
}
