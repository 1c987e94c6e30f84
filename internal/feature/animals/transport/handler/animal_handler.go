// Package handler provides the HTTP handlers for the animals feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/api"
	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/animals/transport/http/dto"
	"petmatch_backend/internal/feature/animals/usecase"
)

// AnimalsUsecase defines the animal operations consumed by this handler.
type AnimalsUsecase interface {
	List(ctx context.Context) ([]entity.Animal, error)
	ListAvailable(ctx context.Context) ([]entity.Animal, error)
	ListByStatus(ctx context.Context, status string) ([]entity.Animal, error)
	SearchBySpecies(ctx context.Context, especie string) ([]entity.Animal, error)
	Get(ctx context.Context, id uint) (*entity.Animal, error)
	Create(ctx context.Context, in usecase.NewAnimal) (*entity.Animal, error)
	Update(ctx context.Context, id uint, patch usecase.Patch) (*entity.Animal, error)
	Delete(ctx context.Context, id uint) (*entity.Animal, error)
}

// AnimalHandler serves the /animais route group.
type AnimalHandler struct {
	animals AnimalsUsecase
	dev     bool
}

// NewAnimalHandler creates an AnimalHandler.
func NewAnimalHandler(animals AnimalsUsecase, dev bool) *AnimalHandler {
	return &AnimalHandler{animals: animals, dev: dev}
}

func (h *AnimalHandler) listResponse(c *gin.Context, msg string, animals []entity.Animal, err error) {
	if err != nil {
		slog.Error("animal list failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg, "animais": animals, "total": len(animals)})
}

// List handles GET /animais/.
func (h *AnimalHandler) List(c *gin.Context) {
	animals, err := h.animals.List(c.Request.Context())
	h.listResponse(c, "Animais listados com sucesso.", animals, err)
}

// ListAvailable handles GET /animais/disponiveis.
func (h *AnimalHandler) ListAvailable(c *gin.Context) {
	animals, err := h.animals.ListAvailable(c.Request.Context())
	h.listResponse(c, "Animais disponíveis para adoção listados com sucesso.", animals, err)
}

// ListByStatus handles GET /animais/status/:status with an exact match.
func (h *AnimalHandler) ListByStatus(c *gin.Context) {
	status := c.Param("status")
	animals, err := h.animals.ListByStatus(c.Request.Context(), status)
	h.listResponse(c, fmt.Sprintf("Animais com status '%s' listados com sucesso.", status), animals, err)
}

// SearchBySpecies handles GET /animais/especie/:especie with a
// case-insensitive substring match.
func (h *AnimalHandler) SearchBySpecies(c *gin.Context) {
	especie := c.Param("especie")
	animals, err := h.animals.SearchBySpecies(c.Request.Context(), especie)
	h.listResponse(c, fmt.Sprintf("Animais da espécie '%s' listados com sucesso.", especie), animals, err)
}

// Get handles GET /animais/:id.
func (h *AnimalHandler) Get(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	animal, err := h.animals.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Animal não encontrado"})
			return
		}
		slog.Error("animal get failed", "error", err, "animal_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Animal encontrado com sucesso.", "animal": animal})
}

// Create handles POST /animais/.
func (h *AnimalHandler) Create(c *gin.Context) {
	var req dto.CreateAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg":                "Todos os campos são obrigatórios, exceto status.",
			"camposObrigatorios": dto.RequiredFields,
		})
		return
	}

	nascimento, err := api.ParseDate(req.Nascimento)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	animal, err := h.animals.Create(c.Request.Context(), usecase.NewAnimal{
		Nome:       req.Nome,
		Especie:    req.Especie,
		Faca:       req.Faca,
		Sexo:       req.Sexo,
		Nascimento: nascimento,
		Porte:      req.Porte,
		Saude:      req.Saude,
		Status:     req.Status,
		Foto:       req.Foto,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPhoto) {
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "A foto deve estar em formato Base64 válido (data:image/...)"})
			return
		}
		slog.Error("animal create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("animal created", "animal_id", animal.ID)
	c.JSON(http.StatusCreated, gin.H{"msg": "Animal cadastrado com sucesso!", "animal": animal})
}

// Update handles PUT /animais/:id with an explicit patch body.
func (h *AnimalHandler) Update(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	var req dto.UpdateAnimalReq
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
		return
	}

	patch := usecase.Patch{
		Nome:    req.Nome,
		Especie: req.Especie,
		Faca:    req.Faca,
		Sexo:    req.Sexo,
		Porte:   req.Porte,
		Saude:   req.Saude,
		Status:  req.Status,
		Foto:    req.Foto,
	}
	if req.Nascimento != nil {
		nascimento, err := api.ParseDate(*req.Nascimento)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.Error("Dados inválidos fornecidos.", err, h.dev))
			return
		}
		patch.Nascimento = &nascimento
	}

	animal, err := h.animals.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAnimalNotFound):
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Animal não encontrado"})
		case errors.Is(err, usecase.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "Nenhum campo foi fornecido para atualização."})
		case errors.Is(err, usecase.ErrInvalidPhoto):
			c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "A foto deve estar em formato Base64 válido (data:image/...)"})
		default:
			slog.Error("animal update failed", "error", err, "animal_id", id)
			c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Animal atualizado com sucesso!", "animal": animal})
}

// Delete handles DELETE /animais/:id and echoes the removed row.
func (h *AnimalHandler) Delete(c *gin.Context) {
	id, err := api.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageBody{Msg: "ID inválido"})
		return
	}

	animal, err := h.animals.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, api.MessageBody{Msg: "Animal não encontrado"})
			return
		}
		slog.Error("animal delete failed", "error", err, "animal_id", id)
		c.JSON(http.StatusInternalServerError, api.Error("Erro interno do servidor", err, h.dev))
		return
	}

	slog.Info("animal deleted", "animal_id", id)
	c.JSON(http.StatusOK, gin.H{"msg": "Animal deletado com sucesso!", "animalDeletado": animal})
}
