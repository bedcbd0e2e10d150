package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
)

type SettingsHandler struct {
	repo *repository.StoreRepository
	mu   *sync.RWMutex
}

func NewSettingsHandler(
	repo *repository.StoreRepository,
	mu *sync.RWMutex,
) *SettingsHandler {
	return &SettingsHandler{
		repo: repo,
		mu:   mu,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	h.mu.RLock()
	settings, err := h.repo.GetSettings(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update sobrescreve o registro inteiro, sem merge parcial
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.BusinessSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	err := h.repo.SaveSettings(c.Request.Context(), settings)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
