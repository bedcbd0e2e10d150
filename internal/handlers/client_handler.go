package handlers

import (
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/httpresp"
	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
)

type ClientHandler struct {
	repo     *repository.StoreRepository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewClientHandler(
	repo *repository.StoreRepository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *ClientHandler {
	return &ClientHandler{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string           `json:"name" binding:"required"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	TotalPaid *decimal.Decimal `json:"total_paid,omitempty"`
	LastVisit string           `json:"last_visit"`
}

type UpdateClientRequest struct {
	Name      *string          `json:"name,omitempty"`
	Email     *string          `json:"email,omitempty"`
	Phone     *string          `json:"phone,omitempty"`
	TotalPaid *decimal.Decimal `json:"total_paid,omitempty"`
	LastVisit *string          `json:"last_visit,omitempty"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	h.mu.RLock()
	clients, err := h.repo.ListClients(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	if query != "" {
		filtered := clients[:0]
		for _, client := range clients {
			if strings.Contains(strings.ToLower(client.Name), query) ||
				strings.Contains(client.Phone, query) ||
				strings.Contains(strings.ToLower(client.Email), query) {
				filtered = append(filtered, client)
			}
		}
		clients = filtered
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt > clients[j].CreatedAt
	})

	httpresp.List(c, clients)
}

// ======================================================
// CREATE CLIENT
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		LastVisit: req.LastVisit,
	}
	if req.TotalPaid != nil {
		client.TotalPaid = *req.TotalPaid
	}

	h.mu.Lock()
	err := h.repo.CreateClient(c.Request.Context(), &client)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	h.activity.Dispatch(activity.Event{
		Type:        models.ActivityClient,
		Action:      "created",
		Description: "Client " + client.Name + " added",
		Section:     "Clients",
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE CLIENT
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	client, err := h.repo.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.TotalPaid != nil {
		client.TotalPaid = *req.TotalPaid
	}
	if req.LastVisit != nil {
		client.LastVisit = *req.LastVisit
	}

	if err := h.repo.SaveClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE CLIENT (permanente)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	err := h.repo.DeleteClient(c.Request.Context(), id)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
