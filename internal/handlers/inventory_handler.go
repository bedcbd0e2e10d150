package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/httperr"
	"github.com/vortexia/barbershop-manager/internal/httpresp"
	"github.com/vortexia/barbershop-manager/internal/infra/imagestore"
	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
)

type InventoryHandler struct {
	repo     *repository.StoreRepository
	uploader *imagestore.Uploader
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewInventoryHandler(
	repo *repository.StoreRepository,
	uploader *imagestore.Uploader,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *InventoryHandler {
	return &InventoryHandler{
		repo:     repo,
		uploader: uploader,
		activity: activity,
		mu:       mu,
	}
}

// --------- Requests ---------

type CreateInventoryItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
}

type UpdateInventoryItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Category    *string          `json:"category,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
}

// ======================================================
// LIST INVENTORY
// ======================================================
func (h *InventoryHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	h.mu.RLock()
	items, err := h.repo.ListInventory(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	filtered := items[:0]
	for _, item := range items {
		if category != "" && strings.ToLower(item.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item)
	}

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE ITEM
// ======================================================
func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	item := models.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    strings.ToLower(req.Category),
	}

	h.mu.Lock()
	err := h.repo.CreateInventoryItem(c.Request.Context(), &item)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	h.activity.Dispatch(activity.Event{
		Type:        models.ActivityInventory,
		Action:      "created",
		Description: "Product " + item.Name + " added to inventory",
		Section:     "Inventory",
	})

	c.JSON(http.StatusCreated, item)
}

// ======================================================
// UPDATE ITEM
// ======================================================
func (h *InventoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	item, err := h.repo.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Category != nil {
		item.Category = strings.ToLower(*req.Category)
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := h.repo.SaveInventoryItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ======================================================
// DELETE ITEM
// ======================================================
func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	err := h.repo.DeleteInventoryItem(c.Request.Context(), id)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// UPLOAD IMAGE (multipart → webp → S3)
// ======================================================
func (h *InventoryHandler) UploadImage(c *gin.Context) {
	if !h.uploader.Enabled() {
		respondError(c, httperr.ErrBusiness("image_storage_disabled"))
		return
	}

	id := c.Param("id")

	h.mu.RLock()
	item, err := h.repo.GetInventoryItem(c.Request.Context(), id)
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	// Upload fora do lock: só a gravação do item é serializada
	url, err := h.uploader.UploadImage(c.Request.Context(), file, "inventory/"+item.ID+".webp")
	if err != nil {
		respondError(c, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	item, err = h.repo.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	item.ImageURL = url
	if err := h.repo.SaveInventoryItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
