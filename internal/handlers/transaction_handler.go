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

type TransactionHandler struct {
	repo     *repository.StoreRepository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewTransactionHandler(
	repo *repository.StoreRepository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *TransactionHandler {
	return &TransactionHandler{
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// ======================================================
// LIST TRANSACTIONS
// ======================================================
func (h *TransactionHandler) List(c *gin.Context) {
	txType := strings.TrimSpace(c.Query("type"))

	h.mu.RLock()
	transactions, err := h.repo.ListTransactions(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	if txType == models.TransactionIncome || txType == models.TransactionExpense {
		filtered := transactions[:0]
		for _, tx := range transactions {
			if tx.Type == txType {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	httpresp.List(c, transactions)
}

// ======================================================
// CREATE TRANSACTION
// ======================================================
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tx := models.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}

	h.mu.Lock()
	err := h.repo.CreateTransaction(c.Request.Context(), &tx)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	h.activity.Dispatch(activity.Event{
		Type:        models.ActivityTransaction,
		Action:      tx.Type,
		Description: tx.Description + " - $" + tx.Amount.String(),
		Section:     "Finances",
	})

	c.JSON(http.StatusCreated, tx)
}

// ======================================================
// DELETE TRANSACTION
// ======================================================
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	err := h.repo.DeleteTransaction(c.Request.Context(), id)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
