package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

type DashboardHandler struct {
	repo *repository.StoreRepository
	mu   *sync.RWMutex
}

func NewDashboardHandler(
	repo *repository.StoreRepository,
	mu *sync.RWMutex,
) *DashboardHandler {
	return &DashboardHandler{
		repo: repo,
		mu:   mu,
	}
}

type DashboardStats struct {
	TotalClients      int             `json:"total_clients"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TodayAppointments int             `json:"today_appointments"`
	InventoryItems    int             `json:"inventory_items"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, err := h.repo.ListClients(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	transactions, err := h.repo.ListTransactions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	appointments, err := h.repo.ListAppointments(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	inventory, err := h.repo.ListInventory(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	stats := DashboardStats{
		TotalClients:   len(clients),
		InventoryItems: len(inventory),
	}

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionIncome:
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		case models.TransactionExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(tx.Amount)
		}
	}
	stats.TotalProfit = stats.TotalIncome.Sub(stats.TotalExpenses)

	today := timezone.DateStamp(timezone.Now())
	for _, ap := range appointments {
		if ap.Date == today {
			stats.TodayAppointments++
		}
	}

	c.JSON(http.StatusOK, stats)
}
