package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/export"
	"github.com/vortexia/barbershop-manager/internal/httpresp"
	"github.com/vortexia/barbershop-manager/internal/infra/repository"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
	ucCalculator "github.com/vortexia/barbershop-manager/internal/usecase/calculator"
)

type CalculatorHandler struct {
	compute  *ucCalculator.Compute
	register *ucCalculator.RegisterClient
	repo     *repository.StoreRepository
	activity *activity.Dispatcher
	mu       *sync.RWMutex
}

func NewCalculatorHandler(
	compute *ucCalculator.Compute,
	register *ucCalculator.RegisterClient,
	repo *repository.StoreRepository,
	activity *activity.Dispatcher,
	mu *sync.RWMutex,
) *CalculatorHandler {
	return &CalculatorHandler{
		compute:  compute,
		register: register,
		repo:     repo,
		activity: activity,
		mu:       mu,
	}
}

// --------- Requests ---------

// Campos ausentes ficam em zero e o motor recusa; valor não numérico
// falha no binding
type ComputeRequest struct {
	Client          string          `json:"client"`
	Width           decimal.Decimal `json:"width"`
	Height          decimal.Decimal `json:"height"`
	PricePerSqm     decimal.Decimal `json:"price_per_sqm"`
	AdditionalLabor decimal.Decimal `json:"additional_labor"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`
	DeliveryDate    string          `json:"delivery_date"`
}

type RenameCalculationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r ComputeRequest) input() ucCalculator.ComputeInput {
	return ucCalculator.ComputeInput{
		Client:          r.Client,
		Width:           r.Width,
		Height:          r.Height,
		PricePerSqm:     r.PricePerSqm,
		AdditionalLabor: r.AdditionalLabor,
		MarginPercent:   r.MarginPercent,
		DeliveryDate:    r.DeliveryDate,
	}
}

// ======================================================
// COMPUTE
// ======================================================
func (h *CalculatorHandler) Compute(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	calc, err := h.compute.Execute(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, calc)
}

// ======================================================
// COMPUTE + REGISTER PROSPECTIVE CLIENT
// ======================================================
func (h *CalculatorHandler) ComputeAndRegister(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	calc, client, err := h.register.Execute(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"calculation": calc,
		"client":      client,
	})
}

// ======================================================
// HISTORY
// ======================================================
func (h *CalculatorHandler) List(c *gin.Context) {
	h.mu.RLock()
	calculations, err := h.repo.ListCalculations(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, calculations)
}

func (h *CalculatorHandler) Rename(c *gin.Context) {
	id := c.Param("id")

	var req RenameCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	calc, err := h.repo.GetCalculation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	calc.Name = req.Name
	if err := h.repo.SaveCalculation(c.Request.Context(), calc); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calc)
}

func (h *CalculatorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	err := h.repo.DeleteCalculation(c.Request.Context(), id)
	h.mu.Unlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// EXPORT CSV
// ======================================================
func (h *CalculatorHandler) ExportCSV(c *gin.Context) {
	h.mu.RLock()
	calculations, err := h.repo.ListCalculations(c.Request.Context())
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.GenerateCalculationsCSV(calculations)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activity.Dispatch(activity.Event{
		Type:        models.ActivityCalculation,
		Action:      "exported",
		Description: fmt.Sprintf("Exported %d calculations to CSV", len(calculations)),
		Section:     "Calculator",
	})

	filename := fmt.Sprintf("calculations_%s.csv", timezone.DateStamp(timezone.Now()))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ======================================================
// QUOTE DOCUMENT (texto puro)
// ======================================================
func (h *CalculatorHandler) Document(c *gin.Context) {
	id := c.Param("id")

	h.mu.RLock()
	calc, err := h.repo.GetCalculation(c.Request.Context(), id)
	h.mu.RUnlock()

	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.RenderQuoteDocument(*calc)))
}
