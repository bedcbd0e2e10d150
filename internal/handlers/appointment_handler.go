package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vortexia/barbershop-manager/internal/httpresp"
	ucAppointment "github.com/vortexia/barbershop-manager/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	complete *ucAppointment.CompleteAppointment
	cancel   *ucAppointment.CancelAppointment
	remove   *ucAppointment.DeleteAppointment
	list     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		update:   update,
		complete: complete,
		cancel:   cancel,
		remove:   remove,
		list:     list,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Date       string          `json:"date" binding:"required"`
	Time       string          `json:"time" binding:"required"`
	Service    string          `json:"service" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Notes      string          `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date    *string          `json:"date,omitempty"`
	Time    *string          `json:"time,omitempty"`
	Service *string          `json:"service,omitempty"`
	Price   *decimal.Decimal `json:"price,omitempty"`
	Notes   *string          `json:"notes,omitempty"`
	Status  *string          `json:"status,omitempty"`
}

// ======================================================
// CREATE
// ======================================================
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Date:       req.Date,
		Time:       req.Time,
		Service:    req.Service,
		Price:      req.Price,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (opcional ?date=YYYY-MM-DD)
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// UPDATE (status passa pela máquina de transições)
// ======================================================
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateAppointmentInput{
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
		Price:   req.Price,
		Notes:   req.Notes,
		Status:  req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================
func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
