package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vortexia/barbershop-manager/internal/activity"
	"github.com/vortexia/barbershop-manager/internal/httpresp"
)

type ActivityHandler struct {
	log *activity.Logger
}

func NewActivityHandler(log *activity.Logger) *ActivityHandler {
	return &ActivityHandler{log: log}
}

// List devolve o histórico já em ordem reverso-cronológica, no máximo
// as 50 entradas mais recentes
func (h *ActivityHandler) List(c *gin.Context) {
	entries, err := h.log.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, entries)
}
