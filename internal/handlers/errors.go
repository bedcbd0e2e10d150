package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vortexia/barbershop-manager/internal/httperr"
)

// respondError mapeia erros de negócio para status HTTP; qualquer outra
// falha (storage incluído) sobe como 500, sem retry nem wrapping
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	message := strings.ReplaceAll(be.Code, "_", " ")

	switch be.Code {
	case "client_not_found",
		"appointment_not_found",
		"item_not_found",
		"calculation_not_found":
		httperr.NotFound(c, be.Code, message)

	case "invalid_state":
		httperr.Conflict(c, be.Code, message)

	case "calculation_incomplete",
		"client_name_required",
		"outside_working_hours",
		"invalid_date_or_time",
		"invalid_status",
		"image_storage_disabled":
		httperr.Unprocessable(c, be.Code, message)

	default:
		httperr.BadRequest(c, be.Code, message)
	}
}
