package appointment

import (
	"fmt"
	"time"

	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete faz a transição scheduled→completed e deriva a transação de
// ingresso correspondente: valor = preço da cita, categoria service,
// datada no momento da conclusão (não na data original da cita). A
// transação devolvida ainda não tem ID; quem persiste atribui.
func Complete(ap *models.Appointment, now time.Time) (*models.Transaction, error) {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now

	tx := &models.Transaction{
		Type:        models.TransactionIncome,
		Amount:      ap.Price,
		Description: fmt.Sprintf("%s - %s", ap.Service, ap.ClientName),
		Category:    models.CategoryService,
		Date:        timezone.DateStamp(now),
	}

	return tx, nil
}
