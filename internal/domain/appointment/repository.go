package appointment

import (
	"context"

	"github.com/vortexia/barbershop-manager/internal/models"
)

type Repository interface {
	// -------- Settings --------
	GetSettings(
		ctx context.Context,
	) (models.BusinessSettings, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	SaveClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Transaction (derived income) --------
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}
