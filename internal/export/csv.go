package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vortexia/barbershop-manager/internal/models"
)

// GenerateCalculationsCSV generates a CSV file from the calculation history.
func GenerateCalculationsCSV(calculations []models.Calculation) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Name",
		"Client",
		"Square Meters",
		"Purchase Cost",
		"Sale Cost",
		"Margin (%)",
		"Margin ($)",
		"Created",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range calculations {
		row := []string{
			calculations[i].Name,
			calculations[i].Client,
			calculations[i].Result.Area.String(),
			calculations[i].Result.PurchaseCost.String(),
			calculations[i].Result.SaleCost.String(),
			calculations[i].Result.MarginPercent.String(),
			calculations[i].Result.Margin.String(),
			calculations[i].CreatedAt,
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
