package export

import (
	"fmt"
	"strings"

	"github.com/vortexia/barbershop-manager/internal/models"
)

// RenderQuoteDocument monta o documento de orçamento em texto puro; não
// há geração real de PDF.
func RenderQuoteDocument(calc models.Calculation) string {
	var b strings.Builder

	b.WriteString("QUOTE\n")
	b.WriteString("=====\n\n")

	fmt.Fprintf(&b, "Name: %s\n", calc.Name)
	fmt.Fprintf(&b, "Client: %s\n", calc.Client)
	fmt.Fprintf(&b, "Date: %s\n\n", calc.CreatedAt)

	b.WriteString("SPECIFICATIONS:\n")
	fmt.Fprintf(&b, "- Width: %s m\n", calc.Width.String())
	fmt.Fprintf(&b, "- Height: %s m\n", calc.Height.String())
	fmt.Fprintf(&b, "- Area: %s m2\n", calc.Result.Area.String())
	fmt.Fprintf(&b, "- Price per m2: $%s\n", calc.PricePerSqm.String())
	fmt.Fprintf(&b, "- Additional labor: $%s\n\n", calc.AdditionalLabor.String())

	b.WriteString("RESULTS:\n")
	fmt.Fprintf(&b, "- Purchase cost: $%s\n", calc.Result.PurchaseCost.String())
	fmt.Fprintf(&b, "- Desired margin (%s%%): $%s\n", calc.MarginPercent.String(), calc.Result.Margin.String())
	fmt.Fprintf(&b, "- Sale cost: $%s\n\n", calc.Result.SaleCost.String())

	b.WriteString("Generated by Vortexia\n")

	return b.String()
}
