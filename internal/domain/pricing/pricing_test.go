package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func input(width, height, price, labor, margin string) Input {
	return Input{
		Width:           decimal.RequireFromString(width),
		Height:          decimal.RequireFromString(height),
		PricePerSqm:     decimal.RequireFromString(price),
		AdditionalLabor: decimal.RequireFromString(labor),
		MarginPercent:   decimal.RequireFromString(margin),
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("computes exact values without rounding", func(t *testing.T) {
		t.Parallel()
		result, ok := Compute(input("1.2", "1.8", "12000", "0", "30"))

		require.True(t, ok)
		require.True(t, decimal.RequireFromString("2.16").Equal(result.Area))
		require.True(t, decimal.RequireFromString("25920").Equal(result.MaterialsCost))
		require.True(t, decimal.RequireFromString("25920").Equal(result.PurchaseCost))
		require.True(t, decimal.RequireFromString("7776").Equal(result.Margin))
		require.True(t, decimal.RequireFromString("33696").Equal(result.SaleCost))
	})

	t.Run("additional labor enters before margin", func(t *testing.T) {
		t.Parallel()
		result, ok := Compute(input("2", "2", "100", "50", "10"))

		require.True(t, ok)
		require.True(t, decimal.RequireFromString("4").Equal(result.Area))
		require.True(t, decimal.RequireFromString("400").Equal(result.MaterialsCost))
		require.True(t, decimal.RequireFromString("450").Equal(result.PurchaseCost))
		require.True(t, decimal.RequireFromString("45").Equal(result.Margin))
		require.True(t, decimal.RequireFromString("495").Equal(result.SaleCost))
	})

	t.Run("zero margin sells at purchase cost", func(t *testing.T) {
		t.Parallel()
		result, ok := Compute(input("1", "1", "5000", "0", "0"))

		require.True(t, ok)
		require.True(t, result.PurchaseCost.Equal(result.SaleCost))
		require.True(t, result.Margin.IsZero())
	})

	t.Run("declines incomplete input", func(t *testing.T) {
		t.Parallel()
		cases := map[string]Input{
			"zero width":     input("0", "1.8", "12000", "0", "30"),
			"zero height":    input("1.2", "0", "12000", "0", "30"),
			"zero price":     input("1.2", "1.8", "0", "0", "30"),
			"negative width": input("-1.2", "1.8", "12000", "0", "30"),
		}

		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				result, ok := Compute(in)
				require.False(t, ok)
				require.True(t, result.Area.IsZero(), "no partial computation")
				require.True(t, result.SaleCost.IsZero(), "no partial computation")
			})
		}
	})
}

func TestComputeDeterminism(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	rapid.Check(t, func(t *rapid.T) {
		// Escala limitada mantém todas as operações exatas
		width := decimal.New(rapid.Int64Range(1, 100000).Draw(t, "width"), -2)
		height := decimal.New(rapid.Int64Range(1, 100000).Draw(t, "height"), -2)
		price := decimal.New(rapid.Int64Range(1, 1000000).Draw(t, "price"), 0)
		labor := decimal.New(rapid.Int64Range(0, 100000).Draw(t, "labor"), 0)
		margin := decimal.New(rapid.Int64Range(0, 500).Draw(t, "margin"), 0)

		result, ok := Compute(Input{
			Width:           width,
			Height:          height,
			PricePerSqm:     price,
			AdditionalLabor: labor,
			MarginPercent:   margin,
		})
		require.True(t, ok)

		require.True(t, width.Mul(height).Equal(result.Area))

		// saleCost = (w*h*p + l) * (100 + m) / 100, fechado de outra forma
		expected := width.Mul(height).Mul(price).
			Add(labor).
			Mul(hundred.Add(margin)).
			Div(hundred)
		require.True(t, expected.Equal(result.SaleCost),
			"expected %s, got %s", expected, result.SaleCost)
	})
}
