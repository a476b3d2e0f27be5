package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/commercial/domain/aggregates/estimate"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"0":          "$0.00",
		"1234.5":     "$1,234.50",
		"1000000":    "$1,000,000.00",
		"99.999":     "$100.00",
		"12.3456789": "$12.35",
	}
	for in, want := range cases {
		require.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestEstimateToRow(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	row := EstimateToRow(estimate.Hydrate(uuid.New(), uuid.New(), 42, "", "approved", date, nil, decimal.NewFromInt(10)))
	require.Equal(t, "42", row.Number)
	require.Equal(t, "—", row.Customer)
	require.Equal(t, "Aprovado", row.StatusLabel)
	require.Equal(t, "01/02/2024", row.Date)
	require.Equal(t, "—", row.ShipDate)
	require.Equal(t, "$10.00", row.Value)

	ship := date.AddDate(0, 0, 3)
	row = EstimateToRow(estimate.Hydrate(uuid.New(), uuid.New(), 7, "Acme", "on_hold", date, &ship, decimal.Zero))
	require.Equal(t, "on_hold", row.StatusLabel)
	require.Equal(t, "04/02/2024", row.ShipDate)
}
