package utils

import (
	"testing"

	"github.com/hance08/teller/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "150", want: "150"},
		{in: "150.5", want: "150.5"},
		{in: " 500.00 ", want: "500"},
		{in: "-5.00", want: "-5"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12,50", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ledger.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10500.00 USD", FormatAmount(decimal.RequireFromString("10500"), "USD"))
	assert.Equal(t, "0.50", FormatAmount(decimal.RequireFromString("0.5"), ""))
	assert.Equal(t, "1.24 EUR", FormatAmount(decimal.RequireFromString("1.235"), "EUR"))
}
