package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, "524,894", Number(524894))
	require.Equal(t, "5,248,935", Number(5248935))
	require.Equal(t, "50", Number(50))
}

func TestDecimalAndMoney(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1,775.00", Decimal(decimal.RequireFromString("1775"), 2))
	require.Equal(t, "USD 1,775.00", Money("usd", decimal.RequireFromString("1775.00")))
	require.Equal(t, "USD 50.00", Money("USD", decimal.NewFromInt(50)))
	require.Equal(t, "0.50", Money("", decimal.RequireFromString("0.5")))
	require.Equal(t, "-1,234,567.89", Decimal(decimal.RequireFromString("-1234567.885"), 2))
	require.Equal(t, "123.4", Decimal(decimal.RequireFromString("123.44"), 1))
	require.Equal(t, "1,000", Decimal(decimal.NewFromInt(1000), 0))
	// Past float64 precision the digits must survive intact.
	require.Equal(t, "12,345,678,901,234,567.01", Decimal(decimal.RequireFromString("12345678901234567.01"), 2))
}

func TestWhole(t *testing.T) {
	t.Parallel()

	require.Equal(t, "12,500", Whole(decimal.NewFromInt(12500)))
	require.Equal(t, "12.25", Whole(decimal.RequireFromString("12.25")))
}

func TestClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{NavClass(true), "nav-link active"},
		{NavClass(false), "nav-link"},
		{RankClass("gold"), "badge rank-gold"},
		{RankClass("DIAMOND"), "badge rank-diamond"},
		{RankClass("bronze"), "badge"},
		{ToneClass("Amber"), "tone-amber"},
		{ToneClass(""), ""},
		{LevelClass(true), "level card unlocked"},
		{LevelClass(false), "level card locked"},
		{ToastClass("destructive"), "toast destructive"},
		{ToastClass("default"), "toast"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got)
	}
	require.Equal(t, "5, 10, 25, 50", JoinInts([]int{5, 10, 25, 50}))
}
