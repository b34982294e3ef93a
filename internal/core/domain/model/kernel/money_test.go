package kernel_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, "0.00", zero.String())

		m, err := kernel.NewMoney(30000)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), m.Cents())
		assert.Equal(t, "300.00", m.String())
		assert.InDelta(t, 300.0, m.Decimal(), 0.0001)
	})

	t.Run("rejects negative and oversized amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewMoney(kernel.MaxMoneyCents + 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromDecimal(t *testing.T) {
	testCases := []struct {
		in    float64
		cents int64
	}{
		{149.99, 14999},
		{0.1 + 0.2, 30},
		{12.346, 1235},
		{7, 700},
	}

	for _, tc := range testCases {
		m, err := kernel.MoneyFromDecimal(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.cents, m.Cents(), "input %v", tc.in)
	}

	_, err := kernel.MoneyFromDecimal(math.NaN())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.MoneyFromDecimal(-0.5)
	require.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.NewMoney(10000)

	line, err := price.Multiply(2)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), line.Cents())

	total, err := line.Add(price)
	require.NoError(t, err)
	assert.Equal(t, "300.00", total.String())

	_, err = price.Multiply(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = price.Multiply(math.MaxInt32)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	other, _ := kernel.NewMoney(10000)
	assert.True(t, price.IsEqual(other))
}
