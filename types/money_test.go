package types_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/gcheckout/types"
)

func TestParseMoney(t *testing.T) {
	m, err := types.ParseMoney("190.98", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(19098), m.Cents())
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "190.98", m.String())
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	_, err := types.ParseMoney("one hundred", "USD")
	require.Error(t, err)
}

func TestMoneyDefaultsToUSD(t *testing.T) {
	m := types.NewMoney(decimal.NewFromInt(5), "")
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "5.00", m.String())
}

func TestMoneyIsPositive(t *testing.T) {
	assert.True(t, types.MoneyFromFloat(0.01, "USD").IsPositive())
	assert.False(t, types.MoneyFromFloat(0, "USD").IsPositive())
	assert.False(t, types.MoneyFromFloat(-3.50, "USD").IsPositive())
}

func TestEnvironmentURLs(t *testing.T) {
	assert.Contains(t, types.Sandbox.RequestURL("my_id"), "sandbox.google.com")
	assert.Contains(t, types.Sandbox.RequestURL("my_id"), "/Merchant/my_id")
	assert.Contains(t, types.Production.RequestURL("my_id"), "checkout.google.com")
	assert.NotContains(t, types.Production.RequestURL("my_id"), "sandbox")
}

func TestMerchantValidate(t *testing.T) {
	require.NoError(t, types.Merchant{ID: "my_id", Key: "my_key"}.Validate())
	require.Error(t, types.Merchant{Key: "my_key"}.Validate())
	require.Error(t, types.Merchant{ID: "my_id"}.Validate())
}
