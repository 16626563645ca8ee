package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/gcheckout/commands"
	"github.com/merchantkit/gcheckout/types"
)

func testItem() types.CartItem {
	return types.CartItem{
		Name:        "Megalodon Teeth",
		Description: "Lightly used",
		Price:       types.MoneyFromFloat(95.49, "USD"),
		Quantity:    2,
	}
}

func TestCartXML(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	require.NoError(t, cart.Validate())

	out, err := cart.XML()
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<checkout-shopping-cart")
	assert.Contains(t, xml, `xmlns="http://checkout.google.com/schema/2"`)
	assert.Contains(t, xml, "<shopping-cart>")
	assert.Contains(t, xml, "<item-name>Megalodon Teeth</item-name>")
	assert.Contains(t, xml, "<item-description>Lightly used</item-description>")
	assert.Contains(t, xml, `<unit-price currency="USD">95.49</unit-price>`)
	assert.Contains(t, xml, "<quantity>2</quantity>")
	assert.NotContains(t, xml, "google-order-number")
	assert.NotContains(t, xml, "merchant-item-id")
}

func TestCartItemID(t *testing.T) {
	item := testItem()
	item.ItemID = "SKU-42"
	cart, err := commands.NewCart(testMerchant, types.Sandbox, item)
	require.NoError(t, err)

	out, err := cart.XML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<merchant-item-id>SKU-42</merchant-item-id>")
}

func TestCartItemDefaults(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox)
	require.NoError(t, err)

	item := types.CartItem{Name: "Widget", Price: types.MoneyFromFloat(1.00, "")}
	require.NoError(t, cart.AddItem(item))

	got := cart.Items()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, "USD", got[0].Price.Currency)
}

func TestCartRejectsInvalidItem(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox)
	require.NoError(t, err)

	err = cart.AddItem(types.CartItem{Price: types.MoneyFromFloat(1.00, "USD")})
	require.Error(t, err)
}

func TestEmptyCartFailsValidation(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox)
	require.NoError(t, err)
	require.Error(t, cart.Validate())
}

func TestPrivateDataFromMapAndFragmentMatch(t *testing.T) {
	a, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	a.SetPrivateData(map[string]string{"peepcode-order-number": "1234-5678-9012"})

	b, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	b.SetPrivateDataXML("<peepcode-order-number>1234-5678-9012</peepcode-order-number>")

	xmlA, err := a.XML()
	require.NoError(t, err)
	xmlB, err := b.XML()
	require.NoError(t, err)

	assert.Equal(t, string(xmlA), string(xmlB))
	assert.Contains(t, string(xmlA), "<merchant-private-data>")
	assert.Contains(t, string(xmlA), "<peepcode-order-number>1234-5678-9012</peepcode-order-number>")
}

func TestPrivateDataMapSortsKeys(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	cart.SetPrivateData(map[string]string{"zeta": "2", "alpha": "1"})

	assert.Equal(t, "<alpha>1</alpha><zeta>2</zeta>", cart.PrivateData())
}

func TestCartOmitsPrivateDataWhenUnset(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)

	out, err := cart.XML()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "merchant-private-data")
}

func TestCartMerchantCalculationsURL(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	cart.SetMerchantCalculationsURL("https://example.com/calculate")

	out, err := cart.XML()
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<checkout-flow-support>")
	assert.Contains(t, xml, "<merchant-checkout-flow-support>")
	assert.Contains(t, xml, "<merchant-calculations-url>https://example.com/calculate</merchant-calculations-url>")
}

func TestCartParameterizedURLs(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)
	require.NoError(t, cart.SetParameterizedURLs([]types.ParameterizedURL{
		{
			URL: "https://example.com/track",
			Parameters: []types.URLParameter{
				{Name: "order", Type: "order-id"},
			},
		},
	}))

	out, err := cart.XML()
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<parameterized-urls>")
	assert.Contains(t, xml, `<parameterized-url url="https://example.com/track">`)
	assert.Contains(t, xml, `<url-parameter type="order-id" name="order"/>`)
}

func TestCartRejectsInvalidParameterizedURL(t *testing.T) {
	cart, err := commands.NewCart(testMerchant, types.Sandbox, testItem())
	require.NoError(t, err)

	err = cart.SetParameterizedURLs([]types.ParameterizedURL{{URL: "not a url"}})
	require.Error(t, err)
}
