package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/merchantkit/gcheckout/types"
)

// Cart is a checkout-shopping-cart command. Items serialize in the
// order they were added. Posting an empty cart is rejected; signing one
// for a button URL is allowed.
type Cart struct {
	command
	items                   []types.CartItem
	privateData             string
	merchantCalculationsURL string
	parameterizedURLs       []types.ParameterizedURL
}

func NewCart(merchant types.Merchant, env types.Environment, items ...types.CartItem) (*Cart, error) {
	c := &Cart{command: command{merchant: merchant, env: env}}
	for _, item := range items {
		if err := c.AddItem(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddItem appends a line to the cart. Quantity defaults to 1 and
// currency to USD before validation.
func (c *Cart) AddItem(item types.CartItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Price.Currency == "" {
		item.Price.Currency = "USD"
	}
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("cart item: %w", err)
	}
	c.items = append(c.items, item)
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []types.CartItem {
	return c.items
}

// SetPrivateData stores merchant-private-data as a tag-to-value
// mapping. Keys serialize in sorted order so that equal content always
// produces identical XML, whichever setter was used.
func (c *Cart) SetPrivateData(data map[string]string) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString("<" + k + ">" + data[k] + "</" + k + ">")
	}
	c.privateData = b.String()
}

// SetPrivateDataXML stores merchant-private-data as a raw XML fragment.
func (c *Cart) SetPrivateDataXML(fragment string) {
	c.privateData = fragment
}

// PrivateData returns the stored fragment, empty when unset.
func (c *Cart) PrivateData() string {
	return c.privateData
}

func (c *Cart) SetMerchantCalculationsURL(u string) {
	c.merchantCalculationsURL = u
}

// SetParameterizedURLs replaces the callback URL list. URL and
// parameter order are preserved in the output.
func (c *Cart) SetParameterizedURLs(urls []types.ParameterizedURL) error {
	for _, u := range urls {
		if err := validate.Struct(u); err != nil {
			return fmt.Errorf("parameterized url: %w", err)
		}
	}
	c.parameterizedURLs = urls
	return nil
}

func (c *Cart) ParameterizedURLs() []types.ParameterizedURL {
	return c.parameterizedURLs
}

func (c *Cart) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	if len(c.items) == 0 {
		return &types.GatewayError{Code: types.ErrInvalidCommand, Message: "cart must contain at least one item"}
	}
	return nil
}

func (c *Cart) XML() ([]byte, error) {
	doc, root := c.newDocument("checkout-shopping-cart")

	shoppingCart := root.CreateElement("shopping-cart")
	items := shoppingCart.CreateElement("items")
	for _, item := range c.items {
		el := items.CreateElement("item")
		el.CreateElement("item-name").SetText(item.Name)
		el.CreateElement("item-description").SetText(item.Description)
		addMoney(el, "unit-price", item.Price)
		el.CreateElement("quantity").SetText(fmt.Sprintf("%d", item.Quantity))
		if item.ItemID != "" {
			el.CreateElement("merchant-item-id").SetText(item.ItemID)
		}
	}

	if c.privateData != "" {
		frag := etree.NewDocument()
		if err := frag.ReadFromString("<merchant-private-data>" + c.privateData + "</merchant-private-data>"); err != nil {
			return nil, fmt.Errorf("merchant private data: %w", err)
		}
		shoppingCart.AddChild(frag.Root())
	}

	if c.merchantCalculationsURL != "" || len(c.parameterizedURLs) > 0 {
		support := root.CreateElement("checkout-flow-support").CreateElement("merchant-checkout-flow-support")
		if c.merchantCalculationsURL != "" {
			support.CreateElement("merchant-calculations").
				CreateElement("merchant-calculations-url").SetText(c.merchantCalculationsURL)
		}
		if len(c.parameterizedURLs) > 0 {
			urls := support.CreateElement("parameterized-urls")
			for _, u := range c.parameterizedURLs {
				el := urls.CreateElement("parameterized-url")
				el.CreateAttr("url", u.URL)
				params := el.CreateElement("parameters")
				for _, p := range u.Parameters {
					param := params.CreateElement("url-parameter")
					param.CreateAttr("type", p.Type)
					param.CreateAttr("name", p.Name)
				}
			}
		}
	}

	return doc.WriteToBytes()
}
