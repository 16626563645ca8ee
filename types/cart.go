package types

// CartItem is one line of a checkout cart. Lines serialize in the order
// they were added.
type CartItem struct {
	Name        string `validate:"required"`
	Description string
	Price       Money
	Quantity    int `validate:"gte=1"`

	// ItemID becomes <merchant-item-id> when set.
	ItemID string
}

// URLParameter is one (name, type) pair of a parameterized callback
// URL. Parameter order is significant and preserved in the output XML.
type URLParameter struct {
	Name string `validate:"required"`
	Type string `validate:"required"`
}

// ParameterizedURL is a merchant callback URL the gateway fills in with
// order values at notification time.
type ParameterizedURL struct {
	URL        string `validate:"required,url"`
	Parameters []URLParameter
}
