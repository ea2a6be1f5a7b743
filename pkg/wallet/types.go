package wallet

// PaymentToken carries the two values the merchant server needs to process a
// wallet payment. The JSON field names are the merchant-server wire contract.
type PaymentToken struct {
	PaymentMethod         string `json:"paymentMethod"`
	TransactionIdentifier string `json:"transactionIdentifier"`
}

// SummaryItem is one line of the payment sheet's cost breakdown.
type SummaryItem struct {
	Label  string
	Amount string
}

// ShippingMethod describes one selectable shipping option.
type ShippingMethod struct {
	Identifier string
	Label      string
	Detail     string
	Amount     string
}

// ShippingContact is the subset of the sheet's contact data the hooks see.
type ShippingContact struct {
	Name         string
	Email        string
	Phone        string
	AddressLines []string
	City         string
	PostalCode   string
	Country      string
}

// PaymentMethod describes the instrument the user selected in the sheet.
type PaymentMethod struct {
	Network     string
	DisplayName string
	Type        string
}

// ShippingMethodUpdate is the sheet refresh returned when the shipping
// method changes.
type ShippingMethodUpdate struct {
	SummaryItems []SummaryItem
}

// PaymentMethodUpdate is the sheet refresh returned when the payment method
// changes.
type PaymentMethodUpdate struct {
	SummaryItems []SummaryItem
}

// ShippingContactUpdate is the sheet refresh returned when the shipping
// contact changes.
type ShippingContactUpdate struct {
	SummaryItems    []SummaryItem
	ShippingMethods []ShippingMethod
}

// CouponCodeUpdate is the sheet refresh returned when a coupon code is
// applied.
type CouponCodeUpdate struct {
	SummaryItems    []SummaryItem
	ShippingMethods []ShippingMethod
}
