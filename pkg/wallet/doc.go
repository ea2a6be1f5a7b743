// Package wallet forwards platform wallet-payment tokens to a merchant
// server and hosts the update hooks a platform payment sheet calls while the
// user edits the payment.
//
// The platform payment sheet itself (Apple Pay, Google Pay or equivalent) is
// outside this package: the platform glue presents the sheet, translates its
// delegate callbacks into the neutral types here, and calls Authorize once
// the user approved the payment. The package only performs the single JSON
// POST of {paymentMethod, transactionIdentifier} to the configured merchant
// URL and reports whether it succeeded.
//
// # Usage
//
//	h, err := wallet.NewHandler("https://merchant.example/process-payment")
//	if err != nil {
//	    // invalid URL
//	}
//	h.OnShippingMethodChange = func(m wallet.ShippingMethod) wallet.ShippingMethodUpdate {
//	    return wallet.ShippingMethodUpdate{SummaryItems: recalculate(m)}
//	}
//
//	ok, err := h.Authorize(ctx, wallet.PaymentToken{
//	    PaymentMethod:         "visa",
//	    TransactionIdentifier: "txn-1",
//	})
package wallet
