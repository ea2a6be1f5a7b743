// Package cardtokenizer implements the PAYONE credit-card tokenizer bridge.
//
// The bridge loads a merchant-hosted HTML page into an embedded web surface,
// injects the PAYONE hosted-fields client script, populates the page with the
// configured input fields and a signed creditcardcheck request, and listens
// for the messages the page posts back. The card data itself never passes
// through the host application: it is entered into iframes served by PAYONE
// and exchanged for a pseudo card number inside the page.
//
// A Tokenizer is driven by a small state machine:
//
//	Idle → PageLoading → AwaitingScriptLoad → PopulatingFields →
//	AwaitingSubmit → AwaitingResult → Finished
//
// Each inbound page message is valid in exactly one state; anything arriving
// out of state is logged and dropped. The configured result callback fires
// exactly once per run, with either a decoded Response or one of the package
// sentinel errors.
//
// # Usage
//
//	req := cardtokenizer.NewRequest("10001", "10002", "2017000", environment.Test, portalKey)
//
//	cfg := cardtokenizer.Config{
//	    CardPan:         cardtokenizer.Field{Selector: "cardpan", Type: "input"},
//	    CardCVC2:        cardtokenizer.Field{Selector: "cardcvc2", Type: "password", MaxLength: "4"},
//	    CardExpireMonth: cardtokenizer.Field{Selector: "cardexpiremonth", Type: "text"},
//	    CardExpireYear:  cardtokenizer.Field{Selector: "cardexpireyear", Type: "text"},
//	    Language:        cardtokenizer.LanguageEnglish,
//	    SubmitButtonID:  "submit",
//	    OnResult: func(resp *cardtokenizer.Response, err error) {
//	        // exactly one invocation per run
//	    },
//	}
//
//	tok := cardtokenizer.New(surface, tokenizerURL, req,
//	    []cardtokenizer.CardType{cardtokenizer.CardTypeVisa, cardtokenizer.CardTypeMastercard}, cfg)
//	if err := tok.Start(); err != nil {
//	    // already running or misconfigured
//	}
//	defer tok.Close()
//
// # Concurrency
//
// A Tokenizer is not safe for concurrent use. All surface callbacks must be
// delivered on a single goroutine (see webbridge.Surface); the state machine
// relies on that ordering instead of locking. No step carries a timeout — a
// run waits indefinitely for the page unless the caller discards the
// Tokenizer via Close.
package cardtokenizer
