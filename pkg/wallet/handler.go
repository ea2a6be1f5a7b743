package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/payonekit/pkg/logger"
)

// Handler forwards authorized wallet payments to one merchant endpoint and
// dispatches the payment sheet's change hooks. Zero value is not usable; use
// NewHandler.
type Handler struct {
	// OnShippingMethodChange maps a newly selected shipping method to a
	// sheet update. Nil hooks return an empty update and log an error,
	// since the sheet blocks until it gets one.
	OnShippingMethodChange func(ShippingMethod) ShippingMethodUpdate
	// OnPaymentMethodSelect maps a newly selected payment method to a
	// sheet update.
	OnPaymentMethodSelect func(PaymentMethod) PaymentMethodUpdate
	// OnShippingContactChange maps a changed shipping contact to a sheet
	// update.
	OnShippingContactChange func(ShippingContact) ShippingContactUpdate
	// OnCouponCodeChange maps an applied coupon code to a sheet update.
	OnCouponCodeChange func(code string) CouponCodeUpdate

	url    string
	client *http.Client
	log    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(h *Handler) {
		if client != nil {
			h.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the handler's client.
func WithTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.client.Timeout = timeout
		}
	}
}

// WithLogger sets the diagnostic sink. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler creates a handler that POSTs authorized payments to
// processPaymentURL.
func NewHandler(processPaymentURL string, opts ...Option) (*Handler, error) {
	u, err := url.Parse(processPaymentURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, processPaymentURL)
	}

	h := &Handler{
		url: processPaymentURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Authorize forwards the wallet payment token to the merchant server and
// reports whether the server accepted it. A transport failure returns a
// wrapped ErrRequestFailed; an HTTP error status returns (false, nil). The
// call is never retried.
func (h *Handler) Authorize(ctx context.Context, token PaymentToken) (bool, error) {
	body, err := json.Marshal(token)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error("forwarding payment token failed", logger.Error(err))
		return false, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	// Drain so the connection returns to the pool.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode >= http.StatusBadRequest {
		h.log.Error("merchant server rejected payment token",
			slog.Int("status", resp.StatusCode), logger.Transaction(token.TransactionIdentifier))
		return false, nil
	}

	h.log.Info("payment token forwarded",
		slog.Int("status", resp.StatusCode), logger.Transaction(token.TransactionIdentifier))
	return true, nil
}

// ShippingMethodDidChange dispatches the shipping-method hook.
func (h *Handler) ShippingMethodDidChange(m ShippingMethod) ShippingMethodUpdate {
	if h.OnShippingMethodChange == nil {
		h.log.Error("no OnShippingMethodChange hook configured")
		return ShippingMethodUpdate{}
	}
	return h.OnShippingMethodChange(m)
}

// PaymentMethodDidSelect dispatches the payment-method hook.
func (h *Handler) PaymentMethodDidSelect(m PaymentMethod) PaymentMethodUpdate {
	if h.OnPaymentMethodSelect == nil {
		h.log.Error("no OnPaymentMethodSelect hook configured")
		return PaymentMethodUpdate{}
	}
	return h.OnPaymentMethodSelect(m)
}

// ShippingContactDidChange dispatches the shipping-contact hook.
func (h *Handler) ShippingContactDidChange(c ShippingContact) ShippingContactUpdate {
	if h.OnShippingContactChange == nil {
		h.log.Error("no OnShippingContactChange hook configured")
		return ShippingContactUpdate{}
	}
	return h.OnShippingContactChange(c)
}

// CouponCodeDidChange dispatches the coupon-code hook.
func (h *Handler) CouponCodeDidChange(code string) CouponCodeUpdate {
	if h.OnCouponCodeChange == nil {
		h.log.Error("no OnCouponCodeChange hook configured")
		return CouponCodeUpdate{}
	}
	return h.OnCouponCodeChange(code)
}
