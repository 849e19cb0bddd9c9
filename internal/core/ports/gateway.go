package ports

import "context"

// GatewayStatus is the provider-reported state of a checkout session.
type GatewayStatus string

const (
	GatewayStatusPending   GatewayStatus = "pending"
	GatewayStatusCompleted GatewayStatus = "completed"
	GatewayStatusFailed    GatewayStatus = "failed"
	GatewayStatusCancelled GatewayStatus = "cancelled"
)

// STKPushRequest holds the parameters for initiating a mobile-money prompt.
type STKPushRequest struct {
	PhoneNumber      string
	Amount           int64 // minor units; the gateway is sent whole units
	AccountReference string
	TransactionDesc  string
}

// PaymentGateway abstracts the mobile-money provider. The wire protocol is
// the adapter's concern; the engine only sees initiate and status.
type PaymentGateway interface {
	// InitiateSTKPush sends the payment prompt and returns the provider's
	// checkout request id.
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (string, error)
	// QueryStatus returns the provider's view of the session. A transient
	// transport error is returned as err; callers retry within their budget.
	QueryStatus(ctx context.Context, checkoutRequestID string) (GatewayStatus, error)
}
