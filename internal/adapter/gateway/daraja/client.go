// Package daraja implements ports.PaymentGateway against the Safaricom
// Daraja M-Pesa API (STK push and STK push query).
package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"family-wallet-service/config"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Daraja sandbox or production API. OAuth tokens are
// cached until shortly before expiry.
type Client struct {
	cfg        config.MpesaConfig
	httpClient HTTPClient
	log        zerolog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Daraja API client.
func NewClient(cfg config.MpesaConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log.With().Str("component", "daraja").Logger(),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ErrorMessage        string `json:"errorMessage"`
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Daraja result codes for an STK push query. 0 is success, 1032 means the
// user dismissed the prompt. 1037 (timeout reaching the handset) and
// "processing" errors mean the push has not resolved yet.
const (
	resultCodeSuccess       = "0"
	resultCodeUserCancelled = "1032"
	resultCodeUnreachable   = "1037"
	errCodeStillProcessing  = "500.001.1001"
)

// minorUnitsPerShilling converts the engine's cent amounts to the whole
// shillings Daraja charges. Callers guarantee amounts are whole-shilling
// multiples before they reach the adapter.
const minorUnitsPerShilling = 100

// token returns a cached OAuth access token, refreshing when expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request daraja token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("daraja token request failed: status %d: %s", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode daraja token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("daraja returned empty access token")
	}

	c.accessToken = tok.AccessToken
	// Tokens are valid for ~1 hour; refresh a minute early.
	c.tokenExpiry = time.Now().Add(59 * time.Minute)
	return c.accessToken, nil
}

// password builds the base64(shortcode+passkey+timestamp) credential Daraja
// expects on every STK request.
func (c *Client) password(timestamp string) string {
	raw := c.cfg.Shortcode + c.cfg.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func darajaTimestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// InitiateSTKPush sends an STK push to the customer's phone and returns the
// gateway's checkout request id.
func (c *Client) InitiateSTKPush(ctx context.Context, push ports.STKPushRequest) (string, error) {
	if push.Amount <= 0 || push.Amount%minorUnitsPerShilling != 0 {
		return "", apperror.ErrInvalidAmount()
	}

	tok, err := c.token(ctx)
	if err != nil {
		return "", apperror.ErrGatewayUnavailable(err)
	}

	ts := darajaTimestamp(time.Now())
	body := stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          c.password(ts),
		Timestamp:         ts,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            push.Amount / minorUnitsPerShilling,
		PartyA:            push.PhoneNumber,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       push.PhoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  push.AccountReference,
		TransactionDesc:   push.TransactionDesc,
	}

	var out stkPushResponse
	if err := c.postJSON(ctx, "/mpesa/stkpush/v1/processrequest", tok, body, &out); err != nil {
		return "", apperror.ErrGatewayUnavailable(err)
	}

	if out.ResponseCode != "0" || out.CheckoutRequestID == "" {
		c.log.Warn().
			Str("response_code", out.ResponseCode).
			Str("error", out.ErrorMessage).
			Msg("STK push rejected by gateway")
		return "", apperror.ErrGatewayUnavailable(fmt.Errorf("stk push rejected: %s", out.ResponseDescription))
	}

	return out.CheckoutRequestID, nil
}

// QueryStatus asks Daraja for the outcome of a previously initiated STK push.
func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (ports.GatewayStatus, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return "", apperror.ErrGatewayUnavailable(err)
	}

	ts := darajaTimestamp(time.Now())
	body := stkQueryRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          c.password(ts),
		Timestamp:         ts,
		CheckoutRequestID: checkoutRequestID,
	}

	var out stkQueryResponse
	if err := c.postJSON(ctx, "/mpesa/stkpushquery/v1/query", tok, body, &out); err != nil {
		return "", apperror.ErrGatewayUnavailable(err)
	}

	// Query while the push is still in flight returns an error payload
	// rather than a result code.
	if out.ErrorCode == errCodeStillProcessing {
		return ports.GatewayStatusPending, nil
	}

	switch out.ResultCode {
	case resultCodeSuccess:
		return ports.GatewayStatusCompleted, nil
	case resultCodeUserCancelled:
		return ports.GatewayStatusCancelled, nil
	case resultCodeUnreachable, "":
		return ports.GatewayStatusPending, nil
	default:
		c.log.Debug().
			Str("checkout_request_id", checkoutRequestID).
			Str("result_code", out.ResultCode).
			Str("result_desc", out.ResultDesc).
			Msg("STK push failed at gateway")
		return ports.GatewayStatusFailed, nil
	}
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal daraja request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build daraja request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request daraja %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read daraja response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("daraja %s: status %d: %s", path, resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode daraja response: %w", err)
	}
	return nil
}
