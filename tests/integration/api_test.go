package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "family-wallet-service/internal/adapter/http/handler"
	redisStorage "family-wallet-service/internal/adapter/storage/redis"
	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/internal/service"
	"family-wallet-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret-key-32bytes!!"
	testJWTIssuer = "family-accounts"
)

// testApp builds the full application stack on in-memory storage: real HTTP
// layer, middleware, handlers and services over map-backed repos, miniredis
// and a scripted gateway.
type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	gateway     *fakeGateway
	ledger      ports.WalletLedger
	purchaseSvc ports.PurchaseService
	reqRepo     *inMemoryRequestRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	walletRepo := newInMemoryWalletRepo()
	txRepo := newInMemoryTransactionRepo()
	settingsRepo := newInMemorySettingsRepo()
	reqRepo := newInMemoryRequestRepo()
	sessionRepo := newInMemorySessionRepo()
	transactor := newLockingTransactor()

	statusCache := redisStorage.NewSessionStatusCache(rdb)
	gateway := newFakeGateway()

	log := logger.New("debug", false)
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, transactor, log)
	purchaseSvc := service.NewPurchaseService(
		reqRepo, settingsRepo, walletRepo, ledgerSvc, transactor, nil,
		24*time.Hour, domain.ApprovalModeRealtime, log,
	)
	sessionSvc := service.NewPaymentSessionService(
		sessionRepo, ledgerSvc, gateway, statusCache, nil,
		10*time.Millisecond, 2*time.Second, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:      ledgerSvc,
		PurchaseSvc: purchaseSvc,
		SessionSvc:  sessionSvc,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testJWTIssuer,
		Logger:      log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:      server,
		redis:       mr,
		gateway:     gateway,
		ledger:      ledgerSvc,
		purchaseSvc: purchaseSvc,
		reqRepo:     reqRepo,
	}
}

func signToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"iss":     testJWTIssuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

// sessionStatus polls the topup status endpoint without failing the test on
// transport errors, for use inside Eventually conditions.
func (a *testApp) sessionStatus(token, sessionID string) string {
	req, err := http.NewRequest(http.MethodGet, a.server.URL+"/api/v1/mpesa/status/"+sessionID, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Data.Status
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "missing data in %v", body)
	return d
}

// credit funds a wallet directly through the ledger, standing in for a
// completed top-up.
func (a *testApp) credit(t *testing.T, childID uuid.UUID, amount int64, ref string) {
	t.Helper()
	_, err := a.ledger.Credit(t.Context(), ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      amount,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: ref,
	})
	require.NoError(t, err)
}

func TestIntegration_RequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.do(t, http.MethodGet, "/api/v1/wallet/"+uuid.NewString()+"/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_RealtimePurchaseFlow(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentID := uuid.New()
	childToken := signToken(t, childID, "child")
	parentToken := signToken(t, parentID, "parent")

	app.credit(t, childID, 1000_00, "seed-topup")

	// Child requests a purchase; default policy routes it to review.
	resp, body := app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Minecraft",
		"purchase_type": "game_item",
		"amount":        300_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := data(t, body)
	assert.Equal(t, "pending", created["status"])
	requestID := created["id"].(string)

	// Wallet untouched while the request is pending.
	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1000_00), data(t, body)["balance"])

	// Parent cannot be impersonated by the child token.
	resp, _ = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/approve", childToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Parent approves; the debit lands atomically with the decision.
	resp, body = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/approve", parentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := data(t, body)
	assert.Equal(t, "approved", approved["status"])
	assert.Equal(t, parentID.String(), approved["decided_by"])

	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(700_00), data(t, body)["balance"])

	// A second decision on the same request conflicts.
	resp, _ = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/reject", parentToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The debit shows up in the transaction history.
	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/transactions", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), data(t, body)["total"])
}

func TestIntegration_SpendingLimitAutoApproval(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentID := uuid.New()
	childToken := signToken(t, childID, "child")
	parentToken := signToken(t, parentID, "parent")

	app.credit(t, childID, 2000_00, "seed-topup")

	// Parent switches the child to spending-limit mode.
	resp, _ := app.do(t, http.MethodPut, "/api/v1/wallet/"+childID.String()+"/approval-settings", parentToken, map[string]any{
		"mode":               "spending_limit",
		"per_purchase_limit": 500_00,
		"daily_limit":        800_00,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Within both limits: auto-approved, debited immediately.
	resp, body := app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Song",
		"purchase_type": "content",
		"amount":        500_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "auto_approved", data(t, body)["status"])

	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1500_00), data(t, body)["balance"])

	// Second purchase would push the daily total past 800: review instead.
	resp, body = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Album",
		"purchase_type": "content",
		"amount":        400_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", data(t, body)["status"])

	// Over the per-purchase limit: review as well.
	resp, body = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Headphones",
		"purchase_type": "other",
		"amount":        600_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", data(t, body)["status"])
}

func TestIntegration_ExpiredRequestCannotBeApproved(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentID := uuid.New()
	childToken := signToken(t, childID, "child")
	parentToken := signToken(t, parentID, "parent")

	app.credit(t, childID, 1000_00, "seed-topup")

	resp, body := app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Skin pack",
		"purchase_type": "game_item",
		"amount":        200_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := data(t, body)["id"].(string)

	// Age the request past its review window behind the API's back.
	id, err := uuid.Parse(requestID)
	require.NoError(t, err)
	app.reqRepo.mu.Lock()
	app.reqRepo.requests[id].ExpiresAt = time.Now().Add(-time.Minute)
	app.reqRepo.mu.Unlock()

	resp, _ = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/approve", parentToken, nil)
	assert.Equal(t, http.StatusGone, resp.StatusCode)

	// The lazy expiry is persisted; funds were never debited.
	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/purchase-requests?status=expired", parentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["data"].([]interface{})
	require.Len(t, items, 1)

	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1000_00), data(t, body)["balance"])
}

func TestIntegration_InsufficientFundsRejectedWith402(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentID := uuid.New()
	childToken := signToken(t, childID, "child")
	parentToken := signToken(t, parentID, "parent")

	app.credit(t, childID, 100_00, "seed-topup")

	resp, body := app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests", childToken, map[string]any{
		"item_name":     "Console",
		"purchase_type": "other",
		"amount":        5000_00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := data(t, body)["id"].(string)

	resp, body = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/approve", parentToken, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "WAL_001", body["error_code"])

	// The request survives the failed approval and can still be rejected.
	resp, body = app.do(t, http.MethodPost, "/api/v1/wallet/purchase-requests/"+requestID+"/reject", parentToken, map[string]any{
		"reason": "save up first",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "rejected", data(t, body)["status"])
}

func TestIntegration_TopupCompletesAndCredits(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentToken := signToken(t, uuid.New(), "parent")
	childToken := signToken(t, childID, "child")

	resp, body := app.do(t, http.MethodPost, "/api/v1/mpesa/stk-push", parentToken, map[string]any{
		"child_id":     childID.String(),
		"phone_number": "254712345678",
		"amount":       1000_00,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	sessionID := data(t, body)["id"].(string)
	assert.Equal(t, "pending", data(t, body)["status"])

	// Customer confirms on the handset.
	app.gateway.resolve(sessionID, ports.GatewayStatusCompleted)

	require.Eventually(t, func() bool {
		return app.sessionStatus(parentToken, sessionID) == "completed"
	}, 2*time.Second, 20*time.Millisecond, "session never completed")

	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1000_00), data(t, body)["balance"])
}

func TestIntegration_TopupDeclineDoesNotCredit(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentToken := signToken(t, uuid.New(), "parent")

	resp, body := app.do(t, http.MethodPost, "/api/v1/mpesa/stk-push", parentToken, map[string]any{
		"child_id":     childID.String(),
		"phone_number": "254110000001",
		"amount":       500_00,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	sessionID := data(t, body)["id"].(string)

	app.gateway.resolve(sessionID, ports.GatewayStatusCancelled)

	require.Eventually(t, func() bool {
		return app.sessionStatus(parentToken, sessionID) == "cancelled"
	}, 2*time.Second, 20*time.Millisecond, "session never resolved")

	// Wallet exists (provisioned on initiation) but holds nothing.
	childToken := signToken(t, childID, "child")
	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), data(t, body)["balance"])
}

func TestIntegration_ManualTopupIsIdempotent(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentToken := signToken(t, uuid.New(), "parent")
	childToken := signToken(t, childID, "child")

	body := map[string]any{"amount": 500_00, "reference_id": "allowance-week-35"}
	path := "/api/v1/wallet/" + childID.String() + "/topup"

	resp, _ := app.do(t, http.MethodPost, path, parentToken, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A retry with the same reference returns the original credit.
	resp, replay := app.do(t, http.MethodPost, path, parentToken, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "allowance-week-35", data(t, replay)["reference_id"])

	resp, wallet := app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/balance", childToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(500_00), data(t, wallet)["balance"])

	// Children cannot use the direct credit path.
	resp, _ = app.do(t, http.MethodPost, path, childToken, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIntegration_SettingsRoundTrip(t *testing.T) {
	app := newTestApp(t)

	childID := uuid.New()
	parentToken := signToken(t, uuid.New(), "parent")

	// Defaults before anything is stored.
	resp, body := app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/approval-settings", parentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "realtime", data(t, body)["mode"])

	resp, _ = app.do(t, http.MethodPut, "/api/v1/wallet/"+childID.String()+"/approval-settings", parentToken, map[string]any{
		"mode":          "spending_limit",
		"monthly_limit": 10000_00,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/approval-settings", parentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored := data(t, body)
	assert.Equal(t, "spending_limit", stored["mode"])
	assert.Equal(t, float64(10000_00), stored["monthly_limit"])
	assert.Nil(t, stored["per_purchase_limit"])

	// Children may not touch settings.
	childToken := signToken(t, childID, "child")
	resp, _ = app.do(t, http.MethodGet, "/api/v1/wallet/"+childID.String()+"/approval-settings", childToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIntegration_RateLimitEnforced(t *testing.T) {
	app := newTestApp(t)

	// Rebuild the router with the rate limit store attached.
	rdb := goredis.NewClient(&goredis.Options{Addr: app.redis.Addr()})
	store := redisStorage.NewRateLimitStore(rdb)
	log := logger.New("debug", false)

	walletRepo := newInMemoryWalletRepo()
	txRepo := newInMemoryTransactionRepo()
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, newLockingTransactor(), log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		RateLimitStore: store,
		JWTSecret:      testJWTSecret,
		JWTIssuer:      testJWTIssuer,
		Logger:         log,
	})
	server := httptest.NewServer(router)
	defer server.Close()

	childID := uuid.New()
	token := signToken(t, childID, "child")

	// 245 requests cannot fit in two adjacent 120-per-minute windows, so at
	// least one request is limited even if a window boundary rolls mid-loop.
	limited := 0
	for i := 0; i < 245; i++ {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/v1/wallet/%s/balance", server.URL, childID), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Greater(t, limited, 0, "rate limiter never engaged")
}
