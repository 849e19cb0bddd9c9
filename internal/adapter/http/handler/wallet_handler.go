package handler

import (
	"strconv"

	"family-wallet-service/internal/adapter/http/dto"
	"family-wallet-service/internal/adapter/http/middleware"
	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/pkg/apperror"
	"family-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet snapshot and transaction history endpoints.
type WalletHandler struct {
	ledger ports.WalletLedger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/wallet/:childId/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	childID, err := childIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	wallet, err := h.ledger.Snapshot(c.Request.Context(), childID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Topup handles POST /api/v1/wallet/:childId/topup, the direct credit path
// with no gateway involved (cash handed over, allowance, corrections).
func (h *WalletHandler) Topup(c *gin.Context) {
	childID, err := childIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ManualTopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	referenceID := "manual-" + uuid.NewString()
	if req.ReferenceID != nil && *req.ReferenceID != "" {
		referenceID = *req.ReferenceID
	}

	txn, err := h.ledger.Credit(c.Request.Context(), ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      req.Amount,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: referenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// ListTransactions handles GET /api/v1/wallet/:childId/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	childID, err := childIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.ledger.ListTransactions(c.Request.Context(), childID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.TransactionListResponse{
		Items:    make([]dto.TransactionResponse, 0, len(items)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range items {
		resp.Items = append(resp.Items, toTransactionResponse(&items[i]))
	}
	if pageSize > 0 {
		resp.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	response.OK(c, resp)
}

// childIDParam parses the :childId path parameter and enforces that a
// child-role caller can only read their own wallet.
func childIDParam(c *gin.Context) (uuid.UUID, error) {
	childID, err := uuid.Parse(c.Param("childId"))
	if err != nil {
		return uuid.Nil, apperror.Validation("childId must be a valid UUID")
	}
	if c.GetString(middleware.CtxRole) == middleware.RoleChild &&
		c.GetString(middleware.CtxUserID) != childID.String() {
		return uuid.Nil, apperror.ErrForbidden()
	}
	return childID, nil
}

// toWalletResponse converts domain.Wallet to DTO.
func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ChildID:       w.ChildID.String(),
		Currency:      w.Currency,
		Balance:       w.Balance,
		TotalCredited: w.TotalCredited,
		TotalDebited:  w.TotalDebited,
		Active:        w.Active,
	}
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Kind:        string(tx.Kind),
		Amount:      tx.Amount,
		Source:      string(tx.Source),
		ReferenceID: tx.ReferenceID,
		CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
