package handler

import (
	"family-wallet-service/internal/adapter/http/dto"
	"family-wallet-service/internal/adapter/http/middleware"
	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/pkg/apperror"
	"family-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseHandler handles purchase request lifecycle and approval settings.
type PurchaseHandler struct {
	purchaseSvc ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseSvc ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// CreatePurchaseRequest handles POST /api/v1/wallet/purchase-requests. The child
// identity comes from the token, never the body.
func (h *PurchaseHandler) CreatePurchaseRequest(c *gin.Context) {
	childID, err := callerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.purchaseSvc.Create(c.Request.Context(), ports.CreatePurchaseRequest{
		ChildID:      childID,
		ItemName:     req.ItemName,
		PurchaseType: req.PurchaseType,
		Amount:       req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPurchaseRequestResponse(result))
}

// ListPurchaseRequests handles GET /api/v1/wallet/purchase-requests. Children see
// their own requests only; parents may filter by child_id.
func (h *PurchaseHandler) ListPurchaseRequests(c *gin.Context) {
	params := ports.PurchaseListParams{}

	if c.GetString(middleware.CtxRole) == middleware.RoleChild {
		childID, err := callerID(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.ChildID = &childID
	} else if raw := c.Query("child_id"); raw != "" {
		childID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("child_id must be a valid UUID"))
			return
		}
		params.ChildID = &childID
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.RequestStatus(raw)
		switch status {
		case domain.RequestStatusPending, domain.RequestStatusApproved,
			domain.RequestStatusAutoApproved, domain.RequestStatusRejected,
			domain.RequestStatusExpired:
			params.Status = &status
		default:
			response.Error(c, apperror.Validation("unknown status filter"))
			return
		}
	}

	items, err := h.purchaseSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.PurchaseRequestResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toPurchaseRequestResponse(&items[i]))
	}
	response.OK(c, resp)
}

// ApprovePurchaseRequest handles POST /api/v1/wallet/purchase-requests/:id/approve.
func (h *PurchaseHandler) ApprovePurchaseRequest(c *gin.Context) {
	parentID, err := callerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	result, err := h.purchaseSvc.Approve(c.Request.Context(), requestID, parentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPurchaseRequestResponse(result))
}

// RejectPurchaseRequest handles POST /api/v1/wallet/purchase-requests/:id/reject.
func (h *PurchaseHandler) RejectPurchaseRequest(c *gin.Context) {
	parentID, err := callerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	var req dto.PurchaseRejectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
	}

	result, err := h.purchaseSvc.Reject(c.Request.Context(), requestID, parentID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPurchaseRequestResponse(result))
}

// GetSettings handles GET /api/v1/wallet/:childId/approval-settings.
func (h *PurchaseHandler) GetSettings(c *gin.Context) {
	childID, err := uuid.Parse(c.Param("childId"))
	if err != nil {
		response.Error(c, apperror.Validation("childId must be a valid UUID"))
		return
	}

	settings, err := h.purchaseSvc.GetSettings(c.Request.Context(), childID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/wallet/:childId/approval-settings.
func (h *PurchaseHandler) UpdateSettings(c *gin.Context) {
	childID, err := uuid.Parse(c.Param("childId"))
	if err != nil {
		response.Error(c, apperror.Validation("childId must be a valid UUID"))
		return
	}

	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings := &domain.ApprovalSettings{
		ChildID:          childID,
		Mode:             domain.ApprovalMode(req.Mode),
		PerPurchaseLimit: req.PerPurchaseLimit,
		DailyLimit:       req.DailyLimit,
		MonthlyLimit:     req.MonthlyLimit,
	}
	if err := h.purchaseSvc.UpdateSettings(c.Request.Context(), settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(settings))
}

// callerID returns the authenticated user's id from the request context.
func callerID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, apperror.ErrInvalidToken()
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidToken()
	}
	return id, nil
}

// toPurchaseRequestResponse converts domain.PurchaseRequest to DTO.
func toPurchaseRequestResponse(r *domain.PurchaseRequest) dto.PurchaseRequestResponse {
	resp := dto.PurchaseRequestResponse{
		ID:              r.ID.String(),
		ChildID:         r.ChildID.String(),
		ItemName:        r.ItemName,
		PurchaseType:    r.PurchaseType,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		ExpiresAt:       r.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		DecidedBy:       r.DecidedBy,
		RejectionReason: r.RejectionReason,
	}
	if r.DecidedAt != nil {
		s := r.DecidedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.DecidedAt = &s
	}
	return resp
}

// toSettingsResponse converts domain.ApprovalSettings to DTO.
func toSettingsResponse(s *domain.ApprovalSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		ChildID:          s.ChildID.String(),
		Mode:             string(s.Mode),
		PerPurchaseLimit: s.PerPurchaseLimit,
		DailyLimit:       s.DailyLimit,
		MonthlyLimit:     s.MonthlyLimit,
		UpdatedAt:        s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
