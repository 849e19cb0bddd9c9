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

// TopupHandler handles M-Pesa top-up initiation and status polling.
type TopupHandler struct {
	sessionSvc ports.PaymentSessionService
}

// NewTopupHandler creates a new TopupHandler.
func NewTopupHandler(sessionSvc ports.PaymentSessionService) *TopupHandler {
	return &TopupHandler{sessionSvc: sessionSvc}
}

// InitiateTopup handles POST /api/v1/mpesa/stk-push. Returns 202: the STK
// push outcome arrives asynchronously and clients poll GetTopupStatus.
func (h *TopupHandler) InitiateTopup(c *gin.Context) {
	var req dto.TopupInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		response.Error(c, apperror.Validation("child_id must be a valid UUID"))
		return
	}
	if c.GetString(middleware.CtxRole) == middleware.RoleChild &&
		c.GetString(middleware.CtxUserID) != childID.String() {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	dto.SanitizeStruct(&req)
	session, err := h.sessionSvc.Initiate(c.Request.Context(), ports.InitiateTopupRequest{
		ChildID:          childID,
		PhoneNumber:      req.PhoneNumber,
		Amount:           req.Amount,
		AccountReference: req.AccountReference,
		TransactionDesc:  req.TransactionDesc,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toSessionResponse(session))
}

// GetTopupStatus handles GET /api/v1/mpesa/status/:checkoutRequestId. A
// session that the poll budget force-failed surfaces as a gateway timeout so
// clients can distinguish it from a real decline.
func (h *TopupHandler) GetTopupStatus(c *gin.Context) {
	sessionID := c.Param("checkoutRequestId")
	if sessionID == "" {
		response.Error(c, apperror.Validation("checkoutRequestId is required"))
		return
	}

	session, err := h.sessionSvc.Status(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if session.TimedOut() {
		response.Error(c, apperror.ErrGatewayTimeout())
		return
	}

	response.OK(c, toSessionResponse(session))
}

// toSessionResponse converts domain.PaymentSession to DTO.
func toSessionResponse(s *domain.PaymentSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:     s.ID,
		Amount: s.Amount,
		Status: string(s.Status),
	}
	if s.ChildID != uuid.Nil {
		resp.ChildID = s.ChildID.String()
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if s.FailureReason != nil {
		reason := string(*s.FailureReason)
		resp.FailureReason = &reason
	}
	if s.ResolvedAt != nil {
		t := s.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ResolvedAt = &t
	}
	return resp
}
