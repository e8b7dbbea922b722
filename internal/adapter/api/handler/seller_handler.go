package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"
)

type SellerHandler struct {
	caseAction *usecase.CaseActionUseCase
	auditTrail *usecase.AuditTrailUseCase
}

func NewSellerHandler(caseAction *usecase.CaseActionUseCase, auditTrail *usecase.AuditTrailUseCase) *SellerHandler {
	return &SellerHandler{
		caseAction: caseAction,
		auditTrail: auditTrail,
	}
}

type updateSellerStatusRequest struct {
	IsApproved *bool  `json:"is_approved,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
	Note       string `json:"note,omitempty"`
}

// UpdateStatus maps a requested flag delta onto the equivalent seller action
// and routes it through the dispatcher and audit path
func (h *SellerHandler) UpdateStatus(c echo.Context) error {
	sellerID := c.Param("id")
	if sellerID == "" {
		return response.Error(c, errors.BadRequest("Seller ID is required", nil))
	}

	var req updateSellerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if req.IsApproved == nil && req.IsActive == nil {
		return response.Error(c, errors.BadRequest("At least one of is_approved or is_active is required", nil))
	}

	adminID := c.Get("uid").(string)

	updated, err := h.caseAction.ApplySellerFlagDelta(c.Request().Context(), adminID, sellerID, req.IsApproved, req.IsActive, req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updated)
}

// GetActivity returns a seller's audit trail, newest first
func (h *SellerHandler) GetActivity(c echo.Context) error {
	sellerID := c.Param("id")
	if sellerID == "" {
		return response.Error(c, errors.BadRequest("Seller ID is required", nil))
	}

	entries, err := h.auditTrail.History(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
