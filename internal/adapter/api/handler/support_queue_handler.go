package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
	"lokapasar/pkg/utils"
)

type SupportQueueHandler struct {
	caseAggregator *usecase.CaseAggregatorUseCase
	caseAction     *usecase.CaseActionUseCase
}

func NewSupportQueueHandler(caseAggregator *usecase.CaseAggregatorUseCase, caseAction *usecase.CaseActionUseCase) *SupportQueueHandler {
	return &SupportQueueHandler{
		caseAggregator: caseAggregator,
		caseAction:     caseAction,
	}
}

type applyCaseActionRequest struct {
	Source string `json:"source" validate:"required,oneof=dispute delivery seller"`
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve suspend activate review resolve reject"`
	Note   string `json:"note,omitempty"`
}

// GetQueue returns the unified, paginated case queue with summary counters
func (h *SupportQueueHandler) GetQueue(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	page, err := h.caseAggregator.List(c.Request().Context(), usecase.CaseFilter{
		Source:  c.QueryParam("source"),
		Status:  c.QueryParam("status"),
		Keyword: c.QueryParam("keyword"),
		Page:    pagination.Page,
		Limit:   pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

// ApplyAction validates and applies one admin action to a case
func (h *SupportQueueHandler) ApplyAction(c echo.Context) error {
	var req applyCaseActionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)
	caseKey := entity.CaseKeyFor(entity.CaseSource(req.Source), req.ID)

	updated, err := h.caseAction.Apply(c.Request().Context(), adminID, caseKey, usecase.CaseAction(req.Action), req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updated)
}
