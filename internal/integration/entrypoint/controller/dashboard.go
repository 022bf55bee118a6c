package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jinofin/backend/internal/application/usecase/dashboard"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/entrypoint/dto"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard summary and live stream endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
	watchUseCase   *dashboard.WatchSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	watchUseCase *dashboard.WatchSummaryUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		watchUseCase:   watchUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{
		HouseholdID: householdID,
		MonthKey:    ctx.Query("month"),
	}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil {
			input.Months = months
		}
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Stream handles GET /dashboard/stream requests as server-sent events. One
// event is sent after the initial load and one after every store change, each
// carrying a complete snapshot.
func (c *DashboardController) Stream(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.WatchSummaryInput{
		HouseholdID: householdID,
		MonthKey:    ctx.Query("month"),
	}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil {
			input.Months = months
		}
	}

	snapshots, err := c.watchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		snapshot, open := <-snapshots
		if !open {
			return false
		}
		payload, err := json.Marshal(dto.ToStreamSnapshotResponse(snapshot))
		if err != nil {
			return false
		}
		ctx.SSEvent("summary", string(payload))
		return true
	})
}

// handleDashboardError maps domain errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusBadRequest
		if dashErr.Code == domainerror.ErrCodeDashboardStoreFailure {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
