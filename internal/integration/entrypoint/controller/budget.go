package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinofin/backend/internal/application/usecase/budget"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/entrypoint/dto"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles remaining-budget projection endpoints.
type BudgetController struct {
	projectionUseCase *budget.GetProjectionUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(projectionUseCase *budget.GetProjectionUseCase) *BudgetController {
	return &BudgetController{
		projectionUseCase: projectionUseCase,
	}
}

// Projection handles GET /budget/projection requests. The pending query
// parameter carries the amount text currently typed into the entry form.
func (c *BudgetController) Projection(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	category := ctx.Query("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Category is required",
			Code:  string(domainerror.ErrCodeMissingCategory),
		})
		return
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), budget.GetProjectionInput{
		HouseholdID: householdID,
		Category:    category,
		RawPending:  ctx.Query("pending"),
		MonthKey:    ctx.Query("month"),
	})
	if err != nil {
		var dashErr *domainerror.DashboardError
		if errors.As(err, &dashErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: dashErr.Message,
				Code:  string(dashErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute projection",
		})
		return
	}

	response := dto.ToProjectionResponse(output.Projection)
	ctx.JSON(http.StatusOK, gin.H{
		"projection": response,
		"currency":   output.Currency,
	})
}
