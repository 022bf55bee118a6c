package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/usecase/settings"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/entrypoint/dto"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles household settings endpoints.
type SettingsController struct {
	getUseCase  *settings.GetSettingsUseCase
	saveUseCase *settings.SaveSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	saveUseCase *settings.SaveSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:  getUseCase,
		saveUseCase: saveUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{
		HouseholdID: householdID,
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Save handles PATCH /settings requests.
func (c *SettingsController) Save(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SaveSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.SaveSettingsInput{
		HouseholdID: householdID,
		Currency:    req.Currency,
		Categories:  req.Categories,
	}

	if req.TotalBudget != nil {
		budget, err := decimal.NewFromString(*req.TotalBudget)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid total budget amount",
				Code:  string(domainerror.ErrCodeNegativeBudget),
			})
			return
		}
		input.TotalBudget = &budget
	}

	if req.CategoryBudgets != nil {
		budgets := make(map[string]decimal.Decimal, len(*req.CategoryBudgets))
		for name, raw := range *req.CategoryBudgets {
			limit, err := decimal.NewFromString(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid budget amount for category " + name,
					Code:  string(domainerror.ErrCodeNegativeBudget),
				})
				return
			}
			budgets[name] = limit
		}
		input.CategoryBudgets = &budgets
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// handleSettingsError maps domain errors to HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var setErr *domainerror.SettingsError
	if errors.As(err, &setErr) {
		status := http.StatusBadRequest
		switch setErr.Code {
		case domainerror.ErrCodeSettingsNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeSettingsStoreFailure:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: setErr.Message,
			Code:  string(setErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
