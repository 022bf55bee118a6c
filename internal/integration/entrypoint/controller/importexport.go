package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinofin/backend/internal/application/usecase/csvimport"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/entrypoint/dto"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
)

// maxImportBytes caps uploaded CSV files.
const maxImportBytes = 5 << 20

// ImportExportController handles CSV import and export endpoints.
type ImportExportController struct {
	previewUseCase *csvimport.PreviewImportUseCase
	commitUseCase  *csvimport.CommitImportUseCase
	exportUseCase  *csvimport.ExportCSVUseCase
}

// NewImportExportController creates a new import/export controller instance.
func NewImportExportController(
	previewUseCase *csvimport.PreviewImportUseCase,
	commitUseCase *csvimport.CommitImportUseCase,
	exportUseCase *csvimport.ExportCSVUseCase,
) *ImportExportController {
	return &ImportExportController{
		previewUseCase: previewUseCase,
		commitUseCase:  commitUseCase,
		exportUseCase:  exportUseCase,
	}
}

// Preview handles POST /import/preview requests. The body is the raw CSV
// file; nothing is persisted.
func (c *ImportExportController) Preview(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	rows, ok := c.readCSVBody(ctx)
	if !ok {
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), csvimport.PreviewImportInput{
		HouseholdID: householdID,
		Rows:        rows,
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportPreviewResponse(output))
}

// Commit handles POST /import/commit requests. The body is the same CSV file
// that was previewed; valid rows are persisted in one atomic batch.
func (c *ImportExportController) Commit(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	rows, ok := c.readCSVBody(ctx)
	if !ok {
		return
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), csvimport.CommitImportInput{
		HouseholdID: householdID,
		Rows:        rows,
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportCommitResponse{
		ImportedCount: output.ImportedCount,
		SkippedCount:  output.SkippedCount,
	})
}

// Export handles GET /export/csv requests and streams the CSV download.
func (c *ImportExportController) Export(ctx *gin.Context) {
	householdID, ok := middleware.GetHouseholdIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Household not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := csvimport.ExportCSVInput{
		HouseholdID: householdID,
		MonthKey:    ctx.Query("month"),
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	count, err := c.exportUseCase.Execute(ctx.Request.Context(), input, ctx.Writer)
	if err != nil {
		// Headers may already be flushed; best effort.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("X-Exported-Count", fmt.Sprintf("%d", count))
}

// readCSVBody parses the request body as a header-keyed CSV. The upload may
// arrive as a raw body or as a multipart form with a "file" part.
func (c *ImportExportController) readCSVBody(ctx *gin.Context) ([]map[string]string, bool) {
	reader := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportBytes)

	if file, err := ctx.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Failed to read uploaded file",
				Code:  string(domainerror.ErrCodeMalformedCSV),
			})
			return nil, false
		}
		defer opened.Close()
		reader = opened
	}

	rows, err := csvimport.ReadRows(reader)
	if err != nil {
		c.handleImportError(ctx, err)
		return nil, false
	}
	return rows, true
}

// handleImportError maps domain errors to HTTP responses.
func (c *ImportExportController) handleImportError(ctx *gin.Context, err error) {
	var impErr *domainerror.ImportError
	if errors.As(err, &impErr) {
		status := http.StatusBadRequest
		if impErr.Code == domainerror.ErrCodeImportStoreFailure {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: impErr.Message,
			Code:  string(impErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
