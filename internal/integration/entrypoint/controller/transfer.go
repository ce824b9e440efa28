package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/backend/internal/application/usecase/exporter"
	"github.com/bizpulse/backend/internal/application/usecase/importer"
	domainerror "github.com/bizpulse/backend/internal/domain/error"
	"github.com/bizpulse/backend/internal/integration/entrypoint/dto"
)

// maxImportSize limits uploaded import files to 10 MiB.
const maxImportSize = 10 << 20

// TransferController handles file import and export endpoints.
type TransferController struct {
	importUseCase         *importer.ImportFileUseCase
	exportCSVUseCase      *exporter.ExportCSVUseCase
	exportWorkbookUseCase *exporter.ExportWorkbookUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	importUseCase *importer.ImportFileUseCase,
	exportCSVUseCase *exporter.ExportCSVUseCase,
	exportWorkbookUseCase *exporter.ExportWorkbookUseCase,
) *TransferController {
	return &TransferController{
		importUseCase:         importUseCase,
		exportCSVUseCase:      exportCSVUseCase,
		exportWorkbookUseCase: exportWorkbookUseCase,
	}
}

// Import handles POST /business/import requests.
// It expects a multipart form with a single "file" field.
func (c *TransferController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file upload is required",
		})
		return
	}
	if fileHeader.Size > maxImportSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Uploaded file is too large",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}

	result, err := c.importUseCase.Execute(ctx.Request.Context(), importer.ImportFileInput{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, dto.ToImportResultResponse(result))
}

// ExportCSV handles GET /business/export/csv requests.
func (c *TransferController) ExportCSV(ctx *gin.Context) {
	output, err := c.exportCSVUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "text/csv", output.Content)
}

// ExportWorkbook handles GET /business/export/workbook requests.
func (c *TransferController) ExportWorkbook(ctx *gin.Context) {
	output, err := c.exportWorkbookUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", output.Content)
}

// handleTransferError handles transfer errors and returns appropriate HTTP responses.
func (c *TransferController) handleTransferError(ctx *gin.Context, err error) {
	var transferErr *domainerror.TransferError
	if errors.As(err, &transferErr) {
		statusCode := c.getStatusCodeForTransferError(transferErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: transferErr.Message,
			Code:  string(transferErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransferError maps transfer error codes to HTTP status codes.
func (c *TransferController) getStatusCodeForTransferError(code domainerror.TransferErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedFileType:
		return http.StatusUnsupportedMediaType
	case domainerror.ErrCodeNoRecordsToExport:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
