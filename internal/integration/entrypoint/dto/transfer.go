package dto

import "github.com/bizpulse/backend/internal/application/usecase/importer"

// ImportResultResponse represents the outcome of a file import.
type ImportResultResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// ToImportResultResponse converts an importer result to its response DTO.
func ToImportResultResponse(result *importer.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		Success:  result.Success,
		Message:  result.Message,
		Imported: result.Imported,
	}
}
