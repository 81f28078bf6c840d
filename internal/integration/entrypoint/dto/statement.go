// Package dto defines data transfer objects for API requests and responses.
package dto

// UploadStatementRequest represents the request body for a statement upload.
// Content carries the base64-encoded statement text.
type UploadStatementRequest struct {
	Content  string `json:"content" binding:"required"`
	Filename string `json:"filename,omitempty"`
}

// UploadStatementResponse represents the response for a statement upload.
type UploadStatementResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      *SummaryResponse      `json:"summary,omitempty"`
	Breakdowns   []BreakdownResponse   `json:"breakdowns,omitempty"`
}

// CategoryListResponse represents the fixed category enumeration.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
