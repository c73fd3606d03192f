package dto

type DocumentInput struct {
	Content  string         `json:"content" validate:"required"`
	Metadata map[string]any `json:"metadata"`
}

type IndexDocumentsRequest struct {
	Documents []DocumentInput `json:"documents" validate:"required,min=1,dive"`
}

type IndexDocumentsResponse struct {
	Indexed int `json:"indexed"`
}

type SearchDocumentsResponse struct {
	Query   string       `json:"query"`
	Sources []SourceItem `json:"sources"`
}

type SeedDataResponse struct {
	Documents []DocumentInput `json:"documents"`
}
