package primary

import (
	"context"
	"io"
)

// DocumentService defines the primary port for rendering contribution documents.
type DocumentService interface {
	// GenerateDocument renders a repository's contributions as markdown to req.Output.
	GenerateDocument(ctx context.Context, req GenerateDocumentRequest) (*GenerateDocumentResponse, error)
}

// GenerateDocumentRequest contains parameters for rendering a document.
type GenerateDocumentRequest struct {
	RepositoryURL string
	Author        string // case-insensitive exact match on a key commit's author name or email
	Output        io.Writer
}

// GenerateDocumentResponse reports what was rendered.
type GenerateDocumentResponse struct {
	Contributions int
	Unresolved    int // key commit references with no synchronized commit
}
