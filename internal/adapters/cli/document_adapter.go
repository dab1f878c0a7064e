package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/contrack/internal/ports/primary"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// documentMode is the permission of a newly generated document.
const documentMode os.FileMode = 0644

// DocumentAdapter translates the generate command to DocumentService calls.
type DocumentAdapter struct {
	service primary.DocumentService
	out     io.Writer
}

// NewDocumentAdapter creates a new DocumentAdapter with the given service.
func NewDocumentAdapter(service primary.DocumentService, out io.Writer) *DocumentAdapter {
	return &DocumentAdapter{
		service: service,
		out:     out,
	}
}

// Generate renders the document to path. The file is written to a temporary
// sibling first and renamed into place, so a failed render leaves any
// previous document intact.
func (a *DocumentAdapter) Generate(ctx context.Context, repositoryURL, author, path string) (*primary.GenerateDocumentResponse, error) {
	if path == StdoutPath {
		return a.service.GenerateDocument(ctx, primary.GenerateDocumentRequest{
			RepositoryURL: repositoryURL,
			Author:        author,
			Output:        a.out,
		})
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	resp, err := a.service.GenerateDocument(ctx, primary.GenerateDocumentRequest{
		RepositoryURL: repositoryURL,
		Author:        author,
		Output:        tmp,
	})
	if err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Chmod(outputMode(path)); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	success(a.out, "Wrote %d contribution(s) to %s", resp.Contributions, path)
	if resp.Unresolved > 0 {
		warn(a.out, "%d key commit(s) are not synchronized and render as unresolved; run `contrack update`", resp.Unresolved)
	}
	return resp, nil
}

// outputMode keeps the permissions of an existing document, else documentMode.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return documentMode
}
