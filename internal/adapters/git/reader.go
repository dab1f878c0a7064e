// Package git reads commit metadata from a local checkout by running the git binary.
// It never fetches: every command runs with terminal prompts disabled against
// objects already present in the checkout.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	godiff "github.com/sourcegraph/go-diff/diff"

	"github.com/example/contrack/internal/core/commit"
	"github.com/example/contrack/internal/ports/secondary"
)

// metadataFormat separates fields with NUL so messages may contain anything else.
// Fields: hash, author name, author email, committer date, parents, raw body.
const metadataFormat = "%H%x00%an%x00%ae%x00%cI%x00%P%x00%B"

// Reader implements secondary.GitReader with the git command-line tool.
type Reader struct {
	binary string
}

// NewReader creates a Reader using the git binary on PATH.
func NewReader() *Reader {
	return &Reader{binary: "git"}
}

// Validate checks that path is a git work tree or bare repository.
func (r *Reader) Validate(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open checkout: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if _, err := r.output(ctx, path, "rev-parse", "--git-dir"); err != nil {
		return err
	}
	return nil
}

// OriginURL returns the URL of the checkout's origin remote.
func (r *Reader) OriginURL(ctx context.Context, path string) (string, error) {
	out, err := r.output(ctx, path, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("failed to read origin remote: %w", err)
	}
	url := strings.TrimSpace(out)
	if url == "" {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return url, nil
}

// ReadCommit resolves ref to a single commit and reads its metadata and diff stats.
func (r *Reader) ReadCommit(ctx context.Context, path, ref string) (*secondary.CommitInfo, error) {
	if !commit.IsHashRef(ref) {
		return nil, fmt.Errorf("%q: %w", ref, secondary.ErrCommitNotFound)
	}

	hash, err := r.resolve(ctx, path, ref)
	if err != nil {
		return nil, err
	}

	out, err := r.output(ctx, path, "show", "-s", "--no-color", "--format="+metadataFormat, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", commit.Short(hash), err)
	}

	info, parents, err := parseMetadata(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse commit %s: %w", commit.Short(hash), err)
	}

	args := []string{"diff-tree", "--no-commit-id", "-p", "-r", "--no-renames", "--no-color", "--no-ext-diff"}
	if len(parents) == 0 {
		args = append(args, "--root", hash)
	} else {
		args = append(args, parents[0], hash)
	}
	patch, err := r.output(ctx, path, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to diff commit %s: %w", commit.Short(hash), err)
	}

	if err := applyDiffStats(info, patch); err != nil {
		return nil, fmt.Errorf("failed to parse diff of %s: %w", commit.Short(hash), err)
	}

	return info, nil
}

// resolve expands ref to a full object name.
// Unknown and ambiguous references both fail rev-parse --verify with exit status 1.
func (r *Reader) resolve(ctx context.Context, path, ref string) (string, error) {
	out, err := r.output(ctx, path, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", fmt.Errorf("%q: %w", ref, secondary.ErrCommitNotFound)
		}
		return "", fmt.Errorf("failed to resolve %q: %w", ref, err)
	}
	return strings.TrimSpace(out), nil
}

func parseMetadata(out string) (*secondary.CommitInfo, []string, error) {
	fields := strings.SplitN(out, "\x00", 6)
	if len(fields) != 6 {
		return nil, nil, fmt.Errorf("unexpected metadata format (%d fields)", len(fields))
	}

	committedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid commit date %q: %w", fields[3], err)
	}

	info := &secondary.CommitInfo{
		Hash:        strings.TrimSpace(fields[0]),
		AuthorName:  fields[1],
		AuthorEmail: fields[2],
		CommittedAt: committedAt.UTC(),
		Message:     strings.TrimRight(fields[5], "\n"),
	}
	return info, strings.Fields(fields[4]), nil
}

// applyDiffStats fills the changed file list and line counts from a unified diff.
func applyDiffStats(info *secondary.CommitInfo, patch string) error {
	info.FilesChanged = []string{}
	if strings.TrimSpace(patch) == "" {
		return nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(patch))
	if err != nil {
		return err
	}

	for _, fd := range fileDiffs {
		name := cleanPath(fd.NewName)
		if name == "" || name == "/dev/null" {
			name = cleanPath(fd.OrigName)
		}
		if name == "" || name == "/dev/null" {
			name = pathFromHeader(fd.Extended)
		}
		if name != "" {
			info.FilesChanged = append(info.FilesChanged, name)
		}

		for _, hunk := range fd.Hunks {
			for _, line := range strings.Split(string(hunk.Body), "\n") {
				if line == "" {
					continue
				}
				switch line[0] {
				case '+':
					info.LinesAdded++
				case '-':
					info.LinesDeleted++
				}
			}
		}
	}
	return nil
}

// cleanPath removes the a/ or b/ prefix from git diff paths.
func cleanPath(path string) string {
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}
	return path
}

// pathFromHeader recovers the path of a diff without ---/+++ lines
// (binary files, empty new files) from its "diff --git a/x b/x" header.
func pathFromHeader(extended []string) string {
	for _, line := range extended {
		if rest, ok := strings.CutPrefix(line, "diff --git "); ok {
			if i := strings.LastIndex(rest, " b/"); i >= 0 {
				return rest[i+3:]
			}
		}
	}
	return ""
}

// output runs git in dir and returns stdout.
func (r *Reader) output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

var _ secondary.GitReader = (*Reader)(nil)
