package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateDocumentPath validates a document path before the shell opens or
// writes it. It rejects paths that are empty, contain control characters or
// null bytes, or name a directory-like target.
//
// Extension checking is deliberately not done here: documents are matched by
// content, and export paths legitimately carry .gv, .tex or .png extensions.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "document path cannot be empty")
	}
	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "document path contains control characters")
		}
	}
	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "document path names a directory: %s", path)
	}
	return nil
}
