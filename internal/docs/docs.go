// Package docs turns uploaded resume documents into plain text for the
// extraction pipeline.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
)

// Converter saves uploads under a working directory and extracts their text.
type Converter struct {
	uploadsDir string
}

func NewConverter(uploadsDir string) *Converter {
	return &Converter{uploadsDir: uploadsDir}
}

// SaveUpload writes the reader to a uniquely named file in the uploads
// directory, keeping the original extension, and returns its path.
func (c *Converter) SaveUpload(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(c.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(c.uploadsDir, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}

// ExtractText returns the plain text of a resume file. Only PDF, Word and
// plain-text files are accepted; an empty extraction is an error, since the
// pipeline would silently produce an empty profile from it.
func ExtractText(path string) (string, error) {
	var text string

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("convert document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		text = string(content)
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", filepath.Base(path))
	}
	return text, nil
}
