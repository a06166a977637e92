// Package extraction turns uploaded documents into raw text for the
// heuristic pipeline. Plain text is read as-is; word-processor packages are
// unzipped and stripped to body text. There is no OCR and no PDF decoding;
// those formats are refused with a fixed message.
package extraction

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/careerforge/resume-tailor/internal/types"
)

// Extract decodes the document payload into cleaned raw text based on its
// filename classification. Unsupported formats fail with
// *UnsupportedFormatError; the caller continues with the rest of the batch.
func Extract(filename string, data []byte) (string, error) {
	switch types.ClassifyFilename(filename) {
	case types.MimeClassText:
		return CleanText(string(data)), nil
	case types.MimeClassDocx:
		text, err := extractDocxText(data)
		if err != nil {
			return "", &UnsupportedFormatError{Filename: filename, Cause: err}
		}
		return CleanText(text), nil
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

var (
	docxParaRe  = regexp.MustCompile(`</w:p>`)
	docxBreakRe = regexp.MustCompile(`<w:(?:br|cr)\s*/>`)
	docxTabRe   = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTagRe    = regexp.MustCompile(`<[^>]*>`)
)

// extractDocxText unzips the package and flattens the document body to
// plain text, turning paragraph and line-break elements into newlines so
// the segmenter sees the same line structure the author wrote.
func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTabRe.ReplaceAllString(content, "\t")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// UploadLimits gates files before any bytes reach storage.
type UploadLimits struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// DefaultUploadLimits mirrors the resume-bucket configuration: 10MB and the
// extractable plus refusable-but-recognized extensions.
func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxBytes:          10 * 1024 * 1024,
		AllowedExtensions: []string{".txt", ".text", ".md", ".docx", ".pdf", ".doc"},
	}
}

// ValidateUpload rejects oversized files and disallowed extensions with a
// *ValidationError. A rejected file does not stop the rest of the batch.
func (l UploadLimits) ValidateUpload(filename string, size int64) error {
	if size > l.MaxBytes {
		return &ValidationError{
			Filename: filename,
			Message:  "file size exceeds limit",
		}
	}
	lower := strings.ToLower(filename)
	for _, ext := range l.AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return &ValidationError{Filename: filename, Message: "file type not supported"}
}

// SanitizeFilename replaces characters that break storage paths.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"{", "_", "}", "_", "[", "_", "]", "_", "|", "_", ":", "_",
		";", "_", "<", "_", ">", "_", "?", "_", `"`, "_", `\`, "_", "/", "_",
	)
	name = replacer.Replace(name)
	name = multiSpaceRe.ReplaceAllString(name, "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}
