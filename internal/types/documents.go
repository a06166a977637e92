// Package types provides the shared data model for the resume-tailor system.
package types

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MimeClass is the coarse document classification used by the text extractor.
type MimeClass string

const (
	MimeClassText        MimeClass = "text"
	MimeClassDocx        MimeClass = "docx"
	MimeClassUnsupported MimeClass = "unsupported"
)

// ClassifyFilename maps a filename to its MimeClass by extension.
// Anything that is not plain text or a word-processor package is
// unsupported; notably PDF, which the extractor refuses rather than
// attempting to decode.
func ClassifyFilename(name string) MimeClass {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return MimeClassText
	case ".docx":
		return MimeClassDocx
	default:
		return MimeClassUnsupported
	}
}

// RawDocument is an uploaded source document. Immutable once created;
// deleting it cascades to experiences extracted solely from it.
type RawDocument struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Filename         string    `json:"filename"`
	MimeClass        MimeClass `json:"mime_class"`
	ByteSize         int64     `json:"byte_size"`
	StoragePath      string    `json:"storage_path,omitempty"`
	SkillsIdentified []string  `json:"skills_identified,omitempty"`
	ConfidenceScore  float64   `json:"confidence_score"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
