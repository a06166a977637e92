package extraction

import "fmt"

// UnsupportedFormatMessage is the fixed refusal surfaced to the user when a
// binary format cannot be decoded.
const UnsupportedFormatMessage = "PDF files are not currently supported. Please convert your PDF to DOCX format or save as TXT file."

// UnsupportedFormatError indicates the document's binary format cannot be
// decoded. Extraction aborts for that file only; other files in a batch
// continue.
type UnsupportedFormatError struct {
	Filename string
	Cause    error
}

func (e *UnsupportedFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported format: %s: %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("unsupported format: %s", e.Filename)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates the file was rejected before upload: it exceeds
// the size limit or has a disallowed extension.
type ValidationError struct {
	Filename string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Filename, e.Message)
}
