package generate

import "fmt"

// InvalidDocumentError is returned when a devfile cannot be read as a YAML object
type InvalidDocumentError struct {
	document string
	err      error
}

func NewInvalidDocumentError(document string, err error) InvalidDocumentError {
	return InvalidDocumentError{
		document: document,
		err:      err,
	}
}

func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("unable to parse the %s: %v", e.document, e.err)
}

func (e InvalidDocumentError) Unwrap() error {
	return e.err
}
