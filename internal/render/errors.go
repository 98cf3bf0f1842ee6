package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedItemType is returned for items without a header template.
	ErrUnsupportedItemType = errors.New("unsupported item type")

	// ErrConversionFailed wraps errors raised by the RTF converter.
	ErrConversionFailed = errors.New("rtf conversion failed")

	// ErrMissingRequiredField is returned in strict mode when a required field is empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// MissingFieldError reports the first required field found empty in strict mode.
type MissingFieldError struct {
	Kind  ItemKind
	Field LabelID
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingRequiredField, e.Kind, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}
