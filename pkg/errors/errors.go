package errors

import (
	"fmt"
)

// InvalidColorFormatError reports a malformed hex color string.
type InvalidColorFormatError struct {
	Value string
}

// NewInvalidColorFormatError constructs an InvalidColorFormatError.
func NewInvalidColorFormatError(value string) error {
	return &InvalidColorFormatError{Value: value}
}

func (e *InvalidColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid hex color: %q", e.Value)
}

// MissingTokenKeyError reports a required design-token path that is absent
// from the token tree.
type MissingTokenKeyError struct {
	Path string
}

// NewMissingTokenKeyError constructs a MissingTokenKeyError for the dotted path.
func NewMissingTokenKeyError(path string) error {
	return &MissingTokenKeyError{Path: path}
}

func (e *MissingTokenKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing design token: %s", e.Path)
}

// TokenLoadError reports an unreadable or unparsable design-token file.
type TokenLoadError struct {
	Path string
	Err  error
}

// NewTokenLoadError constructs a TokenLoadError.
func NewTokenLoadError(path string, err error) error {
	return &TokenLoadError{Path: path, Err: err}
}

func (e *TokenLoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("loading design tokens from %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TokenLoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnsupportedCardTypeError reports a card kind outside the closed variant set.
type UnsupportedCardTypeError struct {
	Kind string
}

// NewUnsupportedCardTypeError constructs an UnsupportedCardTypeError.
func NewUnsupportedCardTypeError(kind string) error {
	return &UnsupportedCardTypeError{Kind: kind}
}

func (e *UnsupportedCardTypeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported card type: %s", e.Kind)
}

// ConstructionError reports a card constructed without a required
// variant-specific field.
type ConstructionError struct {
	Kind    string
	Field   string
	Message string
}

// NewConstructionError constructs a ConstructionError.
func NewConstructionError(kind, field, message string) error {
	return &ConstructionError{Kind: kind, Field: field, Message: message}
}

func (e *ConstructionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("constructing %s card: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("constructing %s card: %s", e.Kind, e.Message)
}
