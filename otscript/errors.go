package otscript

import (
	"errors"
	"fmt"

	"github.com/npillmayer/scriptlang/ot"
)

// ErrFrozen is returned when registering with a builder whose registry has already
// been frozen.
var ErrFrozen = errors.New("otscript: registry is frozen")

// DuplicateTagError reports a script tag which has been registered twice.
// The script table is authored once and must be internally consistent, therefore
// this error aborts initialization of a registry.
type DuplicateTagError struct {
	Tag      ot.Tag // the colliding script tag
	FullName string // full name of the script trying to register the tag
	Owner    string // full name of the script already holding the tag
}

// Error implements the error interface.
func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("duplicate script tag '%s' for %q (owned by %q)", e.Tag, e.FullName, e.Owner)
}

// DuplicateNameError reports a script full name which has been registered twice.
type DuplicateNameError struct {
	FullName string
	Tag      ot.Tag
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate script name %q (tag '%s')", e.FullName, e.Tag)
}

// InvalidTagError reports a script tag which is not a valid OpenType tag.
type InvalidTagError struct {
	FullName string
	Tag      string
}

// Error implements the error interface.
func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid script tag %q for %q", e.Tag, e.FullName)
}
