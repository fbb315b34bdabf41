package xsdtree

import (
	"errors"
	"fmt"
)

// ParseError reports a structural violation found while building the tree:
// a child element outside its container's permitted set, an unknown or
// malformed attribute, or a missing required one. The first violation aborts
// the whole parse.
type ParseError struct {
	Tag       string `json:"tag"`
	Attribute string `json:"attribute,omitempty"`
	Message   string `json:"message"`
}

func (e *ParseError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s/@%s: %s", e.Tag, e.Attribute, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

// ErrNoContent reports a type definition with no content variant to hand
// back.
var ErrNoContent = errors.New("no content present")
