package xsdtree

import (
	"fmt"
	"strings"
)

// Lexical attribute value types. A QName is kept exactly as written in the
// document; prefix resolution belongs to the consumer.
type (
	AnyURI string
	ID     string
	NCName string
	QName  string
	Token  string
)

// FormChoice is the value space of form / elementFormDefault /
// attributeFormDefault.
type FormChoice string

const (
	FormQualified   FormChoice = "qualified"
	FormUnqualified FormChoice = "unqualified"
)

func parseFormChoice(s string) (FormChoice, error) {
	switch f := FormChoice(s); f {
	case FormQualified, FormUnqualified:
		return f, nil
	}
	return "", fmt.Errorf("invalid form value %q", s)
}

// Block is one token of a block / blockDefault list.
type Block string

const (
	BlockAll          Block = "#all"
	BlockExtension    Block = "extension"
	BlockRestriction  Block = "restriction"
	BlockSubstitution Block = "substitution"
)

// parseBlockList parses a block attribute: either the single token #all or a
// whitespace-separated list of derivation tokens.
func parseBlockList(s string) ([]Block, error) {
	if strings.TrimSpace(s) == string(BlockAll) {
		return []Block{BlockAll}, nil
	}
	var out []Block
	for _, tok := range strings.Fields(s) {
		switch b := Block(tok); b {
		case BlockExtension, BlockRestriction, BlockSubstitution:
			out = append(out, b)
		default:
			return nil, fmt.Errorf("invalid block value %q", tok)
		}
	}
	return out, nil
}

// Final is one token of a final / finalDefault list.
type Final string

const (
	FinalAll         Final = "#all"
	FinalExtension   Final = "extension"
	FinalRestriction Final = "restriction"
	FinalList        Final = "list"
	FinalUnion       Final = "union"
)

func parseFinalList(s string) ([]Final, error) {
	if strings.TrimSpace(s) == string(FinalAll) {
		return []Final{FinalAll}, nil
	}
	var out []Final
	for _, tok := range strings.Fields(s) {
		switch f := Final(tok); f {
		case FinalExtension, FinalRestriction, FinalList, FinalUnion:
			out = append(out, f)
		default:
			return nil, fmt.Errorf("invalid final value %q", tok)
		}
	}
	return out, nil
}

// AttributeUse is the value space of the use attribute.
type AttributeUse string

const (
	OptionalUse   AttributeUse = "optional"
	RequiredUse   AttributeUse = "required"
	ProhibitedUse AttributeUse = "prohibited"
)

func parseAttributeUse(s string) (AttributeUse, error) {
	switch u := AttributeUse(s); u {
	case OptionalUse, RequiredUse, ProhibitedUse:
		return u, nil
	}
	return "", fmt.Errorf("invalid use value %q", s)
}

// ProcessContents is the value space of the processContents attribute on
// wildcards.
type ProcessContents string

const (
	ProcessLax    ProcessContents = "lax"
	ProcessSkip   ProcessContents = "skip"
	ProcessStrict ProcessContents = "strict"
)

func parseProcessContents(s string) (ProcessContents, error) {
	switch p := ProcessContents(s); p {
	case ProcessLax, ProcessSkip, ProcessStrict:
		return p, nil
	}
	return "", fmt.Errorf("invalid processContents value %q", s)
}

// OpenContentMode is the value space of the mode attribute on openContent
// and defaultOpenContent.
type OpenContentMode string

const (
	OpenContentNone       OpenContentMode = "none"
	OpenContentInterleave OpenContentMode = "interleave"
	OpenContentSuffix     OpenContentMode = "suffix"
)

func parseOpenContentMode(s string) (OpenContentMode, error) {
	switch m := OpenContentMode(s); m {
	case OpenContentNone, OpenContentInterleave, OpenContentSuffix:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode value %q", s)
}

// WhiteSpaceValue is the value space of the whiteSpace facet.
type WhiteSpaceValue string

const (
	WhiteSpacePreserve WhiteSpaceValue = "preserve"
	WhiteSpaceReplace  WhiteSpaceValue = "replace"
	WhiteSpaceCollapse WhiteSpaceValue = "collapse"
)

func parseWhiteSpaceValue(s string) (WhiteSpaceValue, error) {
	switch w := WhiteSpaceValue(s); w {
	case WhiteSpacePreserve, WhiteSpaceReplace, WhiteSpaceCollapse:
		return w, nil
	}
	return "", fmt.Errorf("invalid whiteSpace value %q", s)
}

// ExplicitTimezoneValue is the value space of the explicitTimezone facet.
type ExplicitTimezoneValue string

const (
	TimezoneOptional   ExplicitTimezoneValue = "optional"
	TimezoneRequired   ExplicitTimezoneValue = "required"
	TimezoneProhibited ExplicitTimezoneValue = "prohibited"
)

func parseExplicitTimezoneValue(s string) (ExplicitTimezoneValue, error) {
	switch t := ExplicitTimezoneValue(s); t {
	case TimezoneOptional, TimezoneRequired, TimezoneProhibited:
		return t, nil
	}
	return "", fmt.Errorf("invalid explicitTimezone value %q", s)
}

// parseBoolean parses an xs:boolean literal.
func parseBoolean(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", s)
}

// parseQNameList splits a whitespace-separated list of qualified names.
func parseQNameList(s string) []QName {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	out := make([]QName, len(fields))
	for i, f := range fields {
		out[i] = QName(f)
	}
	return out
}
