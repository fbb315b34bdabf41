package xsdtree

// Constraining facet nodes. Each facet element becomes its own node type;
// facets that share a value shape share a struct through embedding so the
// unified view can hand back one pointer per shape.

// Length is the length facet, and the shared shape of minLength and
// maxLength.
type Length struct {
	ID         ID
	Fixed      *bool
	Value      uint
	annotation *Annotation
}

func (l *Length) Annotation() *Annotation { return l.annotation }

// MinLength is the minLength facet.
type MinLength struct{ Length }

// MaxLength is the maxLength facet.
type MaxLength struct{ Length }

// Pattern is the pattern facet.
type Pattern struct {
	ID         ID
	Value      string
	annotation *Annotation
}

func (p *Pattern) Annotation() *Annotation { return p.annotation }

// Enumeration is the enumeration facet.
type Enumeration struct {
	ID         ID
	Value      string
	annotation *Annotation
}

func (e *Enumeration) Annotation() *Annotation { return e.annotation }

// WhiteSpace is the whiteSpace facet.
type WhiteSpace struct {
	ID         ID
	Fixed      *bool
	Value      WhiteSpaceValue
	annotation *Annotation
}

func (w *WhiteSpace) Annotation() *Annotation { return w.annotation }

// BoundaryFacet is the shared shape of the four range facets. The value is
// kept lexically; its datatype depends on the base type being restricted.
type BoundaryFacet struct {
	ID         ID
	Fixed      *bool
	Value      string
	annotation *Annotation
}

func (b *BoundaryFacet) Annotation() *Annotation { return b.annotation }

// MinInclusive is the minInclusive facet.
type MinInclusive struct{ BoundaryFacet }

// MaxInclusive is the maxInclusive facet.
type MaxInclusive struct{ BoundaryFacet }

// MinExclusive is the minExclusive facet.
type MinExclusive struct{ BoundaryFacet }

// MaxExclusive is the maxExclusive facet.
type MaxExclusive struct{ BoundaryFacet }

// Digits is the shared shape of totalDigits and fractionDigits.
type Digits struct {
	ID         ID
	Fixed      *bool
	Value      uint
	annotation *Annotation
}

func (d *Digits) Annotation() *Annotation { return d.annotation }

// TotalDigits is the totalDigits facet.
type TotalDigits struct{ Digits }

// FractionDigits is the fractionDigits facet.
type FractionDigits struct{ Digits }

// Assertion is the assertion facet. The XPath test is stored, never
// evaluated.
type Assertion struct {
	ID                    ID
	Test                  string
	XPathDefaultNamespace AnyURI
	annotation            *Annotation
}

func (a *Assertion) Annotation() *Annotation { return a.annotation }

// ExplicitTimezone is the explicitTimezone facet.
type ExplicitTimezone struct {
	ID         ID
	Fixed      *bool
	Value      ExplicitTimezoneValue
	annotation *Annotation
}

func (e *ExplicitTimezone) Annotation() *Annotation { return e.annotation }

// FacetKind names a facet in the unified view. Values match the element
// names.
type FacetKind string

const (
	FacetLength           FacetKind = "length"
	FacetMinLength        FacetKind = "minLength"
	FacetMaxLength        FacetKind = "maxLength"
	FacetPattern          FacetKind = "pattern"
	FacetEnumeration      FacetKind = "enumeration"
	FacetWhiteSpace       FacetKind = "whiteSpace"
	FacetMinInclusive     FacetKind = "minInclusive"
	FacetMaxInclusive     FacetKind = "maxInclusive"
	FacetMinExclusive     FacetKind = "minExclusive"
	FacetMaxExclusive     FacetKind = "maxExclusive"
	FacetTotalDigits      FacetKind = "totalDigits"
	FacetFractionDigits   FacetKind = "fractionDigits"
	FacetAssertion        FacetKind = "assertion"
	FacetExplicitTimezone FacetKind = "explicitTimezone"
)

// Facet is the unified read-time view over a restriction's facet children.
// Exactly one payload pointer is set, selected by Kind; facets sharing a
// value shape share a payload field.
type Facet struct {
	Kind             FacetKind
	Length           *Length
	Pattern          *Pattern
	Enumeration      *Enumeration
	WhiteSpace       *WhiteSpace
	Boundary         *BoundaryFacet
	Digits           *Digits
	Assertion        *Assertion
	ExplicitTimezone *ExplicitTimezone
}

// Facets projects the restriction body to its facet children in document
// order. Annotations, nested types, attribute uses, model groups and asserts
// are not facets and are skipped. The slice is rebuilt on every call.
func (r *Restriction) Facets() []Facet {
	var out []Facet
	for _, child := range r.body {
		switch c := child.(type) {
		case *Length:
			out = append(out, Facet{Kind: FacetLength, Length: c})
		case *MinLength:
			out = append(out, Facet{Kind: FacetMinLength, Length: &c.Length})
		case *MaxLength:
			out = append(out, Facet{Kind: FacetMaxLength, Length: &c.Length})
		case *Pattern:
			out = append(out, Facet{Kind: FacetPattern, Pattern: c})
		case *Enumeration:
			out = append(out, Facet{Kind: FacetEnumeration, Enumeration: c})
		case *WhiteSpace:
			out = append(out, Facet{Kind: FacetWhiteSpace, WhiteSpace: c})
		case *MinInclusive:
			out = append(out, Facet{Kind: FacetMinInclusive, Boundary: &c.BoundaryFacet})
		case *MaxInclusive:
			out = append(out, Facet{Kind: FacetMaxInclusive, Boundary: &c.BoundaryFacet})
		case *MinExclusive:
			out = append(out, Facet{Kind: FacetMinExclusive, Boundary: &c.BoundaryFacet})
		case *MaxExclusive:
			out = append(out, Facet{Kind: FacetMaxExclusive, Boundary: &c.BoundaryFacet})
		case *TotalDigits:
			out = append(out, Facet{Kind: FacetTotalDigits, Digits: &c.Digits})
		case *FractionDigits:
			out = append(out, Facet{Kind: FacetFractionDigits, Digits: &c.Digits})
		case *Assertion:
			out = append(out, Facet{Kind: FacetAssertion, Assertion: c})
		case *ExplicitTimezone:
			out = append(out, Facet{Kind: FacetExplicitTimezone, ExplicitTimezone: c})
		}
	}
	return out
}
