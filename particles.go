package xsdtree

import (
	"fmt"
	"strconv"
)

// Particle is a term that can occur in sequence or choice content: an
// element, a group reference, a nested model group or a wildcard. All groups
// are not particles themselves and never nest inside other model groups.
type Particle interface{ isParticle() }

func (*Element) isParticle()  {}
func (*Group) isParticle()    {}
func (*Choice) isParticle()   {}
func (*Sequence) isParticle() {}
func (*Any) isParticle()      {}

// Composition is the single content model a complex type or derivation step
// carries: one of all, choice, sequence or a group reference.
type Composition interface{ isComposition() }

func (*All) isComposition()      {}
func (*Choice) isComposition()   {}
func (*Sequence) isComposition() {}
func (*Group) isComposition()    {}

// MaxOccurs is a parsed maxOccurs attribute: either a bounded count or the
// unbounded keyword.
type MaxOccurs struct {
	Value     uint
	Unbounded bool
}

func (m MaxOccurs) String() string {
	if m.Unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(uint64(m.Value), 10)
}

func parseMaxOccurs(s string) (MaxOccurs, error) {
	if s == "unbounded" {
		return MaxOccurs{Unbounded: true}, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return MaxOccurs{}, fmt.Errorf("invalid maxOccurs value %q", s)
	}
	return MaxOccurs{Value: uint(n)}, nil
}

func parseMinOccurs(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid minOccurs value %q", s)
	}
	return uint(n), nil
}

// Element is an element declaration or reference, global or local. Occurrence
// attributes stay nil when not written; the grammar default for both is 1.
type Element struct {
	ID                ID
	Name              NCName
	Ref               QName
	Type              QName
	SubstitutionGroup []QName
	Default           string
	Fixed             string
	Nillable          *bool
	Abstract          *bool
	Final             []Final
	Block             []Block
	Form              FormChoice
	TargetNamespace   AnyURI
	MinOccurs         *uint
	MaxOccurs         *MaxOccurs
	body              []ElementChild
}

func (e *Element) Annotation() *Annotation   { return one[Annotation](e.body) }
func (e *Element) SimpleType() *SimpleType   { return one[SimpleType](e.body) }
func (e *Element) ComplexType() *ComplexType { return one[ComplexType](e.body) }

// Alternatives returns the element's type alternatives in document order.
func (e *Element) Alternatives() []*Alternative { return collect[Alternative](e.body) }

func (e *Element) Uniques() []*Unique { return collect[Unique](e.body) }
func (e *Element) Keys() []*Key       { return collect[Key](e.body) }
func (e *Element) Keyrefs() []*Keyref { return collect[Keyref](e.body) }

// Group is a named model group definition or a reference to one.
type Group struct {
	ID        ID
	Name      NCName
	Ref       QName
	MinOccurs *uint
	MaxOccurs *MaxOccurs
	body      []GroupChild
}

func (g *Group) Annotation() *Annotation { return one[Annotation](g.body) }
func (g *Group) All() *All               { return one[All](g.body) }
func (g *Group) Choice() *Choice         { return one[Choice](g.body) }
func (g *Group) Sequence() *Sequence     { return one[Sequence](g.body) }

// Composition returns whichever model group the definition carries.
func (g *Group) Composition() Composition { return composition(g.body) }

// Sequence is the sequence model group.
type Sequence struct {
	ID        ID
	MinOccurs *uint
	MaxOccurs *MaxOccurs
	body      []ParticleChild
}

func (s *Sequence) Annotation() *Annotation { return one[Annotation](s.body) }

// Items returns the sequence's particles in document order, skipping the
// annotation.
func (s *Sequence) Items() []Particle { return particles(s.body) }

// Choice is the choice model group.
type Choice struct {
	ID        ID
	MinOccurs *uint
	MaxOccurs *MaxOccurs
	body      []ParticleChild
}

func (c *Choice) Annotation() *Annotation { return one[Annotation](c.body) }
func (c *Choice) Items() []Particle       { return particles(c.body) }

// All is the all model group. Its children are restricted to elements,
// wildcards and group references.
type All struct {
	ID        ID
	MinOccurs *uint
	MaxOccurs *MaxOccurs
	body      []AllChild
}

func (a *All) Annotation() *Annotation { return one[Annotation](a.body) }
func (a *All) Items() []Particle       { return particles(a.body) }

// Alternative is a conditional type assignment on an element declaration.
// The test expression is stored, never evaluated.
type Alternative struct {
	ID                    ID
	Test                  string
	Type                  QName
	XPathDefaultNamespace AnyURI
	body                  []AlternativeChild
}

func (a *Alternative) Annotation() *Annotation   { return one[Annotation](a.body) }
func (a *Alternative) SimpleType() *SimpleType   { return one[SimpleType](a.body) }
func (a *Alternative) ComplexType() *ComplexType { return one[ComplexType](a.body) }
