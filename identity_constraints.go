package xsdtree

// IdentityConstraint is the unified view over the three constraint kinds an
// element declaration can carry.
type IdentityConstraint interface{ isIdentityConstraint() }

func (*Unique) isIdentityConstraint() {}
func (*Key) isIdentityConstraint()    {}
func (*Keyref) isIdentityConstraint() {}

// Constraints returns the element's identity constraints of every kind in
// document order.
func (e *Element) Constraints() []IdentityConstraint {
	var out []IdentityConstraint
	for _, child := range e.body {
		if c, ok := child.(IdentityConstraint); ok {
			out = append(out, c)
		}
	}
	return out
}

// Unique requires the selected fields to be unique within the selected node
// set.
type Unique struct {
	ID   ID
	Name NCName
	body []ConstraintChild
}

func (u *Unique) Annotation() *Annotation { return one[Annotation](u.body) }
func (u *Unique) Selector() *Selector     { return one[Selector](u.body) }
func (u *Unique) Fields() []*Field        { return collect[Field](u.body) }

// Key is a unique constraint whose fields must also be present.
type Key struct {
	ID   ID
	Name NCName
	body []ConstraintChild
}

func (k *Key) Annotation() *Annotation { return one[Annotation](k.body) }
func (k *Key) Selector() *Selector     { return one[Selector](k.body) }
func (k *Key) Fields() []*Field        { return collect[Field](k.body) }

// Keyref requires the selected fields to match a key or unique named by
// Refer. The reference stays a raw qualified name.
type Keyref struct {
	ID    ID
	Name  NCName
	Refer QName
	body  []ConstraintChild
}

func (k *Keyref) Annotation() *Annotation { return one[Annotation](k.body) }
func (k *Keyref) Selector() *Selector     { return one[Selector](k.body) }
func (k *Keyref) Fields() []*Field        { return collect[Field](k.body) }

// Selector holds the XPath restricting which nodes a constraint applies to.
// The expression is stored, never evaluated.
type Selector struct {
	ID                    ID
	XPath                 string
	XPathDefaultNamespace AnyURI
	annotation            *Annotation
}

func (s *Selector) Annotation() *Annotation { return s.annotation }

// Field holds one XPath selecting a constrained value.
type Field struct {
	ID                    ID
	XPath                 string
	XPathDefaultNamespace AnyURI
	annotation            *Annotation
}

func (f *Field) Annotation() *Annotation { return f.annotation }
