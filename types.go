package xsdtree

import "fmt"

// SimpleTypeContent is the content a simple type definition carries: one of
// restriction, list or union.
type SimpleTypeContent interface{ isSimpleTypeContent() }

func (*Restriction) isSimpleTypeContent() {}
func (*List) isSimpleTypeContent()        {}
func (*Union) isSimpleTypeContent()       {}

// TypeDerivation is the derivation step inside simpleContent or
// complexContent: restriction or extension.
type TypeDerivation interface{ isTypeDerivation() }

func (*Restriction) isTypeDerivation() {}
func (*Extension) isTypeDerivation()   {}

// SimpleType is a simple type definition, named or anonymous.
type SimpleType struct {
	ID    ID
	Name  NCName
	Final []Final
	body  []SimpleTypeChild
}

func (st *SimpleType) Annotation() *Annotation   { return one[Annotation](st.body) }
func (st *SimpleType) Restriction() *Restriction { return one[Restriction](st.body) }
func (st *SimpleType) List() *List               { return one[List](st.body) }
func (st *SimpleType) Union() *Union             { return one[Union](st.body) }

// Content returns the first content variant in the body. A simple type with
// no restriction, list or union child has nothing to derive a value space
// from, so that is an error rather than an absence.
func (st *SimpleType) Content() (SimpleTypeContent, error) {
	for _, child := range st.body {
		if c, ok := child.(SimpleTypeContent); ok {
			return c, nil
		}
	}
	if st.Name != "" {
		return nil, fmt.Errorf("simpleType %q: %w", st.Name, ErrNoContent)
	}
	return nil, fmt.Errorf("simpleType: %w", ErrNoContent)
}

// List is a list type derivation. The item type is either referenced by name
// or given inline.
type List struct {
	ID       ID
	ItemType QName
	body     []ListChild
}

func (l *List) Annotation() *Annotation { return one[Annotation](l.body) }
func (l *List) SimpleType() *SimpleType { return one[SimpleType](l.body) }

// Union is a union type derivation. Member types come from the memberTypes
// attribute, inline definitions, or both.
type Union struct {
	ID          ID
	MemberTypes []QName
	body        []UnionChild
}

func (u *Union) Annotation() *Annotation { return one[Annotation](u.body) }

// SimpleTypes returns the inline member type definitions in document order.
func (u *Union) SimpleTypes() []*SimpleType { return collect[SimpleType](u.body) }

// Restriction is a restriction derivation. The same node serves simple
// types, simpleContent and complexContent; which children actually appear
// depends on the context it was parsed in.
type Restriction struct {
	ID   ID
	Base QName
	body []RestrictionChild
}

func (r *Restriction) Annotation() *Annotation { return one[Annotation](r.body) }
func (r *Restriction) SimpleType() *SimpleType { return one[SimpleType](r.body) }
func (r *Restriction) Group() *Group           { return one[Group](r.body) }
func (r *Restriction) All() *All               { return one[All](r.body) }
func (r *Restriction) Choice() *Choice         { return one[Choice](r.body) }
func (r *Restriction) Sequence() *Sequence     { return one[Sequence](r.body) }

func (r *Restriction) Composition() Composition { return composition(r.body) }

func (r *Restriction) Attributes() []*Attribute           { return collect[Attribute](r.body) }
func (r *Restriction) AttributeGroups() []*AttributeGroup { return collect[AttributeGroup](r.body) }
func (r *Restriction) AnyAttribute() *AnyAttribute        { return one[AnyAttribute](r.body) }
func (r *Restriction) Asserts() []*Assert                 { return collect[Assert](r.body) }

// Extension is an extension derivation.
type Extension struct {
	ID   ID
	Base QName
	body []ExtensionChild
}

func (x *Extension) Annotation() *Annotation   { return one[Annotation](x.body) }
func (x *Extension) OpenContent() *OpenContent { return one[OpenContent](x.body) }
func (x *Extension) Group() *Group             { return one[Group](x.body) }
func (x *Extension) All() *All                 { return one[All](x.body) }
func (x *Extension) Choice() *Choice           { return one[Choice](x.body) }
func (x *Extension) Sequence() *Sequence       { return one[Sequence](x.body) }

func (x *Extension) Composition() Composition { return composition(x.body) }

func (x *Extension) Attributes() []*Attribute           { return collect[Attribute](x.body) }
func (x *Extension) AttributeGroups() []*AttributeGroup { return collect[AttributeGroup](x.body) }
func (x *Extension) AnyAttribute() *AnyAttribute        { return one[AnyAttribute](x.body) }
func (x *Extension) Asserts() []*Assert                 { return collect[Assert](x.body) }

// SimpleContent marks a complex type whose content is character data derived
// from a simple type.
type SimpleContent struct {
	ID   ID
	body []ContentChild
}

func (sc *SimpleContent) Annotation() *Annotation   { return one[Annotation](sc.body) }
func (sc *SimpleContent) Restriction() *Restriction { return one[Restriction](sc.body) }
func (sc *SimpleContent) Extension() *Extension     { return one[Extension](sc.body) }

// Derivation returns the first derivation step in the body, mirroring
// SimpleType.Content.
func (sc *SimpleContent) Derivation() (TypeDerivation, error) {
	for _, child := range sc.body {
		if d, ok := child.(TypeDerivation); ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("simpleContent: %w", ErrNoContent)
}

// ComplexContent marks a complex type derived from another complex type.
type ComplexContent struct {
	ID    ID
	Mixed *bool
	body  []ContentChild
}

func (cc *ComplexContent) Annotation() *Annotation   { return one[Annotation](cc.body) }
func (cc *ComplexContent) Restriction() *Restriction { return one[Restriction](cc.body) }
func (cc *ComplexContent) Extension() *Extension     { return one[Extension](cc.body) }

func (cc *ComplexContent) Derivation() (TypeDerivation, error) {
	for _, child := range cc.body {
		if d, ok := child.(TypeDerivation); ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("complexContent: %w", ErrNoContent)
}

// ComplexType is a complex type definition, named or anonymous.
type ComplexType struct {
	ID                     ID
	Name                   NCName
	Mixed                  *bool
	Abstract               *bool
	Final                  []Final
	Block                  []Block
	DefaultAttributesApply *bool
	body                   []ComplexTypeChild
}

func (ct *ComplexType) Annotation() *Annotation         { return one[Annotation](ct.body) }
func (ct *ComplexType) SimpleContent() *SimpleContent   { return one[SimpleContent](ct.body) }
func (ct *ComplexType) ComplexContent() *ComplexContent { return one[ComplexContent](ct.body) }
func (ct *ComplexType) OpenContent() *OpenContent       { return one[OpenContent](ct.body) }
func (ct *ComplexType) Group() *Group                   { return one[Group](ct.body) }
func (ct *ComplexType) All() *All                       { return one[All](ct.body) }
func (ct *ComplexType) Choice() *Choice                 { return one[Choice](ct.body) }
func (ct *ComplexType) Sequence() *Sequence             { return one[Sequence](ct.body) }

// Composition returns the type's own content model, whichever kind it is.
// Types using simpleContent or complexContent have none.
func (ct *ComplexType) Composition() Composition { return composition(ct.body) }

func (ct *ComplexType) Attributes() []*Attribute           { return collect[Attribute](ct.body) }
func (ct *ComplexType) AttributeGroups() []*AttributeGroup { return collect[AttributeGroup](ct.body) }
func (ct *ComplexType) AnyAttribute() *AnyAttribute        { return one[AnyAttribute](ct.body) }
func (ct *ComplexType) Asserts() []*Assert                 { return collect[Assert](ct.body) }
