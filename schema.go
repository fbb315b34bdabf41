// Package xsdtree models one XSD schema document as an immutable typed tree.
// Construction walks an xmldom document once and fails fast on anything the
// grammar does not permit; every accessor afterwards is a pure projection
// over the node's ordered child list, safe for concurrent readers.
package xsdtree

// XSDNamespace is the XML Schema namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// Schema is the document root.
type Schema struct {
	ID                    ID
	AttributeFormDefault  FormChoice
	ElementFormDefault    FormChoice
	BlockDefault          []Block
	FinalDefault          []Final
	TargetNamespace       AnyURI
	Version               Token
	DefaultAttributes     QName
	XPathDefaultNamespace AnyURI
	XMLLang               string
	body                  []SchemaChild
}

func (s *Schema) Annotations() []*Annotation { return collect[Annotation](s.body) }
func (s *Schema) Includes() []*Include       { return collect[Include](s.body) }
func (s *Schema) Imports() []*Import         { return collect[Import](s.body) }
func (s *Schema) Redefines() []*Redefine     { return collect[Redefine](s.body) }
func (s *Schema) Overrides() []*Override     { return collect[Override](s.body) }

func (s *Schema) DefaultOpenContents() []*DefaultOpenContent {
	return collect[DefaultOpenContent](s.body)
}

func (s *Schema) SimpleTypes() []*SimpleType         { return collect[SimpleType](s.body) }
func (s *Schema) ComplexTypes() []*ComplexType       { return collect[ComplexType](s.body) }
func (s *Schema) Groups() []*Group                   { return collect[Group](s.body) }
func (s *Schema) AttributeGroups() []*AttributeGroup { return collect[AttributeGroup](s.body) }
func (s *Schema) Elements() []*Element               { return collect[Element](s.body) }
func (s *Schema) Attributes() []*Attribute           { return collect[Attribute](s.body) }
func (s *Schema) Notations() []*Notation             { return collect[Notation](s.body) }

// Include pulls in declarations from another document of the same target
// namespace. The location is recorded, never resolved.
type Include struct {
	ID             ID
	SchemaLocation AnyURI
	annotation     *Annotation
}

func (i *Include) Annotation() *Annotation { return i.annotation }

// Import names a foreign namespace this schema refers to. Both attributes
// are optional; neither is resolved.
type Import struct {
	ID             ID
	Namespace      AnyURI
	SchemaLocation AnyURI
	annotation     *Annotation
}

func (i *Import) Annotation() *Annotation { return i.annotation }

// Redefine includes another document while replacing some of its
// definitions.
type Redefine struct {
	ID             ID
	SchemaLocation AnyURI
	body           []RedefineChild
}

func (r *Redefine) Annotations() []*Annotation   { return collect[Annotation](r.body) }
func (r *Redefine) SimpleTypes() []*SimpleType   { return collect[SimpleType](r.body) }
func (r *Redefine) ComplexTypes() []*ComplexType { return collect[ComplexType](r.body) }
func (r *Redefine) Groups() []*Group             { return collect[Group](r.body) }

func (r *Redefine) AttributeGroups() []*AttributeGroup {
	return collect[AttributeGroup](r.body)
}

// Override includes another document while overriding any of its top-level
// declarations, element and attribute declarations included.
type Override struct {
	ID             ID
	SchemaLocation AnyURI
	body           []OverrideChild
}

func (o *Override) Annotations() []*Annotation   { return collect[Annotation](o.body) }
func (o *Override) SimpleTypes() []*SimpleType   { return collect[SimpleType](o.body) }
func (o *Override) ComplexTypes() []*ComplexType { return collect[ComplexType](o.body) }
func (o *Override) Groups() []*Group             { return collect[Group](o.body) }
func (o *Override) Elements() []*Element         { return collect[Element](o.body) }
func (o *Override) Attributes() []*Attribute     { return collect[Attribute](o.body) }
func (o *Override) Notations() []*Notation       { return collect[Notation](o.body) }

func (o *Override) AttributeGroups() []*AttributeGroup {
	return collect[AttributeGroup](o.body)
}

// Notation declares a notation for attribute values of type NOTATION.
type Notation struct {
	ID         ID
	Name       NCName
	Public     Token
	System     AnyURI
	annotation *Annotation
}

func (n *Notation) Annotation() *Annotation { return n.annotation }

// DefaultOpenContent sets the schema-wide open content applied to complex
// types that carry none of their own.
type DefaultOpenContent struct {
	ID             ID
	AppliesToEmpty *bool
	Mode           OpenContentMode
	body           []OpenContentChild
}

func (d *DefaultOpenContent) Annotation() *Annotation { return one[Annotation](d.body) }
func (d *DefaultOpenContent) Any() *Any               { return one[Any](d.body) }

// OpenContent lets a complex type accept wildcard content interleaved with
// or after its declared content.
type OpenContent struct {
	ID   ID
	Mode OpenContentMode
	body []OpenContentChild
}

func (o *OpenContent) Annotation() *Annotation { return one[Annotation](o.body) }
func (o *OpenContent) Any() *Any               { return one[Any](o.body) }

// Attribute is an attribute declaration or use, global or local.
type Attribute struct {
	ID              ID
	Name            NCName
	Ref             QName
	Type            QName
	Use             AttributeUse
	Default         string
	Fixed           string
	Form            FormChoice
	TargetNamespace AnyURI
	Inheritable     *bool
	body            []AttributeChild
}

func (a *Attribute) Annotation() *Annotation { return one[Annotation](a.body) }
func (a *Attribute) SimpleType() *SimpleType { return one[SimpleType](a.body) }

// AttributeGroup is a named attribute group definition or a reference to
// one.
type AttributeGroup struct {
	ID   ID
	Name NCName
	Ref  QName
	body []AttributeGroupChild
}

func (g *AttributeGroup) Annotation() *Annotation     { return one[Annotation](g.body) }
func (g *AttributeGroup) Attributes() []*Attribute    { return collect[Attribute](g.body) }
func (g *AttributeGroup) AnyAttribute() *AnyAttribute { return one[AnyAttribute](g.body) }

func (g *AttributeGroup) AttributeGroups() []*AttributeGroup {
	return collect[AttributeGroup](g.body)
}

// Assert is a type-level assertion. The test expression is stored, never
// evaluated.
type Assert struct {
	ID                    ID
	Test                  string
	XPathDefaultNamespace AnyURI
	annotation            *Annotation
}

func (a *Assert) Annotation() *Annotation { return a.annotation }
