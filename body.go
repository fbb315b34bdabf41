package xsdtree

// Every container node keeps its children as one ordered list. The list
// element type is a sealed interface naming exactly the child kinds the
// grammar permits inside that container, so an impossible child cannot be
// represented. Accessors project the list on demand; nothing is indexed or
// cached at construction.

// SchemaChild is a direct child of the schema root.
type SchemaChild interface{ isSchemaChild() }

func (*Include) isSchemaChild()            {}
func (*Import) isSchemaChild()             {}
func (*Redefine) isSchemaChild()           {}
func (*Override) isSchemaChild()           {}
func (*Annotation) isSchemaChild()         {}
func (*DefaultOpenContent) isSchemaChild() {}
func (*SimpleType) isSchemaChild()         {}
func (*ComplexType) isSchemaChild()        {}
func (*Group) isSchemaChild()              {}
func (*AttributeGroup) isSchemaChild()     {}
func (*Element) isSchemaChild()            {}
func (*Attribute) isSchemaChild()          {}
func (*Notation) isSchemaChild()           {}

// RedefineChild is a direct child of a redefine.
type RedefineChild interface{ isRedefineChild() }

func (*Annotation) isRedefineChild()     {}
func (*SimpleType) isRedefineChild()     {}
func (*ComplexType) isRedefineChild()    {}
func (*Group) isRedefineChild()          {}
func (*AttributeGroup) isRedefineChild() {}

// OverrideChild is a direct child of an override.
type OverrideChild interface{ isOverrideChild() }

func (*Annotation) isOverrideChild()     {}
func (*SimpleType) isOverrideChild()     {}
func (*ComplexType) isOverrideChild()    {}
func (*Group) isOverrideChild()          {}
func (*AttributeGroup) isOverrideChild() {}
func (*Element) isOverrideChild()        {}
func (*Attribute) isOverrideChild()      {}
func (*Notation) isOverrideChild()       {}

// AttributeGroupChild is a direct child of an attributeGroup.
type AttributeGroupChild interface{ isAttributeGroupChild() }

func (*Annotation) isAttributeGroupChild()     {}
func (*Attribute) isAttributeGroupChild()      {}
func (*AttributeGroup) isAttributeGroupChild() {}
func (*AnyAttribute) isAttributeGroupChild()   {}

// AttributeChild is a direct child of an attribute declaration.
type AttributeChild interface{ isAttributeChild() }

func (*Annotation) isAttributeChild() {}
func (*SimpleType) isAttributeChild() {}

// OpenContentChild is a direct child of openContent or defaultOpenContent.
type OpenContentChild interface{ isOpenContentChild() }

func (*Annotation) isOpenContentChild() {}
func (*Any) isOpenContentChild()        {}

// SimpleTypeChild is a direct child of a simpleType.
type SimpleTypeChild interface{ isSimpleTypeChild() }

func (*Annotation) isSimpleTypeChild()  {}
func (*Restriction) isSimpleTypeChild() {}
func (*List) isSimpleTypeChild()        {}
func (*Union) isSimpleTypeChild()       {}

// UnionChild is a direct child of a union.
type UnionChild interface{ isUnionChild() }

func (*Annotation) isUnionChild() {}
func (*SimpleType) isUnionChild() {}

// ListChild is a direct child of a list.
type ListChild interface{ isListChild() }

func (*Annotation) isListChild() {}
func (*SimpleType) isListChild() {}

// RestrictionChild is a direct child of a restriction, in either a simple
// type or a complex content derivation.
type RestrictionChild interface{ isRestrictionChild() }

func (*Annotation) isRestrictionChild()       {}
func (*SimpleType) isRestrictionChild()       {}
func (*Length) isRestrictionChild()           {}
func (*MinLength) isRestrictionChild()        {}
func (*MaxLength) isRestrictionChild()        {}
func (*Pattern) isRestrictionChild()          {}
func (*Enumeration) isRestrictionChild()      {}
func (*WhiteSpace) isRestrictionChild()       {}
func (*MinInclusive) isRestrictionChild()     {}
func (*MaxInclusive) isRestrictionChild()     {}
func (*MinExclusive) isRestrictionChild()     {}
func (*MaxExclusive) isRestrictionChild()     {}
func (*TotalDigits) isRestrictionChild()      {}
func (*FractionDigits) isRestrictionChild()   {}
func (*Assertion) isRestrictionChild()        {}
func (*ExplicitTimezone) isRestrictionChild() {}
func (*Group) isRestrictionChild()            {}
func (*All) isRestrictionChild()              {}
func (*Choice) isRestrictionChild()           {}
func (*Sequence) isRestrictionChild()         {}
func (*Attribute) isRestrictionChild()        {}
func (*AttributeGroup) isRestrictionChild()   {}
func (*AnyAttribute) isRestrictionChild()     {}
func (*Assert) isRestrictionChild()           {}

// ComplexTypeChild is a direct child of a complexType.
type ComplexTypeChild interface{ isComplexTypeChild() }

func (*Annotation) isComplexTypeChild()     {}
func (*SimpleContent) isComplexTypeChild()  {}
func (*ComplexContent) isComplexTypeChild() {}
func (*OpenContent) isComplexTypeChild()    {}
func (*Group) isComplexTypeChild()          {}
func (*All) isComplexTypeChild()            {}
func (*Choice) isComplexTypeChild()         {}
func (*Sequence) isComplexTypeChild()       {}
func (*Attribute) isComplexTypeChild()      {}
func (*AttributeGroup) isComplexTypeChild() {}
func (*AnyAttribute) isComplexTypeChild()   {}
func (*Assert) isComplexTypeChild()         {}

// ContentChild is a direct child of simpleContent or complexContent.
type ContentChild interface{ isContentChild() }

func (*Annotation) isContentChild()  {}
func (*Restriction) isContentChild() {}
func (*Extension) isContentChild()   {}

// ExtensionChild is a direct child of an extension.
type ExtensionChild interface{ isExtensionChild() }

func (*Annotation) isExtensionChild()     {}
func (*OpenContent) isExtensionChild()    {}
func (*Group) isExtensionChild()          {}
func (*All) isExtensionChild()            {}
func (*Choice) isExtensionChild()         {}
func (*Sequence) isExtensionChild()       {}
func (*Attribute) isExtensionChild()      {}
func (*AttributeGroup) isExtensionChild() {}
func (*AnyAttribute) isExtensionChild()   {}
func (*Assert) isExtensionChild()         {}

// ParticleChild is a direct child of a sequence or choice.
type ParticleChild interface{ isParticleChild() }

func (*Annotation) isParticleChild() {}
func (*Element) isParticleChild()    {}
func (*Group) isParticleChild()      {}
func (*Choice) isParticleChild()     {}
func (*Sequence) isParticleChild()   {}
func (*Any) isParticleChild()        {}

// AllChild is a direct child of an all group.
type AllChild interface{ isAllChild() }

func (*Annotation) isAllChild() {}
func (*Element) isAllChild()    {}
func (*Any) isAllChild()        {}
func (*Group) isAllChild()      {}

// GroupChild is a direct child of a named or referenced group.
type GroupChild interface{ isGroupChild() }

func (*Annotation) isGroupChild() {}
func (*All) isGroupChild()        {}
func (*Choice) isGroupChild()     {}
func (*Sequence) isGroupChild()   {}

// ElementChild is a direct child of an element declaration.
type ElementChild interface{ isElementChild() }

func (*Annotation) isElementChild()  {}
func (*SimpleType) isElementChild()  {}
func (*ComplexType) isElementChild() {}
func (*Alternative) isElementChild() {}
func (*Unique) isElementChild()      {}
func (*Key) isElementChild()         {}
func (*Keyref) isElementChild()      {}

// ConstraintChild is a direct child of unique, key or keyref.
type ConstraintChild interface{ isConstraintChild() }

func (*Annotation) isConstraintChild() {}
func (*Selector) isConstraintChild()   {}
func (*Field) isConstraintChild()      {}

// AlternativeChild is a direct child of a type alternative.
type AlternativeChild interface{ isAlternativeChild() }

func (*Annotation) isAlternativeChild()  {}
func (*SimpleType) isAlternativeChild()  {}
func (*ComplexType) isAlternativeChild() {}

// AnnotationEntry is a direct child of an annotation.
type AnnotationEntry interface{ isAnnotationEntry() }

func (*AppInfo) isAnnotationEntry()       {}
func (*Documentation) isAnnotationEntry() {}

// one extracts the unique child of type T from a body. It returns nil both
// when no child matches and when more than one does; a duplicated 0..1 child
// reads as absent rather than picking a winner.
func one[T any, C any](body []C) *T {
	var match *T
	count := 0
	for _, child := range body {
		if v, ok := any(child).(*T); ok {
			match = v
			count++
		}
	}
	if count != 1 {
		return nil
	}
	return match
}

// collect extracts every child of type T from a body, preserving document
// order.
func collect[T any, C any](body []C) []*T {
	var out []*T
	for _, child := range body {
		if v, ok := any(child).(*T); ok {
			out = append(out, v)
		}
	}
	return out
}

// particles projects a body to its particle children, preserving order.
func particles[C any](body []C) []Particle {
	var out []Particle
	for _, child := range body {
		if p, ok := any(child).(Particle); ok {
			out = append(out, p)
		}
	}
	return out
}

// composition extracts the unique model group child, whichever of the four
// kinds it is. Same collapse rule as one: zero or several reads as nil.
func composition[C any](body []C) Composition {
	var match Composition
	count := 0
	for _, child := range body {
		if c, ok := any(child).(Composition); ok {
			match = c
			count++
		}
	}
	if count != 1 {
		return nil
	}
	return match
}
