package xsdtree

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/agentflare-ai/go-xmldom"
)

// One pass over the DOM, one decode function per element kind. Each function
// rejects unknown plain attributes and any child element its container does
// not permit, so a bad document never yields a partial tree.

func attrValue(elem xmldom.Element, name string) string {
	return string(elem.GetAttribute(xmldom.DOMString(name)))
}

func xmlLangValue(elem xmldom.Element) string {
	return string(elem.GetAttributeNS("http://www.w3.org/XML/1998/namespace", "lang"))
}

func isXSD(elem xmldom.Element) bool {
	return string(elem.NamespaceURI()) == XSDNamespace
}

func localName(elem xmldom.Element) string {
	return string(elem.LocalName())
}

func childElements(elem xmldom.Element) []xmldom.Element {
	children := elem.Children()
	out := make([]xmldom.Element, 0, children.Length())
	for i := uint(0); i < children.Length(); i++ {
		if child := children.Item(i); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// checkAttributes rejects plain attributes outside the allowed set.
// Namespace declarations and prefixed attributes (xml:*, foreign
// vocabularies) always pass.
func checkAttributes(elem xmldom.Element, allowed ...string) error {
	attrs := elem.Attributes()
	for i := uint(0); i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		if attr == nil {
			continue
		}
		name := string(attr.NodeName())
		if name == "xmlns" || string(attr.NamespaceURI()) != "" {
			continue
		}
		if !slices.Contains(allowed, name) {
			return &ParseError{
				Tag:       localName(elem),
				Attribute: name,
				Message:   "unexpected attribute",
			}
		}
	}
	return nil
}

func attrError(elem xmldom.Element, name string, err error) error {
	return &ParseError{
		Tag:       localName(elem),
		Attribute: name,
		Message:   err.Error(),
	}
}

func unexpectedChild(parent, child xmldom.Element) error {
	return &ParseError{
		Tag:     localName(parent),
		Message: fmt.Sprintf("unexpected child element %q", localName(child)),
	}
}

func requiredAttr(elem xmldom.Element, name string) (string, error) {
	v := attrValue(elem, name)
	if v == "" {
		return "", &ParseError{
			Tag:       localName(elem),
			Attribute: name,
			Message:   "missing required attribute",
		}
	}
	return v, nil
}

func boolAttr(elem xmldom.Element, name string) (*bool, error) {
	v := attrValue(elem, name)
	if v == "" {
		return nil, nil
	}
	b, err := parseBoolean(v)
	if err != nil {
		return nil, attrError(elem, name, err)
	}
	return &b, nil
}

func uintAttr(elem xmldom.Element, name string) (uint, error) {
	v, err := requiredAttr(elem, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, attrError(elem, name, fmt.Errorf("invalid value %q", v))
	}
	return uint(n), nil
}

func occursAttrs(elem xmldom.Element) (*uint, *MaxOccurs, error) {
	var min *uint
	if v := attrValue(elem, "minOccurs"); v != "" {
		n, err := parseMinOccurs(v)
		if err != nil {
			return nil, nil, attrError(elem, "minOccurs", err)
		}
		min = &n
	}
	var max *MaxOccurs
	if v := attrValue(elem, "maxOccurs"); v != "" {
		m, err := parseMaxOccurs(v)
		if err != nil {
			return nil, nil, attrError(elem, "maxOccurs", err)
		}
		max = &m
	}
	return min, max, nil
}

// annotationOnly decodes the content of nodes whose grammar admits at most
// one annotation child and nothing else.
func annotationOnly(elem xmldom.Element) (*Annotation, error) {
	var ann *Annotation
	for _, child := range childElements(elem) {
		if !isXSD(child) || localName(child) != "annotation" || ann != nil {
			return nil, unexpectedChild(elem, child)
		}
		a, err := decodeAnnotation(child)
		if err != nil {
			return nil, err
		}
		ann = a
	}
	return ann, nil
}

func decodeSchema(root xmldom.Element) (*Schema, error) {
	if err := checkAttributes(root, "id", "attributeFormDefault",
		"elementFormDefault", "blockDefault", "finalDefault",
		"targetNamespace", "version", "defaultAttributes",
		"xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	tns, err := requiredAttr(root, "targetNamespace")
	if err != nil {
		return nil, err
	}
	schema := &Schema{
		ID:                    ID(attrValue(root, "id")),
		TargetNamespace:       AnyURI(tns),
		Version:               Token(attrValue(root, "version")),
		DefaultAttributes:     QName(attrValue(root, "defaultAttributes")),
		XPathDefaultNamespace: AnyURI(attrValue(root, "xpathDefaultNamespace")),
		XMLLang:               xmlLangValue(root),
	}
	if v := attrValue(root, "attributeFormDefault"); v != "" {
		if schema.AttributeFormDefault, err = parseFormChoice(v); err != nil {
			return nil, attrError(root, "attributeFormDefault", err)
		}
	}
	if v := attrValue(root, "elementFormDefault"); v != "" {
		if schema.ElementFormDefault, err = parseFormChoice(v); err != nil {
			return nil, attrError(root, "elementFormDefault", err)
		}
	}
	if v := attrValue(root, "blockDefault"); v != "" {
		if schema.BlockDefault, err = parseBlockList(v); err != nil {
			return nil, attrError(root, "blockDefault", err)
		}
	}
	if v := attrValue(root, "finalDefault"); v != "" {
		if schema.FinalDefault, err = parseFinalList(v); err != nil {
			return nil, attrError(root, "finalDefault", err)
		}
	}
	for _, child := range childElements(root) {
		if !isXSD(child) {
			return nil, unexpectedChild(root, child)
		}
		var node SchemaChild
		var err error
		switch localName(child) {
		case "include":
			node, err = decodeInclude(child)
		case "import":
			node, err = decodeImport(child)
		case "redefine":
			node, err = decodeRedefine(child)
		case "override":
			node, err = decodeOverride(child)
		case "annotation":
			node, err = decodeAnnotation(child)
		case "defaultOpenContent":
			node, err = decodeDefaultOpenContent(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "complexType":
			node, err = decodeComplexType(child)
		case "group":
			node, err = decodeGroup(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "element":
			node, err = decodeElement(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "notation":
			node, err = decodeNotation(child)
		default:
			return nil, unexpectedChild(root, child)
		}
		if err != nil {
			return nil, err
		}
		schema.body = append(schema.body, node)
	}
	return schema, nil
}

func decodeInclude(elem xmldom.Element) (*Include, error) {
	if err := checkAttributes(elem, "id", "schemaLocation"); err != nil {
		return nil, err
	}
	loc, err := requiredAttr(elem, "schemaLocation")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Include{
		ID:             ID(attrValue(elem, "id")),
		SchemaLocation: AnyURI(loc),
		annotation:     ann,
	}, nil
}

func decodeImport(elem xmldom.Element) (*Import, error) {
	if err := checkAttributes(elem, "id", "namespace", "schemaLocation"); err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Import{
		ID:             ID(attrValue(elem, "id")),
		Namespace:      AnyURI(attrValue(elem, "namespace")),
		SchemaLocation: AnyURI(attrValue(elem, "schemaLocation")),
		annotation:     ann,
	}, nil
}

func decodeRedefine(elem xmldom.Element) (*Redefine, error) {
	if err := checkAttributes(elem, "id", "schemaLocation"); err != nil {
		return nil, err
	}
	loc, err := requiredAttr(elem, "schemaLocation")
	if err != nil {
		return nil, err
	}
	r := &Redefine{
		ID:             ID(attrValue(elem, "id")),
		SchemaLocation: AnyURI(loc),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node RedefineChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "complexType":
			node, err = decodeComplexType(child)
		case "group":
			node, err = decodeGroup(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		r.body = append(r.body, node)
	}
	return r, nil
}

func decodeOverride(elem xmldom.Element) (*Override, error) {
	if err := checkAttributes(elem, "id", "schemaLocation"); err != nil {
		return nil, err
	}
	loc, err := requiredAttr(elem, "schemaLocation")
	if err != nil {
		return nil, err
	}
	o := &Override{
		ID:             ID(attrValue(elem, "id")),
		SchemaLocation: AnyURI(loc),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node OverrideChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "complexType":
			node, err = decodeComplexType(child)
		case "group":
			node, err = decodeGroup(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "element":
			node, err = decodeElement(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "notation":
			node, err = decodeNotation(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		o.body = append(o.body, node)
	}
	return o, nil
}

func decodeNotation(elem xmldom.Element) (*Notation, error) {
	if err := checkAttributes(elem, "id", "name", "public", "system"); err != nil {
		return nil, err
	}
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return nil, err
	}
	public, err := requiredAttr(elem, "public")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Notation{
		ID:         ID(attrValue(elem, "id")),
		Name:       NCName(name),
		Public:     Token(public),
		System:     AnyURI(attrValue(elem, "system")),
		annotation: ann,
	}, nil
}

func decodeAnnotation(elem xmldom.Element) (*Annotation, error) {
	if err := checkAttributes(elem, "id", "namespace"); err != nil {
		return nil, err
	}
	ann := &Annotation{
		ID:        ID(attrValue(elem, "id")),
		Namespace: AnyURI(attrValue(elem, "namespace")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		switch localName(child) {
		case "appinfo":
			if err := checkAttributes(child, "source"); err != nil {
				return nil, err
			}
			ann.body = append(ann.body, &AppInfo{
				Source:  AnyURI(attrValue(child, "source")),
				Content: string(child.TextContent()),
			})
		case "documentation":
			if err := checkAttributes(child, "source"); err != nil {
				return nil, err
			}
			ann.body = append(ann.body, &Documentation{
				Source:  AnyURI(attrValue(child, "source")),
				XMLLang: xmlLangValue(child),
				Content: string(child.TextContent()),
			})
		default:
			return nil, unexpectedChild(elem, child)
		}
	}
	return ann, nil
}

func decodeDefaultOpenContent(elem xmldom.Element) (*DefaultOpenContent, error) {
	if err := checkAttributes(elem, "id", "appliesToEmpty", "mode"); err != nil {
		return nil, err
	}
	d := &DefaultOpenContent{ID: ID(attrValue(elem, "id"))}
	var err error
	if d.AppliesToEmpty, err = boolAttr(elem, "appliesToEmpty"); err != nil {
		return nil, err
	}
	if v := attrValue(elem, "mode"); v != "" {
		if d.Mode, err = parseOpenContentMode(v); err != nil {
			return nil, attrError(elem, "mode", err)
		}
	}
	if d.body, err = decodeOpenContentBody(elem); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeOpenContent(elem xmldom.Element) (*OpenContent, error) {
	if err := checkAttributes(elem, "id", "mode"); err != nil {
		return nil, err
	}
	o := &OpenContent{ID: ID(attrValue(elem, "id"))}
	var err error
	if v := attrValue(elem, "mode"); v != "" {
		if o.Mode, err = parseOpenContentMode(v); err != nil {
			return nil, attrError(elem, "mode", err)
		}
	}
	if o.body, err = decodeOpenContentBody(elem); err != nil {
		return nil, err
	}
	return o, nil
}

func decodeOpenContentBody(elem xmldom.Element) ([]OpenContentChild, error) {
	var body []OpenContentChild
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node OpenContentChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "any":
			node, err = decodeAny(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	return body, nil
}

func decodeSimpleType(elem xmldom.Element) (*SimpleType, error) {
	if err := checkAttributes(elem, "id", "final", "name"); err != nil {
		return nil, err
	}
	st := &SimpleType{
		ID:   ID(attrValue(elem, "id")),
		Name: NCName(attrValue(elem, "name")),
	}
	var err error
	if v := attrValue(elem, "final"); v != "" {
		if st.Final, err = parseFinalList(v); err != nil {
			return nil, attrError(elem, "final", err)
		}
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node SimpleTypeChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "restriction":
			node, err = decodeRestriction(child)
		case "list":
			node, err = decodeList(child)
		case "union":
			node, err = decodeUnion(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		st.body = append(st.body, node)
	}
	return st, nil
}

func decodeList(elem xmldom.Element) (*List, error) {
	if err := checkAttributes(elem, "id", "itemType"); err != nil {
		return nil, err
	}
	l := &List{
		ID:       ID(attrValue(elem, "id")),
		ItemType: QName(attrValue(elem, "itemType")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ListChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		l.body = append(l.body, node)
	}
	return l, nil
}

func decodeUnion(elem xmldom.Element) (*Union, error) {
	if err := checkAttributes(elem, "id", "memberTypes"); err != nil {
		return nil, err
	}
	u := &Union{
		ID:          ID(attrValue(elem, "id")),
		MemberTypes: parseQNameList(attrValue(elem, "memberTypes")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node UnionChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		u.body = append(u.body, node)
	}
	return u, nil
}

func decodeRestriction(elem xmldom.Element) (*Restriction, error) {
	if err := checkAttributes(elem, "id", "base"); err != nil {
		return nil, err
	}
	r := &Restriction{
		ID:   ID(attrValue(elem, "id")),
		Base: QName(attrValue(elem, "base")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node RestrictionChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "length":
			node, err = decodeLength(child)
		case "minLength":
			node, err = decodeMinLength(child)
		case "maxLength":
			node, err = decodeMaxLength(child)
		case "pattern":
			node, err = decodePattern(child)
		case "enumeration":
			node, err = decodeEnumeration(child)
		case "whiteSpace":
			node, err = decodeWhiteSpace(child)
		case "minInclusive":
			node, err = decodeMinInclusive(child)
		case "maxInclusive":
			node, err = decodeMaxInclusive(child)
		case "minExclusive":
			node, err = decodeMinExclusive(child)
		case "maxExclusive":
			node, err = decodeMaxExclusive(child)
		case "totalDigits":
			node, err = decodeTotalDigits(child)
		case "fractionDigits":
			node, err = decodeFractionDigits(child)
		case "assertion":
			node, err = decodeAssertion(child)
		case "explicitTimezone":
			node, err = decodeExplicitTimezone(child)
		case "group":
			node, err = decodeGroup(child)
		case "all":
			node, err = decodeAll(child)
		case "choice":
			node, err = decodeChoice(child)
		case "sequence":
			node, err = decodeSequence(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "anyAttribute":
			node, err = decodeAnyAttribute(child)
		case "assert":
			node, err = decodeAssert(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		r.body = append(r.body, node)
	}
	return r, nil
}

func decodeExtension(elem xmldom.Element) (*Extension, error) {
	if err := checkAttributes(elem, "id", "base"); err != nil {
		return nil, err
	}
	base, err := requiredAttr(elem, "base")
	if err != nil {
		return nil, err
	}
	x := &Extension{
		ID:   ID(attrValue(elem, "id")),
		Base: QName(base),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ExtensionChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "openContent":
			node, err = decodeOpenContent(child)
		case "group":
			node, err = decodeGroup(child)
		case "all":
			node, err = decodeAll(child)
		case "choice":
			node, err = decodeChoice(child)
		case "sequence":
			node, err = decodeSequence(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "anyAttribute":
			node, err = decodeAnyAttribute(child)
		case "assert":
			node, err = decodeAssert(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		x.body = append(x.body, node)
	}
	return x, nil
}

func decodeSimpleContent(elem xmldom.Element) (*SimpleContent, error) {
	if err := checkAttributes(elem, "id"); err != nil {
		return nil, err
	}
	sc := &SimpleContent{ID: ID(attrValue(elem, "id"))}
	var err error
	if sc.body, err = decodeContentBody(elem); err != nil {
		return nil, err
	}
	return sc, nil
}

func decodeComplexContent(elem xmldom.Element) (*ComplexContent, error) {
	if err := checkAttributes(elem, "id", "mixed"); err != nil {
		return nil, err
	}
	cc := &ComplexContent{ID: ID(attrValue(elem, "id"))}
	var err error
	if cc.Mixed, err = boolAttr(elem, "mixed"); err != nil {
		return nil, err
	}
	if cc.body, err = decodeContentBody(elem); err != nil {
		return nil, err
	}
	return cc, nil
}

func decodeContentBody(elem xmldom.Element) ([]ContentChild, error) {
	var body []ContentChild
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ContentChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "restriction":
			node, err = decodeRestriction(child)
		case "extension":
			node, err = decodeExtension(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	return body, nil
}

func decodeComplexType(elem xmldom.Element) (*ComplexType, error) {
	if err := checkAttributes(elem, "id", "name", "mixed", "abstract",
		"final", "block", "defaultAttributesApply"); err != nil {
		return nil, err
	}
	ct := &ComplexType{
		ID:   ID(attrValue(elem, "id")),
		Name: NCName(attrValue(elem, "name")),
	}
	var err error
	if ct.Mixed, err = boolAttr(elem, "mixed"); err != nil {
		return nil, err
	}
	if ct.Abstract, err = boolAttr(elem, "abstract"); err != nil {
		return nil, err
	}
	if ct.DefaultAttributesApply, err = boolAttr(elem, "defaultAttributesApply"); err != nil {
		return nil, err
	}
	if v := attrValue(elem, "final"); v != "" {
		if ct.Final, err = parseFinalList(v); err != nil {
			return nil, attrError(elem, "final", err)
		}
	}
	if v := attrValue(elem, "block"); v != "" {
		if ct.Block, err = parseBlockList(v); err != nil {
			return nil, attrError(elem, "block", err)
		}
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ComplexTypeChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleContent":
			node, err = decodeSimpleContent(child)
		case "complexContent":
			node, err = decodeComplexContent(child)
		case "openContent":
			node, err = decodeOpenContent(child)
		case "group":
			node, err = decodeGroup(child)
		case "all":
			node, err = decodeAll(child)
		case "choice":
			node, err = decodeChoice(child)
		case "sequence":
			node, err = decodeSequence(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "anyAttribute":
			node, err = decodeAnyAttribute(child)
		case "assert":
			node, err = decodeAssert(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		ct.body = append(ct.body, node)
	}
	return ct, nil
}

func decodeElement(elem xmldom.Element) (*Element, error) {
	if err := checkAttributes(elem, "id", "name", "ref", "type",
		"substitutionGroup", "default", "fixed", "nillable", "abstract",
		"final", "block", "form", "targetNamespace", "minOccurs",
		"maxOccurs"); err != nil {
		return nil, err
	}
	e := &Element{
		ID:                ID(attrValue(elem, "id")),
		Name:              NCName(attrValue(elem, "name")),
		Ref:               QName(attrValue(elem, "ref")),
		Type:              QName(attrValue(elem, "type")),
		SubstitutionGroup: parseQNameList(attrValue(elem, "substitutionGroup")),
		Default:           attrValue(elem, "default"),
		Fixed:             attrValue(elem, "fixed"),
		TargetNamespace:   AnyURI(attrValue(elem, "targetNamespace")),
	}
	var err error
	if e.Nillable, err = boolAttr(elem, "nillable"); err != nil {
		return nil, err
	}
	if e.Abstract, err = boolAttr(elem, "abstract"); err != nil {
		return nil, err
	}
	if v := attrValue(elem, "final"); v != "" {
		if e.Final, err = parseFinalList(v); err != nil {
			return nil, attrError(elem, "final", err)
		}
	}
	if v := attrValue(elem, "block"); v != "" {
		if e.Block, err = parseBlockList(v); err != nil {
			return nil, attrError(elem, "block", err)
		}
	}
	if v := attrValue(elem, "form"); v != "" {
		if e.Form, err = parseFormChoice(v); err != nil {
			return nil, attrError(elem, "form", err)
		}
	}
	if e.MinOccurs, e.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ElementChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "complexType":
			node, err = decodeComplexType(child)
		case "alternative":
			node, err = decodeAlternative(child)
		case "unique":
			node, err = decodeUnique(child)
		case "key":
			node, err = decodeKey(child)
		case "keyref":
			node, err = decodeKeyref(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		e.body = append(e.body, node)
	}
	return e, nil
}

func decodeAttribute(elem xmldom.Element) (*Attribute, error) {
	if err := checkAttributes(elem, "id", "name", "ref", "type", "use",
		"default", "fixed", "form", "targetNamespace", "inheritable"); err != nil {
		return nil, err
	}
	a := &Attribute{
		ID:              ID(attrValue(elem, "id")),
		Name:            NCName(attrValue(elem, "name")),
		Ref:             QName(attrValue(elem, "ref")),
		Type:            QName(attrValue(elem, "type")),
		Default:         attrValue(elem, "default"),
		Fixed:           attrValue(elem, "fixed"),
		TargetNamespace: AnyURI(attrValue(elem, "targetNamespace")),
	}
	var err error
	if v := attrValue(elem, "use"); v != "" {
		if a.Use, err = parseAttributeUse(v); err != nil {
			return nil, attrError(elem, "use", err)
		}
	}
	if v := attrValue(elem, "form"); v != "" {
		if a.Form, err = parseFormChoice(v); err != nil {
			return nil, attrError(elem, "form", err)
		}
	}
	if a.Inheritable, err = boolAttr(elem, "inheritable"); err != nil {
		return nil, err
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node AttributeChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		a.body = append(a.body, node)
	}
	return a, nil
}

func decodeAttributeGroup(elem xmldom.Element) (*AttributeGroup, error) {
	if err := checkAttributes(elem, "id", "name", "ref"); err != nil {
		return nil, err
	}
	g := &AttributeGroup{
		ID:   ID(attrValue(elem, "id")),
		Name: NCName(attrValue(elem, "name")),
		Ref:  QName(attrValue(elem, "ref")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node AttributeGroupChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "attribute":
			node, err = decodeAttribute(child)
		case "attributeGroup":
			node, err = decodeAttributeGroup(child)
		case "anyAttribute":
			node, err = decodeAnyAttribute(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		g.body = append(g.body, node)
	}
	return g, nil
}

func decodeGroup(elem xmldom.Element) (*Group, error) {
	if err := checkAttributes(elem, "id", "name", "ref", "minOccurs", "maxOccurs"); err != nil {
		return nil, err
	}
	g := &Group{
		ID:   ID(attrValue(elem, "id")),
		Name: NCName(attrValue(elem, "name")),
		Ref:  QName(attrValue(elem, "ref")),
	}
	var err error
	if g.MinOccurs, g.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node GroupChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "all":
			node, err = decodeAll(child)
		case "choice":
			node, err = decodeChoice(child)
		case "sequence":
			node, err = decodeSequence(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		g.body = append(g.body, node)
	}
	return g, nil
}

func decodeSequence(elem xmldom.Element) (*Sequence, error) {
	if err := checkAttributes(elem, "id", "minOccurs", "maxOccurs"); err != nil {
		return nil, err
	}
	s := &Sequence{ID: ID(attrValue(elem, "id"))}
	var err error
	if s.MinOccurs, s.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	if s.body, err = decodeParticleBody(elem); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeChoice(elem xmldom.Element) (*Choice, error) {
	if err := checkAttributes(elem, "id", "minOccurs", "maxOccurs"); err != nil {
		return nil, err
	}
	c := &Choice{ID: ID(attrValue(elem, "id"))}
	var err error
	if c.MinOccurs, c.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	if c.body, err = decodeParticleBody(elem); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeParticleBody(elem xmldom.Element) ([]ParticleChild, error) {
	var body []ParticleChild
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ParticleChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "element":
			node, err = decodeElement(child)
		case "group":
			node, err = decodeGroup(child)
		case "choice":
			node, err = decodeChoice(child)
		case "sequence":
			node, err = decodeSequence(child)
		case "any":
			node, err = decodeAny(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	return body, nil
}

func decodeAll(elem xmldom.Element) (*All, error) {
	if err := checkAttributes(elem, "id", "minOccurs", "maxOccurs"); err != nil {
		return nil, err
	}
	a := &All{ID: ID(attrValue(elem, "id"))}
	var err error
	if a.MinOccurs, a.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node AllChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "element":
			node, err = decodeElement(child)
		case "any":
			node, err = decodeAny(child)
		case "group":
			node, err = decodeGroup(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		a.body = append(a.body, node)
	}
	return a, nil
}

func decodeAny(elem xmldom.Element) (*Any, error) {
	if err := checkAttributes(elem, "id", "namespace", "notNamespace",
		"notQName", "processContents", "minOccurs", "maxOccurs"); err != nil {
		return nil, err
	}
	a := &Any{
		ID:           ID(attrValue(elem, "id")),
		Namespace:    attrValue(elem, "namespace"),
		NotNamespace: attrValue(elem, "notNamespace"),
		NotQName:     attrValue(elem, "notQName"),
	}
	var err error
	if v := attrValue(elem, "processContents"); v != "" {
		if a.ProcessContents, err = parseProcessContents(v); err != nil {
			return nil, attrError(elem, "processContents", err)
		}
	}
	if a.MinOccurs, a.MaxOccurs, err = occursAttrs(elem); err != nil {
		return nil, err
	}
	if a.annotation, err = annotationOnly(elem); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeAnyAttribute(elem xmldom.Element) (*AnyAttribute, error) {
	if err := checkAttributes(elem, "id", "namespace", "notNamespace",
		"notQName", "processContents"); err != nil {
		return nil, err
	}
	a := &AnyAttribute{
		ID:           ID(attrValue(elem, "id")),
		Namespace:    attrValue(elem, "namespace"),
		NotNamespace: attrValue(elem, "notNamespace"),
		NotQName:     attrValue(elem, "notQName"),
	}
	var err error
	if v := attrValue(elem, "processContents"); v != "" {
		if a.ProcessContents, err = parseProcessContents(v); err != nil {
			return nil, attrError(elem, "processContents", err)
		}
	}
	if a.annotation, err = annotationOnly(elem); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeAlternative(elem xmldom.Element) (*Alternative, error) {
	if err := checkAttributes(elem, "id", "test", "type", "xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	a := &Alternative{
		ID:                    ID(attrValue(elem, "id")),
		Test:                  attrValue(elem, "test"),
		Type:                  QName(attrValue(elem, "type")),
		XPathDefaultNamespace: AnyURI(attrValue(elem, "xpathDefaultNamespace")),
	}
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node AlternativeChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "simpleType":
			node, err = decodeSimpleType(child)
		case "complexType":
			node, err = decodeComplexType(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		a.body = append(a.body, node)
	}
	return a, nil
}

func decodeUnique(elem xmldom.Element) (*Unique, error) {
	if err := checkAttributes(elem, "id", "name"); err != nil {
		return nil, err
	}
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return nil, err
	}
	u := &Unique{ID: ID(attrValue(elem, "id")), Name: NCName(name)}
	if u.body, err = decodeConstraintBody(elem); err != nil {
		return nil, err
	}
	return u, nil
}

func decodeKey(elem xmldom.Element) (*Key, error) {
	if err := checkAttributes(elem, "id", "name"); err != nil {
		return nil, err
	}
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return nil, err
	}
	k := &Key{ID: ID(attrValue(elem, "id")), Name: NCName(name)}
	if k.body, err = decodeConstraintBody(elem); err != nil {
		return nil, err
	}
	return k, nil
}

func decodeKeyref(elem xmldom.Element) (*Keyref, error) {
	if err := checkAttributes(elem, "id", "name", "refer"); err != nil {
		return nil, err
	}
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return nil, err
	}
	refer, err := requiredAttr(elem, "refer")
	if err != nil {
		return nil, err
	}
	k := &Keyref{
		ID:    ID(attrValue(elem, "id")),
		Name:  NCName(name),
		Refer: QName(refer),
	}
	if k.body, err = decodeConstraintBody(elem); err != nil {
		return nil, err
	}
	return k, nil
}

func decodeConstraintBody(elem xmldom.Element) ([]ConstraintChild, error) {
	var body []ConstraintChild
	for _, child := range childElements(elem) {
		if !isXSD(child) {
			return nil, unexpectedChild(elem, child)
		}
		var node ConstraintChild
		var err error
		switch localName(child) {
		case "annotation":
			node, err = decodeAnnotation(child)
		case "selector":
			node, err = decodeSelector(child)
		case "field":
			node, err = decodeField(child)
		default:
			return nil, unexpectedChild(elem, child)
		}
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	return body, nil
}

func decodeSelector(elem xmldom.Element) (*Selector, error) {
	if err := checkAttributes(elem, "id", "xpath", "xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	xpath, err := requiredAttr(elem, "xpath")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Selector{
		ID:                    ID(attrValue(elem, "id")),
		XPath:                 xpath,
		XPathDefaultNamespace: AnyURI(attrValue(elem, "xpathDefaultNamespace")),
		annotation:            ann,
	}, nil
}

func decodeField(elem xmldom.Element) (*Field, error) {
	if err := checkAttributes(elem, "id", "xpath", "xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	xpath, err := requiredAttr(elem, "xpath")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Field{
		ID:                    ID(attrValue(elem, "id")),
		XPath:                 xpath,
		XPathDefaultNamespace: AnyURI(attrValue(elem, "xpathDefaultNamespace")),
		annotation:            ann,
	}, nil
}

func decodeAssert(elem xmldom.Element) (*Assert, error) {
	if err := checkAttributes(elem, "id", "test", "xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	test, err := requiredAttr(elem, "test")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Assert{
		ID:                    ID(attrValue(elem, "id")),
		Test:                  test,
		XPathDefaultNamespace: AnyURI(attrValue(elem, "xpathDefaultNamespace")),
		annotation:            ann,
	}, nil
}

func decodeLength(elem xmldom.Element) (*Length, error) {
	if err := checkAttributes(elem, "id", "fixed", "value"); err != nil {
		return nil, err
	}
	value, err := uintAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	fixed, err := boolAttr(elem, "fixed")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Length{
		ID:         ID(attrValue(elem, "id")),
		Fixed:      fixed,
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeMinLength(elem xmldom.Element) (*MinLength, error) {
	l, err := decodeLength(elem)
	if err != nil {
		return nil, err
	}
	return &MinLength{Length: *l}, nil
}

func decodeMaxLength(elem xmldom.Element) (*MaxLength, error) {
	l, err := decodeLength(elem)
	if err != nil {
		return nil, err
	}
	return &MaxLength{Length: *l}, nil
}

func decodePattern(elem xmldom.Element) (*Pattern, error) {
	if err := checkAttributes(elem, "id", "value"); err != nil {
		return nil, err
	}
	value, err := requiredAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		ID:         ID(attrValue(elem, "id")),
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeEnumeration(elem xmldom.Element) (*Enumeration, error) {
	if err := checkAttributes(elem, "id", "value"); err != nil {
		return nil, err
	}
	value, err := requiredAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Enumeration{
		ID:         ID(attrValue(elem, "id")),
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeWhiteSpace(elem xmldom.Element) (*WhiteSpace, error) {
	if err := checkAttributes(elem, "id", "fixed", "value"); err != nil {
		return nil, err
	}
	raw, err := requiredAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	value, err := parseWhiteSpaceValue(raw)
	if err != nil {
		return nil, attrError(elem, "value", err)
	}
	fixed, err := boolAttr(elem, "fixed")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &WhiteSpace{
		ID:         ID(attrValue(elem, "id")),
		Fixed:      fixed,
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeBoundary(elem xmldom.Element) (*BoundaryFacet, error) {
	if err := checkAttributes(elem, "id", "fixed", "value"); err != nil {
		return nil, err
	}
	value, err := requiredAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	fixed, err := boolAttr(elem, "fixed")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &BoundaryFacet{
		ID:         ID(attrValue(elem, "id")),
		Fixed:      fixed,
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeMinInclusive(elem xmldom.Element) (*MinInclusive, error) {
	b, err := decodeBoundary(elem)
	if err != nil {
		return nil, err
	}
	return &MinInclusive{BoundaryFacet: *b}, nil
}

func decodeMaxInclusive(elem xmldom.Element) (*MaxInclusive, error) {
	b, err := decodeBoundary(elem)
	if err != nil {
		return nil, err
	}
	return &MaxInclusive{BoundaryFacet: *b}, nil
}

func decodeMinExclusive(elem xmldom.Element) (*MinExclusive, error) {
	b, err := decodeBoundary(elem)
	if err != nil {
		return nil, err
	}
	return &MinExclusive{BoundaryFacet: *b}, nil
}

func decodeMaxExclusive(elem xmldom.Element) (*MaxExclusive, error) {
	b, err := decodeBoundary(elem)
	if err != nil {
		return nil, err
	}
	return &MaxExclusive{BoundaryFacet: *b}, nil
}

func decodeDigits(elem xmldom.Element) (*Digits, error) {
	if err := checkAttributes(elem, "id", "fixed", "value"); err != nil {
		return nil, err
	}
	value, err := uintAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	fixed, err := boolAttr(elem, "fixed")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Digits{
		ID:         ID(attrValue(elem, "id")),
		Fixed:      fixed,
		Value:      value,
		annotation: ann,
	}, nil
}

func decodeTotalDigits(elem xmldom.Element) (*TotalDigits, error) {
	d, err := decodeDigits(elem)
	if err != nil {
		return nil, err
	}
	return &TotalDigits{Digits: *d}, nil
}

func decodeFractionDigits(elem xmldom.Element) (*FractionDigits, error) {
	d, err := decodeDigits(elem)
	if err != nil {
		return nil, err
	}
	return &FractionDigits{Digits: *d}, nil
}

func decodeAssertion(elem xmldom.Element) (*Assertion, error) {
	if err := checkAttributes(elem, "id", "test", "xpathDefaultNamespace"); err != nil {
		return nil, err
	}
	test, err := requiredAttr(elem, "test")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &Assertion{
		ID:                    ID(attrValue(elem, "id")),
		Test:                  test,
		XPathDefaultNamespace: AnyURI(attrValue(elem, "xpathDefaultNamespace")),
		annotation:            ann,
	}, nil
}

func decodeExplicitTimezone(elem xmldom.Element) (*ExplicitTimezone, error) {
	if err := checkAttributes(elem, "id", "fixed", "value"); err != nil {
		return nil, err
	}
	raw, err := requiredAttr(elem, "value")
	if err != nil {
		return nil, err
	}
	value, err := parseExplicitTimezoneValue(raw)
	if err != nil {
		return nil, attrError(elem, "value", err)
	}
	fixed, err := boolAttr(elem, "fixed")
	if err != nil {
		return nil, err
	}
	ann, err := annotationOnly(elem)
	if err != nil {
		return nil, err
	}
	return &ExplicitTimezone{
		ID:         ID(attrValue(elem, "id")),
		Fixed:      fixed,
		Value:      value,
		annotation: ann,
	}, nil
}
