package xsdtree

// Any is the element wildcard. The namespace constraint attributes are kept
// as written; wildcard matching is a consumer concern.
type Any struct {
	ID              ID
	Namespace       string
	NotNamespace    string
	NotQName        string
	ProcessContents ProcessContents
	MinOccurs       *uint
	MaxOccurs       *MaxOccurs
	annotation      *Annotation
}

func (a *Any) Annotation() *Annotation { return a.annotation }

// AnyAttribute is the attribute wildcard.
type AnyAttribute struct {
	ID              ID
	Namespace       string
	NotNamespace    string
	NotQName        string
	ProcessContents ProcessContents
	annotation      *Annotation
}

func (a *AnyAttribute) Annotation() *Annotation { return a.annotation }
