package xsdtree

// Annotation carries the human- and tool-readable entries attached to a
// declaration. Entry content is captured as raw text and never interpreted.
type Annotation struct {
	ID        ID
	Namespace AnyURI
	body      []AnnotationEntry
}

// Entries returns all appinfo and documentation children in document order.
func (a *Annotation) Entries() []AnnotationEntry {
	out := make([]AnnotationEntry, len(a.body))
	copy(out, a.body)
	return out
}

func (a *Annotation) AppInfos() []*AppInfo {
	return collect[AppInfo](a.body)
}

func (a *Annotation) Documentations() []*Documentation {
	return collect[Documentation](a.body)
}

// AppInfo holds machine-oriented annotation content.
type AppInfo struct {
	Source  AnyURI
	Content string
}

// Documentation holds human-oriented annotation content.
type Documentation struct {
	Source  AnyURI
	XMLLang string
	Content string
}
