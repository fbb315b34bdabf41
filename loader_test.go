package xsdtree

import (
	"strings"
	"testing"
)

func TestLoadSchemaFixture(t *testing.T) {
	schema, err := LoadSchema("testdata/library.xsd")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	if schema.TargetNamespace != "http://example.com/library" {
		t.Errorf("TargetNamespace = %q", schema.TargetNamespace)
	}
	if schema.ElementFormDefault != FormQualified {
		t.Errorf("ElementFormDefault = %q, want qualified", schema.ElementFormDefault)
	}
	if schema.Version != "1.2" {
		t.Errorf("Version = %q, want 1.2", schema.Version)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"simpleTypes", len(schema.SimpleTypes()), 6},
		{"complexTypes", len(schema.ComplexTypes()), 6},
		{"elements", len(schema.Elements()), 3},
		{"groups", len(schema.Groups()), 1},
		{"attributeGroups", len(schema.AttributeGroups()), 1},
		{"attributes", len(schema.Attributes()), 1},
		{"notations", len(schema.Notations()), 1},
		{"imports", len(schema.Imports()), 1},
		{"includes", len(schema.Includes()), 0},
		{"redefines", len(schema.Redefines()), 0},
		{"annotations", len(schema.Annotations()), 2},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s count = %d, want %d", c.name, c.got, c.want)
		}
	}

	// First annotation holds the schema documentation.
	docs := schema.Annotations()[0].Documentations()
	if len(docs) != 1 || !strings.Contains(docs[0].Content, "lending library") {
		t.Errorf("first annotation docs = %+v", docs)
	}
	if docs[0].XMLLang != "en" {
		t.Errorf("XMLLang = %q, want en", docs[0].XMLLang)
	}

	// The library element carries all four identity constraints.
	library := schema.Elements()[0]
	if library.Name != "library" {
		t.Fatalf("first element = %q, want library", library.Name)
	}
	if len(library.Constraints()) != 4 {
		t.Errorf("Constraints() length = %d, want 4", len(library.Constraints()))
	}
	if len(library.Keys()) != 2 || len(library.Uniques()) != 1 || len(library.Keyrefs()) != 1 {
		t.Errorf("constraint kinds = %d keys, %d uniques, %d keyrefs",
			len(library.Keys()), len(library.Uniques()), len(library.Keyrefs()))
	}
	if library.Keyrefs()[0].Refer != "lib:authorId" {
		t.Errorf("Keyref.Refer = %q", library.Keyrefs()[0].Refer)
	}

	// bookType's sequence carries four declared particles plus a wildcard.
	var bookType *ComplexType
	for _, ct := range schema.ComplexTypes() {
		if ct.Name == "bookType" {
			bookType = ct
		}
	}
	if bookType == nil {
		t.Fatal("bookType not found")
	}
	items := bookType.Sequence().Items()
	if len(items) != 5 {
		t.Fatalf("bookType sequence items = %d, want 5", len(items))
	}
	if _, ok := items[4].(*Any); !ok {
		t.Errorf("items[4] = %T, want *Any", items[4])
	}
	if len(bookType.Attributes()) != 2 || len(bookType.AttributeGroups()) != 1 {
		t.Errorf("bookType attributes = %d, attributeGroups = %d",
			len(bookType.Attributes()), len(bookType.AttributeGroups()))
	}

	// rating restricts xs:decimal with three facets.
	var rating *SimpleType
	for _, st := range schema.SimpleTypes() {
		if st.Name == "rating" {
			rating = st
		}
	}
	if rating == nil {
		t.Fatal("rating not found")
	}
	facets := rating.Restriction().Facets()
	if len(facets) != 3 {
		t.Fatalf("rating facets = %d, want 3", len(facets))
	}
	wantKinds := []FacetKind{FacetMinInclusive, FacetMaxInclusive, FacetFractionDigits}
	for i, want := range wantKinds {
		if facets[i].Kind != want {
			t.Errorf("facets[%d].Kind = %q, want %q", i, facets[i].Kind, want)
		}
	}
}

func TestLoadSchemaMissingFile(t *testing.T) {
	if _, err := LoadSchema("testdata/does-not-exist.xsd"); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestReadSchemaMalformedXML(t *testing.T) {
	if _, err := ReadSchema(strings.NewReader("<xs:schema")); err == nil {
		t.Fatal("Expected error for malformed XML")
	}
}
