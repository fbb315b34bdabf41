package xsdtree

import (
	"strings"
	"testing"
)

func TestRestrictionFacets(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:simpleType name="code">
			<xs:restriction base="xs:string">
				<xs:annotation>
					<xs:documentation>Not a facet.</xs:documentation>
				</xs:annotation>
				<xs:pattern value="[A-Z]{2}[0-9]+"/>
				<xs:enumeration value="AB1"/>
				<xs:enumeration value="CD2"/>
				<xs:minLength value="3"/>
				<xs:whiteSpace value="collapse" fixed="true"/>
			</xs:restriction>
		</xs:simpleType>
	</xs:schema>`)

	r := schema.SimpleTypes()[0].Restriction()
	if r == nil {
		t.Fatal("Restriction() = nil")
	}
	if r.Base != "xs:string" {
		t.Errorf("Base = %q, want xs:string", r.Base)
	}

	facets := r.Facets()
	wantKinds := []FacetKind{
		FacetPattern, FacetEnumeration, FacetEnumeration, FacetMinLength, FacetWhiteSpace,
	}
	if len(facets) != len(wantKinds) {
		t.Fatalf("Facets() length = %d, want %d", len(facets), len(wantKinds))
	}
	for i, want := range wantKinds {
		if facets[i].Kind != want {
			t.Errorf("facets[%d].Kind = %q, want %q", i, facets[i].Kind, want)
		}
	}

	if facets[0].Pattern == nil || facets[0].Pattern.Value != "[A-Z]{2}[0-9]+" {
		t.Errorf("pattern facet = %+v", facets[0])
	}
	if facets[1].Enumeration == nil || facets[1].Enumeration.Value != "AB1" {
		t.Errorf("enumeration facet = %+v", facets[1])
	}
	if facets[3].Length == nil || facets[3].Length.Value != 3 {
		t.Errorf("minLength facet = %+v", facets[3])
	}
	ws := facets[4].WhiteSpace
	if ws == nil || ws.Value != WhiteSpaceCollapse || ws.Fixed == nil || !*ws.Fixed {
		t.Errorf("whiteSpace facet = %+v", ws)
	}
}

func TestBoundaryAndDigitsFacets(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:simpleType name="price">
			<xs:restriction base="xs:decimal">
				<xs:minExclusive value="0"/>
				<xs:maxInclusive value="9999.99"/>
				<xs:totalDigits value="6"/>
				<xs:fractionDigits value="2"/>
			</xs:restriction>
		</xs:simpleType>
	</xs:schema>`)

	facets := schema.SimpleTypes()[0].Restriction().Facets()
	if len(facets) != 4 {
		t.Fatalf("Facets() length = %d, want 4", len(facets))
	}
	if facets[0].Kind != FacetMinExclusive || facets[0].Boundary.Value != "0" {
		t.Errorf("facets[0] = %+v", facets[0])
	}
	if facets[1].Kind != FacetMaxInclusive || facets[1].Boundary.Value != "9999.99" {
		t.Errorf("facets[1] = %+v", facets[1])
	}
	if facets[2].Kind != FacetTotalDigits || facets[2].Digits.Value != 6 {
		t.Errorf("facets[2] = %+v", facets[2])
	}
	if facets[3].Kind != FacetFractionDigits || facets[3].Digits.Value != 2 {
		t.Errorf("facets[3] = %+v", facets[3])
	}
}

func TestAssertionAndTimezoneFacets(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:simpleType name="evenStamp">
			<xs:restriction base="xs:dateTime">
				<xs:assertion test="$value ge xs:dateTime('2000-01-01T00:00:00Z')"/>
				<xs:explicitTimezone value="required"/>
			</xs:restriction>
		</xs:simpleType>
	</xs:schema>`)

	facets := schema.SimpleTypes()[0].Restriction().Facets()
	if len(facets) != 2 {
		t.Fatalf("Facets() length = %d, want 2", len(facets))
	}
	if facets[0].Kind != FacetAssertion || !strings.Contains(facets[0].Assertion.Test, "$value ge") {
		t.Errorf("facets[0] = %+v", facets[0])
	}
	if facets[1].Kind != FacetExplicitTimezone || facets[1].ExplicitTimezone.Value != TimezoneRequired {
		t.Errorf("facets[1] = %+v", facets[1])
	}
}

func TestFacetsSkipNonFacetChildren(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
	           xmlns:tns="http://example.com"
	           targetNamespace="http://example.com">
		<xs:complexType name="narrowed">
			<xs:complexContent>
				<xs:restriction base="tns:wide">
					<xs:sequence>
						<xs:element name="kept" type="xs:string"/>
					</xs:sequence>
					<xs:attribute name="label" type="xs:string"/>
					<xs:assert test="@label ne ''"/>
				</xs:restriction>
			</xs:complexContent>
		</xs:complexType>
		<xs:complexType name="wide"/>
	</xs:schema>`)

	r := schema.ComplexTypes()[0].ComplexContent().Restriction()
	if r == nil {
		t.Fatal("Restriction() = nil")
	}
	if len(r.Facets()) != 0 {
		t.Errorf("Facets() = %v, want empty", r.Facets())
	}
	if r.Sequence() == nil || len(r.Attributes()) != 1 || len(r.Asserts()) != 1 {
		t.Errorf("restriction children missing: %+v", r)
	}
}

func TestFacetValueErrors(t *testing.T) {
	tests := []struct {
		name      string
		schemaXML string
		wantMsg   string
	}{
		{
			name: "non-numeric length",
			schemaXML: `<?xml version="1.0" encoding="UTF-8"?>
			<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
				<xs:simpleType name="bad">
					<xs:restriction base="xs:string">
						<xs:length value="long"/>
					</xs:restriction>
				</xs:simpleType>
			</xs:schema>`,
			wantMsg: "invalid value",
		},
		{
			name: "missing enumeration value",
			schemaXML: `<?xml version="1.0" encoding="UTF-8"?>
			<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
				<xs:simpleType name="bad">
					<xs:restriction base="xs:string">
						<xs:enumeration/>
					</xs:restriction>
				</xs:simpleType>
			</xs:schema>`,
			wantMsg: "missing required attribute",
		},
		{
			name: "unknown whiteSpace mode",
			schemaXML: `<?xml version="1.0" encoding="UTF-8"?>
			<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
				<xs:simpleType name="bad">
					<xs:restriction base="xs:string">
						<xs:whiteSpace value="trim"/>
					</xs:restriction>
				</xs:simpleType>
			</xs:schema>`,
			wantMsg: "invalid whiteSpace value",
		},
		{
			name: "bad fixed flag",
			schemaXML: `<?xml version="1.0" encoding="UTF-8"?>
			<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
				<xs:simpleType name="bad">
					<xs:restriction base="xs:string">
						<xs:maxLength value="5" fixed="yes"/>
					</xs:restriction>
				</xs:simpleType>
			</xs:schema>`,
			wantMsg: "invalid boolean value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseSchemaError(t, tt.schemaXML)
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}
