package xsdtree

import (
	"strings"
	"testing"
)

func TestParseMaxOccurs(t *testing.T) {
	tests := []struct {
		input   string
		want    MaxOccurs
		wantErr bool
	}{
		{input: "unbounded", want: MaxOccurs{Unbounded: true}},
		{input: "0", want: MaxOccurs{Value: 0}},
		{input: "5", want: MaxOccurs{Value: 5}},
		{input: "-1", wantErr: true},
		{input: "many", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMaxOccurs(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMaxOccurs(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseMaxOccurs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxOccursString(t *testing.T) {
	if s := (MaxOccurs{Unbounded: true}).String(); s != "unbounded" {
		t.Errorf("String() = %q, want unbounded", s)
	}
	if s := (MaxOccurs{Value: 3}).String(); s != "3" {
		t.Errorf("String() = %q, want 3", s)
	}
}

func TestOccurrenceAttributesStayOptional(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:complexType name="pair">
			<xs:sequence>
				<xs:element name="bare" type="xs:string"/>
				<xs:element name="bounded" type="xs:string" minOccurs="0" maxOccurs="unbounded"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)

	items := schema.ComplexTypes()[0].Sequence().Items()
	bare := items[0].(*Element)
	if bare.MinOccurs != nil || bare.MaxOccurs != nil {
		t.Errorf("bare occurrence = %v/%v, want nil/nil", bare.MinOccurs, bare.MaxOccurs)
	}

	bounded := items[1].(*Element)
	if bounded.MinOccurs == nil || *bounded.MinOccurs != 0 {
		t.Errorf("bounded.MinOccurs = %v, want 0", bounded.MinOccurs)
	}
	if bounded.MaxOccurs == nil || !bounded.MaxOccurs.Unbounded {
		t.Errorf("bounded.MaxOccurs = %v, want unbounded", bounded.MaxOccurs)
	}
}

func TestRejectsInvalidOccurrence(t *testing.T) {
	err := parseSchemaError(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:complexType name="bad">
			<xs:sequence>
				<xs:element name="x" type="xs:string" maxOccurs="lots"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)

	if !strings.Contains(err.Error(), "maxOccurs") {
		t.Errorf("Expected maxOccurs error, got: %v", err)
	}
}

func TestSequenceItems(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:complexType name="mixedContent">
			<xs:sequence>
				<xs:annotation>
					<xs:documentation>Not a particle.</xs:documentation>
				</xs:annotation>
				<xs:element name="first" type="xs:string"/>
				<xs:choice>
					<xs:element name="a" type="xs:string"/>
					<xs:element name="b" type="xs:string"/>
				</xs:choice>
				<xs:group ref="tns:parts" xmlns:tns="http://example.com"/>
				<xs:any namespace="##other" processContents="skip"/>
			</xs:sequence>
		</xs:complexType>
		<xs:group name="parts">
			<xs:sequence/>
		</xs:group>
	</xs:schema>`)

	seq := schema.ComplexTypes()[0].Sequence()
	if seq == nil {
		t.Fatal("Sequence() = nil")
	}
	items := seq.Items()
	if len(items) != 4 {
		t.Fatalf("Items() length = %d, want 4", len(items))
	}
	if e, ok := items[0].(*Element); !ok || e.Name != "first" {
		t.Errorf("items[0] = %T %v, want element first", items[0], items[0])
	}
	if _, ok := items[1].(*Choice); !ok {
		t.Errorf("items[1] = %T, want *Choice", items[1])
	}
	if g, ok := items[2].(*Group); !ok || g.Ref != "tns:parts" {
		t.Errorf("items[2] = %T, want group ref tns:parts", items[2])
	}
	if _, ok := items[3].(*Any); !ok {
		t.Errorf("items[3] = %T, want *Any", items[3])
	}
}

func TestAllGroup(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:complexType name="record">
			<xs:all>
				<xs:element name="x" type="xs:string"/>
				<xs:element name="y" type="xs:string" minOccurs="0"/>
				<xs:any namespace="##any" processContents="lax"/>
			</xs:all>
		</xs:complexType>
	</xs:schema>`)

	all := schema.ComplexTypes()[0].All()
	if all == nil {
		t.Fatal("All() = nil")
	}
	if len(all.Items()) != 3 {
		t.Errorf("Items() length = %d, want 3", len(all.Items()))
	}
}

func TestAllRejectsNestedSequence(t *testing.T) {
	err := parseSchemaError(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:complexType name="bad">
			<xs:all>
				<xs:sequence>
					<xs:element name="x" type="xs:string"/>
				</xs:sequence>
			</xs:all>
		</xs:complexType>
	</xs:schema>`)

	if !strings.Contains(err.Error(), "unexpected child element") {
		t.Errorf("Expected unexpected-child error, got: %v", err)
	}
}

func TestGroupComposition(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:group name="parts">
			<xs:annotation>
				<xs:documentation>Parts of an item.</xs:documentation>
			</xs:annotation>
			<xs:choice>
				<xs:element name="bolt" type="xs:string"/>
				<xs:element name="nut" type="xs:string"/>
			</xs:choice>
		</xs:group>
	</xs:schema>`)

	group := schema.Groups()[0]
	comp := group.Composition()
	if comp == nil {
		t.Fatal("Composition() = nil")
	}
	choice, ok := comp.(*Choice)
	if !ok {
		t.Fatalf("Composition() = %T, want *Choice", comp)
	}
	if choice != group.Choice() {
		t.Error("Composition() and Choice() disagree")
	}
	if group.Sequence() != nil || group.All() != nil {
		t.Error("Sequence()/All() should be nil for a choice group")
	}
}

func TestElementDeclarationAttributes(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
	           xmlns:tns="http://example.com"
	           targetNamespace="http://example.com">
		<xs:element name="item" type="xs:string" nillable="true" abstract="false"
		            substitutionGroup="tns:thing" block="restriction" final="extension"
		            default="n/a"/>
	</xs:schema>`)

	e := schema.Elements()[0]
	if e.Name != "item" || e.Type != "xs:string" {
		t.Errorf("element = %+v", e)
	}
	if e.Nillable == nil || !*e.Nillable {
		t.Errorf("Nillable = %v, want true", e.Nillable)
	}
	if e.Abstract == nil || *e.Abstract {
		t.Errorf("Abstract = %v, want false", e.Abstract)
	}
	if len(e.SubstitutionGroup) != 1 || e.SubstitutionGroup[0] != "tns:thing" {
		t.Errorf("SubstitutionGroup = %v", e.SubstitutionGroup)
	}
	if len(e.Block) != 1 || e.Block[0] != BlockRestriction {
		t.Errorf("Block = %v", e.Block)
	}
	if len(e.Final) != 1 || e.Final[0] != FinalExtension {
		t.Errorf("Final = %v", e.Final)
	}
	if e.Default != "n/a" {
		t.Errorf("Default = %q", e.Default)
	}
}

func TestElementAlternatives(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
	           xmlns:tns="http://example.com"
	           targetNamespace="http://example.com">
		<xs:element name="shape" type="tns:shapeType">
			<xs:alternative test="@kind eq 'circle'" type="tns:circleType"/>
			<xs:alternative test="@kind eq 'square'">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="side" type="xs:decimal"/>
					</xs:sequence>
				</xs:complexType>
			</xs:alternative>
		</xs:element>
		<xs:complexType name="shapeType"/>
		<xs:complexType name="circleType"/>
	</xs:schema>`)

	alts := schema.Elements()[0].Alternatives()
	if len(alts) != 2 {
		t.Fatalf("Alternatives() length = %d, want 2", len(alts))
	}
	if alts[0].Test != "@kind eq 'circle'" || alts[0].Type != "tns:circleType" {
		t.Errorf("alternative[0] = %+v", alts[0])
	}
	if alts[1].Type != "" || alts[1].ComplexType() == nil {
		t.Errorf("alternative[1] should carry an inline complex type")
	}
}
