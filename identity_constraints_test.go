package xsdtree

import (
	"errors"
	"strings"
	"testing"
)

func TestElementIdentityConstraints(t *testing.T) {
	schema := parseSchema(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
	           xmlns:tns="http://example.com"
	           targetNamespace="http://example.com">
		<xs:element name="orders" type="tns:ordersType">
			<xs:key name="orderId">
				<xs:selector xpath="tns:order"/>
				<xs:field xpath="@id"/>
			</xs:key>
			<xs:unique name="orderRef">
				<xs:selector xpath="tns:order"/>
				<xs:field xpath="@ref"/>
				<xs:field xpath="@channel"/>
			</xs:unique>
			<xs:keyref name="parentRef" refer="tns:orderId">
				<xs:selector xpath="tns:order"/>
				<xs:field xpath="@parent"/>
			</xs:keyref>
		</xs:element>
		<xs:complexType name="ordersType">
			<xs:sequence>
				<xs:element name="order" type="xs:string" maxOccurs="unbounded"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)

	elem := schema.Elements()[0]

	constraints := elem.Constraints()
	if len(constraints) != 3 {
		t.Fatalf("Constraints() length = %d, want 3", len(constraints))
	}
	if _, ok := constraints[0].(*Key); !ok {
		t.Errorf("constraints[0] = %T, want *Key", constraints[0])
	}
	if _, ok := constraints[1].(*Unique); !ok {
		t.Errorf("constraints[1] = %T, want *Unique", constraints[1])
	}
	if _, ok := constraints[2].(*Keyref); !ok {
		t.Errorf("constraints[2] = %T, want *Keyref", constraints[2])
	}

	key := elem.Keys()[0]
	if key.Name != "orderId" {
		t.Errorf("Key.Name = %q, want orderId", key.Name)
	}
	if key.Selector() == nil || key.Selector().XPath != "tns:order" {
		t.Errorf("Key.Selector() = %+v", key.Selector())
	}
	if len(key.Fields()) != 1 || key.Fields()[0].XPath != "@id" {
		t.Errorf("Key.Fields() = %+v", key.Fields())
	}

	unique := elem.Uniques()[0]
	if len(unique.Fields()) != 2 {
		t.Fatalf("Unique.Fields() length = %d, want 2", len(unique.Fields()))
	}
	if unique.Fields()[0].XPath != "@ref" || unique.Fields()[1].XPath != "@channel" {
		t.Errorf("Unique fields out of order: %+v", unique.Fields())
	}

	keyref := elem.Keyrefs()[0]
	if keyref.Refer != "tns:orderId" {
		t.Errorf("Keyref.Refer = %q, want tns:orderId", keyref.Refer)
	}
}

func TestConstraintRequiresName(t *testing.T) {
	err := parseSchemaError(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:element name="orders" type="xs:string">
			<xs:unique>
				<xs:selector xpath="order"/>
				<xs:field xpath="@id"/>
			</xs:unique>
		</xs:element>
	</xs:schema>`)

	if !strings.Contains(err.Error(), "missing required attribute") {
		t.Errorf("error = %v, want missing name", err)
	}
}

func TestKeyrefRequiresRefer(t *testing.T) {
	err := parseSchemaError(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:element name="orders" type="xs:string">
			<xs:keyref name="parentRef">
				<xs:selector xpath="order"/>
				<xs:field xpath="@parent"/>
			</xs:keyref>
		</xs:element>
	</xs:schema>`)

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Attribute != "refer" {
		t.Errorf("error = %v, want missing refer attribute", err)
	}
}

func TestSelectorRequiresXPath(t *testing.T) {
	err := parseSchemaError(t, `<?xml version="1.0" encoding="UTF-8"?>
	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
		<xs:element name="orders" type="xs:string">
			<xs:key name="orderId">
				<xs:selector/>
				<xs:field xpath="@id"/>
			</xs:key>
		</xs:element>
	</xs:schema>`)

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Tag != "selector" || pe.Attribute != "xpath" {
		t.Errorf("error = %v, want selector missing xpath", err)
	}
}
