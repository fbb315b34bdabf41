package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/go-xsdtree"
)

type importSummary struct {
	Namespace      string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	SchemaLocation string `json:"schemaLocation,omitempty" yaml:"schemaLocation,omitempty"`
}

type summary struct {
	TargetNamespace string          `json:"targetNamespace" yaml:"targetNamespace"`
	Version         string          `json:"version,omitempty" yaml:"version,omitempty"`
	Imports         []importSummary `json:"imports,omitempty" yaml:"imports,omitempty"`
	Includes        []string        `json:"includes,omitempty" yaml:"includes,omitempty"`
	SimpleTypes     []string        `json:"simpleTypes,omitempty" yaml:"simpleTypes,omitempty"`
	ComplexTypes    []string        `json:"complexTypes,omitempty" yaml:"complexTypes,omitempty"`
	Elements        []string        `json:"elements,omitempty" yaml:"elements,omitempty"`
	Attributes      []string        `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Groups          []string        `json:"groups,omitempty" yaml:"groups,omitempty"`
	AttributeGroups []string        `json:"attributeGroups,omitempty" yaml:"attributeGroups,omitempty"`
	Notations       []string        `json:"notations,omitempty" yaml:"notations,omitempty"`
	Annotations     int             `json:"annotations" yaml:"annotations"`
}

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: xsdinspect [-format json|yaml] <xsd-file>")
		os.Exit(1)
	}

	schema, err := xsdtree.LoadSchema(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	s := summarize(schema)

	var out []byte
	switch *format {
	case "json":
		out, err = json.MarshalIndent(s, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(s)
	default:
		log.Fatalf("Unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("Failed to encode summary: %v", err)
	}

	fmt.Println(string(out))
}

func summarize(schema *xsdtree.Schema) summary {
	s := summary{
		TargetNamespace: string(schema.TargetNamespace),
		Version:         string(schema.Version),
		Annotations:     len(schema.Annotations()),
	}
	for _, imp := range schema.Imports() {
		s.Imports = append(s.Imports, importSummary{
			Namespace:      string(imp.Namespace),
			SchemaLocation: string(imp.SchemaLocation),
		})
	}
	for _, inc := range schema.Includes() {
		s.Includes = append(s.Includes, string(inc.SchemaLocation))
	}
	for _, st := range schema.SimpleTypes() {
		s.SimpleTypes = append(s.SimpleTypes, string(st.Name))
	}
	for _, ct := range schema.ComplexTypes() {
		s.ComplexTypes = append(s.ComplexTypes, string(ct.Name))
	}
	for _, el := range schema.Elements() {
		s.Elements = append(s.Elements, string(el.Name))
	}
	for _, attr := range schema.Attributes() {
		s.Attributes = append(s.Attributes, string(attr.Name))
	}
	for _, g := range schema.Groups() {
		s.Groups = append(s.Groups, string(g.Name))
	}
	for _, ag := range schema.AttributeGroups() {
		s.AttributeGroups = append(s.AttributeGroups, string(ag.Name))
	}
	for _, n := range schema.Notations() {
		s.Notations = append(s.Notations, string(n.Name))
	}
	return s
}
