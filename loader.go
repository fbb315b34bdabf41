package xsdtree

import (
	"fmt"
	"io"
	"os"

	"github.com/agentflare-ai/go-xmldom"
)

// LoadSchema reads and parses an XSD schema document from a file.
func LoadSchema(filename string) (*Schema, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadSchema(file)
}

// ReadSchema parses an XSD schema document from a reader.
func ReadSchema(r io.Reader) (*Schema, error) {
	doc, err := xmldom.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return Parse(doc)
}

// Parse builds the schema tree from an already decoded document. The root
// element must be schema in the XSD namespace.
func Parse(doc xmldom.Document) (*Schema, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	root := doc.DocumentElement()
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}

	if string(root.NamespaceURI()) != XSDNamespace || string(root.LocalName()) != "schema" {
		return nil, fmt.Errorf("not an XSD schema document")
	}

	return decodeSchema(root)
}
