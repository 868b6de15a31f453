package xsd

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ViolationError reports a document that does not conform to the schema.
type ViolationError struct {
	Path   string
	Detail string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Detail)
}

// Validate checks a document on disk against the embedded default schema.
// It is usable independently of the build pipeline.
func Validate(xmlPath string) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.ValidateFile(xmlPath)
}

// ValidateFile checks a document on disk against this schema. Read errors
// propagate unchanged; conformance failures are *ViolationError.
func (s *Schema) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.ValidateBytes(data)
}

// ValidateBytes checks document bytes against this schema.
func (s *Schema) ValidateBytes(data []byte) error {
	root, err := parseDocument(data)
	if err != nil {
		return err
	}
	typ, ok := s.roots[root.name.Local]
	if !ok {
		return &ViolationError{
			Path:   "/" + root.name.Local,
			Detail: fmt.Sprintf("element %q is not a valid document root", root.name.Local),
		}
	}
	if root.name.Space != s.TargetNamespace {
		return &ViolationError{
			Path:   "/" + root.name.Local,
			Detail: fmt.Sprintf("namespace %q does not match target namespace %q", root.name.Space, s.TargetNamespace),
		}
	}
	return s.validateType("/"+root.name.Local, root, typ)
}

// docNode is one parsed element: name, attributes, child elements, and the
// concatenated character data.
type docNode struct {
	name     xml.Name
	attr     []xml.Attr
	children []*docNode
	text     strings.Builder
}

func parseDocument(data []byte) (*docNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var root *docNode
	var stack []*docNode
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &docNode{name: t.Name, attr: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse document: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parse document: no root element")
	}
	return root, nil
}

func (s *Schema) validateType(path string, node *docNode, typ string) error {
	if isBuiltin(typ) {
		if len(node.children) > 0 {
			return &ViolationError{Path: path, Detail: "unexpected child elements in simple-typed element"}
		}
		return s.validateSimpleValue(path, node.text.String(), typ)
	}
	if st, ok := s.simple[typ]; ok {
		if len(node.children) > 0 {
			return &ViolationError{Path: path, Detail: "unexpected child elements in simple-typed element"}
		}
		return s.validateEnum(path, node.text.String(), st)
	}
	ct, ok := s.complex[typ]
	if !ok {
		return &ViolationError{Path: path, Detail: fmt.Sprintf("unknown type %q", typ)}
	}
	if ct.simpleContentBase != "" {
		return s.validateSimpleContent(path, node, ct)
	}
	return s.validateSequence(path, node, ct)
}

func (s *Schema) validateSimpleContent(path string, node *docNode, ct *complexType) error {
	if len(node.children) > 0 {
		return &ViolationError{Path: path, Detail: "unexpected child elements in simple-content element"}
	}
	seen := make(map[string]bool)
	for _, a := range node.attr {
		if a.Name.Local == "xmlns" || a.Name.Space == "xmlns" {
			continue
		}
		def := findAttribute(ct, a.Name.Local)
		if def == nil {
			return &ViolationError{Path: path, Detail: fmt.Sprintf("unexpected attribute %q", a.Name.Local)}
		}
		seen[def.name] = true
		if st, ok := s.simple[def.typ]; ok {
			if err := s.validateEnum(path+"/@"+def.name, a.Value, st); err != nil {
				return err
			}
		} else if err := s.validateSimpleValue(path+"/@"+def.name, a.Value, def.typ); err != nil {
			return err
		}
	}
	for _, def := range ct.attributes {
		if def.required && !seen[def.name] {
			return &ViolationError{Path: path, Detail: fmt.Sprintf("missing required attribute %q", def.name)}
		}
	}
	return s.validateSimpleValue(path, node.text.String(), ct.simpleContentBase)
}

func (s *Schema) validateSequence(path string, node *docNode, ct *complexType) error {
	// Elements must appear in sequence order; a sequence type carries no
	// meaningful character data.
	if len(node.children) == 0 && strings.TrimSpace(node.text.String()) != "" {
		return &ViolationError{Path: path, Detail: "unexpected character data in sequence element"}
	}
	i := 0
	for _, p := range ct.sequence {
		count := 0
		for i < len(node.children) &&
			node.children[i].name.Local == p.name &&
			(p.max == unbounded || count < p.max) {
			child := node.children[i]
			if child.name.Space != s.TargetNamespace {
				return &ViolationError{
					Path:   fmt.Sprintf("%s/%s", path, child.name.Local),
					Detail: fmt.Sprintf("namespace %q does not match target namespace", child.name.Space),
				}
			}
			childPath := fmt.Sprintf("%s/%s[%d]", path, p.name, count)
			if err := s.validateType(childPath, child, p.typ); err != nil {
				return err
			}
			i++
			count++
		}
		if count < p.min {
			return &ViolationError{
				Path:   path,
				Detail: fmt.Sprintf("missing required element %q (have %d, need %d)", p.name, count, p.min),
			}
		}
	}
	if i < len(node.children) {
		return &ViolationError{
			Path:   path,
			Detail: fmt.Sprintf("unexpected element %q", node.children[i].name.Local),
		}
	}
	return nil
}

func (s *Schema) validateEnum(path, value string, st *simpleType) error {
	if _, ok := st.enum[value]; !ok {
		return &ViolationError{Path: path, Detail: fmt.Sprintf("value %q is not in the enumeration", value)}
	}
	return nil
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

func (s *Schema) validateSimpleValue(path, value, typ string) error {
	switch typ {
	case "xs:string":
		return nil
	case "xs:boolean":
		switch value {
		case "true", "false", "0", "1":
			return nil
		}
		return &ViolationError{Path: path, Detail: fmt.Sprintf("value %q is not a valid xs:boolean", value)}
	case "xs:dateTime":
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return nil
			}
		}
		return &ViolationError{Path: path, Detail: fmt.Sprintf("value %q is not a valid xs:dateTime", value)}
	default:
		return &ViolationError{Path: path, Detail: fmt.Sprintf("unsupported simple type %q", typ)}
	}
}

func findAttribute(ct *complexType, name string) *attribute {
	for i := range ct.attributes {
		if ct.attributes[i].name == name {
			return &ct.attributes[i]
		}
	}
	return nil
}
