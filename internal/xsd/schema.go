package xsd

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed Datawarehouse.xsd
var embeddedSchema []byte

// Raw XSD document shapes, decoded straight from the schema file.

type xsdDocument struct {
	TargetNamespace string           `xml:"targetNamespace,attr"`
	Elements        []xsdElement     `xml:"element"`
	ComplexTypes    []xsdComplexType `xml:"complexType"`
	SimpleTypes     []xsdSimpleType  `xml:"simpleType"`
}

type xsdElement struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`
}

type xsdComplexType struct {
	Name     string `xml:"name,attr"`
	Sequence *struct {
		Elements []xsdElement `xml:"element"`
	} `xml:"sequence"`
	SimpleContent *struct {
		Extension struct {
			Base       string         `xml:"base,attr"`
			Attributes []xsdAttribute `xml:"attribute"`
		} `xml:"extension"`
	} `xml:"simpleContent"`
}

type xsdAttribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

type xsdSimpleType struct {
	Name        string `xml:"name,attr"`
	Restriction struct {
		Base         string `xml:"base,attr"`
		Enumerations []struct {
			Value string `xml:"value,attr"`
		} `xml:"enumeration"`
	} `xml:"restriction"`
}

// Compiled schema shapes.

// unbounded marks a particle with no upper occurrence limit.
const unbounded = -1

type particle struct {
	name string
	typ  string
	min  int
	max  int
}

type attribute struct {
	name     string
	typ      string
	required bool
}

type complexType struct {
	sequence          []particle
	simpleContentBase string
	attributes        []attribute
}

type simpleType struct {
	base string
	enum map[string]struct{}
}

// Schema is a compiled Datawarehouse schema ready for validation.
type Schema struct {
	TargetNamespace string
	roots           map[string]string
	complex         map[string]*complexType
	simple          map[string]*simpleType
}

// Load compiles a schema from the given file. An empty path selects the
// embedded Datawarehouse schema.
func Load(path string) (*Schema, error) {
	data := embeddedSchema
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema: %w", err)
		}
	}
	return compile(data)
}

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
	defaultErr    error
)

// Default returns the embedded schema, compiled once per process.
func Default() (*Schema, error) {
	defaultOnce.Do(func() {
		defaultSchema, defaultErr = compile(embeddedSchema)
	})
	return defaultSchema, defaultErr
}

func compile(data []byte) (*Schema, error) {
	var doc xsdDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if doc.TargetNamespace == "" {
		return nil, fmt.Errorf("schema has no target namespace")
	}

	s := &Schema{
		TargetNamespace: doc.TargetNamespace,
		roots:           make(map[string]string),
		complex:         make(map[string]*complexType),
		simple:          make(map[string]*simpleType),
	}
	for _, el := range doc.Elements {
		s.roots[el.Name] = localTypeName(el.Type)
	}
	for _, st := range doc.SimpleTypes {
		compiled := &simpleType{
			base: localTypeName(st.Restriction.Base),
			enum: make(map[string]struct{}),
		}
		for _, e := range st.Restriction.Enumerations {
			compiled.enum[e.Value] = struct{}{}
		}
		s.simple[st.Name] = compiled
	}
	for _, ct := range doc.ComplexTypes {
		compiled := &complexType{}
		if ct.SimpleContent != nil {
			compiled.simpleContentBase = localTypeName(ct.SimpleContent.Extension.Base)
			for _, a := range ct.SimpleContent.Extension.Attributes {
				compiled.attributes = append(compiled.attributes, attribute{
					name:     a.Name,
					typ:      localTypeName(a.Type),
					required: a.Use == "required",
				})
			}
		}
		if ct.Sequence != nil {
			for _, el := range ct.Sequence.Elements {
				p, err := compileParticle(el)
				if err != nil {
					return nil, fmt.Errorf("type %s: %w", ct.Name, err)
				}
				compiled.sequence = append(compiled.sequence, p)
			}
		}
		s.complex[ct.Name] = compiled
	}

	// Every referenced type must resolve to a builtin or a declared type.
	for name, typ := range s.roots {
		if err := s.checkTypeRef(typ); err != nil {
			return nil, fmt.Errorf("root element %s: %w", name, err)
		}
	}
	for name, ct := range s.complex {
		for _, p := range ct.sequence {
			if err := s.checkTypeRef(p.typ); err != nil {
				return nil, fmt.Errorf("type %s, element %s: %w", name, p.name, err)
			}
		}
	}
	return s, nil
}

func compileParticle(el xsdElement) (particle, error) {
	p := particle{name: el.Name, typ: localTypeName(el.Type), min: 1, max: 1}
	if el.MinOccurs != "" {
		n, err := strconv.Atoi(el.MinOccurs)
		if err != nil {
			return particle{}, fmt.Errorf("bad minOccurs %q", el.MinOccurs)
		}
		p.min = n
	}
	switch el.MaxOccurs {
	case "":
	case "unbounded":
		p.max = unbounded
	default:
		n, err := strconv.Atoi(el.MaxOccurs)
		if err != nil {
			return particle{}, fmt.Errorf("bad maxOccurs %q", el.MaxOccurs)
		}
		p.max = n
	}
	return p, nil
}

func (s *Schema) checkTypeRef(typ string) error {
	if isBuiltin(typ) {
		return nil
	}
	if _, ok := s.complex[typ]; ok {
		return nil
	}
	if _, ok := s.simple[typ]; ok {
		return nil
	}
	return fmt.Errorf("unresolved type reference %q", typ)
}

// localTypeName strips the namespace prefix from a type reference, keeping
// the xs: prefix that marks builtins.
func localTypeName(ref string) string {
	if strings.HasPrefix(ref, "xs:") {
		return ref
	}
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func isBuiltin(typ string) bool {
	switch typ {
	case "xs:string", "xs:boolean", "xs:dateTime":
		return true
	}
	return false
}
