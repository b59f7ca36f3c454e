// Package msgfile reads and writes OSC messages as YAML documents:
//
//	address: /test
//	arguments:
//	  - {type: s, value: Hello}
//	  - {type: i, value: 4}
//	  - {type: f, value: 1.5}
//	  - {type: b, value: AQID}
//
// Blob values are standard base64.
package msgfile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/chabad360/oscwire/osc"
)

// ErrUnknownType is returned for an argument type that isn't s, i, f or b.
var ErrUnknownType = errors.New("msgfile: unknown argument type")

// Document is the YAML form of a message.
type Document struct {
	Address   string     `yaml:"address"`
	Arguments []Argument `yaml:"arguments,omitempty"`
}

// Argument is the YAML form of a single argument.
type Argument struct {
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

// FromMessage converts m to its YAML form.
func FromMessage(m *osc.Message) Document {
	d := Document{Address: m.Address}
	for _, arg := range m.Arguments {
		a := Argument{Type: osc.ToTypeTag(arg).String()}
		switch v := arg.(type) {
		case osc.String:
			a.Value = scalar("!!str", string(v))
		case osc.Int32:
			a.Value = scalar("!!int", strconv.FormatInt(int64(v), 10))
		case osc.Float32:
			a.Value = scalar("!!float", formatFloat(float32(v)))
		case osc.Blob:
			a.Value = scalar("!!str", base64.StdEncoding.EncodeToString(v))
		}
		d.Arguments = append(d.Arguments, a)
	}
	return d
}

// formatFloat spells NaN and the infinities the way YAML resolves them.
func formatFloat(f float32) string {
	switch {
	case math.IsNaN(float64(f)):
		return ".nan"
	case math.IsInf(float64(f), 1):
		return ".inf"
	case math.IsInf(float64(f), -1):
		return "-.inf"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func scalar(tag, value string) yaml.Node {
	return yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// Message converts the document into a message.
func (d Document) Message() (*osc.Message, error) {
	m := osc.NewMessage(d.Address)
	m.Arguments = make([]osc.Value, 0, len(d.Arguments))
	for i, a := range d.Arguments {
		v, err := a.value()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		m.Arguments = append(m.Arguments, v)
	}
	return m, nil
}

func (a Argument) value() (osc.Value, error) {
	switch a.Type {
	case "s", "string":
		var s string
		if err := a.Value.Decode(&s); err != nil {
			return nil, err
		}
		return osc.String(s), nil

	case "i", "int32":
		var i int32
		if err := a.Value.Decode(&i); err != nil {
			return nil, err
		}
		return osc.Int32(i), nil

	case "f", "float32":
		var f float32
		if err := a.Value.Decode(&f); err != nil {
			return nil, err
		}
		return osc.Float32(f), nil

	case "b", "blob":
		var s string
		if err := a.Value.Decode(&s); err != nil {
			return nil, err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, err
		}
		return osc.Blob(b), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
	}
}

// Read decodes one YAML document from r.
func Read(r io.Reader) (*osc.Message, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("msgfile: %w", err)
	}
	m, err := d.Message()
	if err != nil {
		return nil, fmt.Errorf("msgfile: %w", err)
	}
	return m, nil
}

// Write encodes m to w as a YAML document.
func Write(w io.Writer, m *osc.Message) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMessage(m)); err != nil {
		return fmt.Errorf("msgfile: %w", err)
	}
	return enc.Close()
}
