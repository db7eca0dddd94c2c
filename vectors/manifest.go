package vectors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tormodg/gonxt/nxt"
)

// Manifest describes a vector set to generate, so a conformance suite
// can request fixtures beyond the builtin ones without code changes.
type Manifest struct {
	Vectors []VectorSpec `yaml:"vectors"`
}

// VectorSpec is one named telegram: an opcode by wire name plus the
// fields to append, in order.
type VectorSpec struct {
	Name   string      `yaml:"name"`
	Opcode string      `yaml:"opcode"`
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one typed field append.
type FieldSpec struct {
	Type   string `yaml:"type"`    // string, filename, uint, int, bool, bytes
	Value  string `yaml:"value"`   // string/filename value
	MaxLen int    `yaml:"max_len"` // string slot size
	Width  int    `yaml:"width"`   // uint/int width in bytes
	Uint   uint64 `yaml:"uint"`    // uint value
	Int    int64  `yaml:"int"`     // int value
	Bool   bool   `yaml:"bool"`    // bool value
	Bytes  []int  `yaml:"bytes"`   // raw bytes, each 0-255
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks manifest correctness. It performs declarative
// validation only and does not mutate the manifest.
func Validate(m *Manifest) error {
	if len(m.Vectors) == 0 {
		return fmt.Errorf("manifest declares no vectors")
	}
	seen := make(map[string]bool)
	for _, v := range m.Vectors {
		if v.Name == "" {
			return fmt.Errorf("vector with empty name")
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate vector name %q", v.Name)
		}
		seen[v.Name] = true

		if _, err := nxt.OpcodeByName(v.Opcode); err != nil {
			return fmt.Errorf("vector %q: %w", v.Name, err)
		}

		for i, f := range v.Fields {
			switch f.Type {
			case "string":
				if f.MaxLen < 0 {
					return fmt.Errorf("vector %q field %d: negative max_len", v.Name, i)
				}
			case "filename", "bool":
				// no declarative constraints
			case "bytes":
				for j, b := range f.Bytes {
					if b < 0 || b > 255 {
						return fmt.Errorf("vector %q field %d: byte %d out of range: %d", v.Name, i, j, b)
					}
				}
			case "uint", "int":
				switch f.Width {
				case 1, 2, 4:
				default:
					return fmt.Errorf("vector %q field %d: width must be 1, 2 or 4", v.Name, i)
				}
			default:
				return fmt.Errorf("vector %q field %d: unknown type %q", v.Name, i, f.Type)
			}
		}
	}
	return nil
}

// Build encodes every vector in the manifest.
func (m *Manifest) Build() ([]Vector, error) {
	out := make([]Vector, 0, len(m.Vectors))
	for _, spec := range m.Vectors {
		v, err := spec.build()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s VectorSpec) build() (Vector, error) {
	op, err := nxt.OpcodeByName(s.Opcode)
	if err != nil {
		return Vector{}, fmt.Errorf("vector %q: %w", s.Name, err)
	}
	t, err := nxt.NewTelegram(op)
	if err != nil {
		return Vector{}, fmt.Errorf("vector %q: %w", s.Name, err)
	}
	for i, f := range s.Fields {
		if err := applyField(t, f); err != nil {
			return Vector{}, fmt.Errorf("vector %q field %d: %w", s.Name, i, err)
		}
	}
	return FromTelegram(s.Name, t), nil
}

func applyField(t *nxt.Telegram, f FieldSpec) error {
	switch f.Type {
	case "string":
		t.AddString(f.MaxLen, f.Value)
		return nil
	case "filename":
		return t.AddFilename(f.Value)
	case "uint":
		return t.AddUint(f.Width, f.Uint)
	case "int":
		return t.AddInt(f.Width, f.Int)
	case "bool":
		t.AddBool(f.Bool)
		return nil
	case "bytes":
		raw := make([]byte, len(f.Bytes))
		for i, b := range f.Bytes {
			if b < 0 || b > 255 {
				return fmt.Errorf("byte %d out of range: %d", i, b)
			}
			raw[i] = byte(b)
		}
		t.AddBytes(raw)
		return nil
	default:
		return fmt.Errorf("unknown field type %q", f.Type)
	}
}
