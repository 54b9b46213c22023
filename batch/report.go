package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/echoflaresat/geomkit/scene"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown report format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatCBOR:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Point is a Vec3 laid out as [x, y, z] on the wire.
type Point [3]float64

func PointOf(v vectors.Vec3) Point {
	return Point{v.X, v.Y, v.Z}
}

func (p Point) Vec3() vectors.Vec3 {
	return vectors.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Result is the outcome of one query. Only the fields the op produces are
// set. A geometry failure is reported in Error and leaves the rest empty.
type Result struct {
	Index         int      `yaml:"index" json:"index"`
	Op            scene.Op `yaml:"op" json:"op"`
	Operands      []string `yaml:"operands,flow" json:"operands"`
	Hit           *bool    `yaml:"hit,omitempty" json:"hit,omitempty"`
	Intersections string   `yaml:"intersections,omitempty" json:"intersections,omitempty"`
	Points        []Point  `yaml:"points,omitempty,flow" json:"points,omitempty"`
	Distance      *float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
	MaxDistance   *float64 `yaml:"max-distance,omitempty" json:"max-distance,omitempty"`
	Relation      string   `yaml:"relation,omitempty" json:"relation,omitempty"`
	Faces         []string `yaml:"faces,omitempty,flow" json:"faces,omitempty"`
	Error         string   `yaml:"error,omitempty" json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}

type Report struct {
	Results []Result `yaml:"results" json:"results"`
	Summary Summary  `yaml:"summary" json:"summary"`
}

// Encode writes the report in the given format. CBOR reuses the json tags.
func (r *Report) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatCBOR:
		return cbor.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func DecodeReport(r io.Reader, format Format) (*Report, error) {
	var rep Report
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&rep)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&rep)
	case FormatCBOR:
		err = cbor.NewDecoder(r).Decode(&rep)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s report: %w", format, err)
	}
	return &rep, nil
}
