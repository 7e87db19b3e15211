// Package location validates job locations against a static reference dataset.
package location

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hustlehub/hustle-api/internal/core"
)

//go:embed locations.yaml
var defaultDataset []byte

type dataset struct {
	Divisions []struct {
		Name      string `yaml:"name"`
		Districts []struct {
			Name     string   `yaml:"name"`
			Upazilas []string `yaml:"upazilas"`
		} `yaml:"districts"`
	} `yaml:"divisions"`
}

// StaticValidator answers location lookups from an in-memory index. Matching
// ignores case and surrounding whitespace. It is read-only after construction.
type StaticValidator struct {
	triples map[string]struct{}
}

var _ core.LocationValidator = (*StaticValidator)(nil)

// NewStaticValidator loads the embedded dataset.
func NewStaticValidator() (*StaticValidator, error) {
	return ParseYAML(defaultDataset)
}

// ParseYAML builds a validator from YAML bytes.
func ParseYAML(data []byte) (*StaticValidator, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("location: dataset is empty")
	}
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("location: decode dataset: %w", err)
	}

	v := &StaticValidator{triples: make(map[string]struct{})}
	for _, div := range ds.Divisions {
		for _, dist := range div.Districts {
			for _, upz := range dist.Upazilas {
				v.triples[key(div.Name, dist.Name, upz)] = struct{}{}
			}
		}
	}
	if len(v.triples) == 0 {
		return nil, fmt.Errorf("location: dataset has no upazilas")
	}
	return v, nil
}

// LoadFile builds a validator from a YAML file on disk.
func LoadFile(path string) (*StaticValidator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("location: open %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("location: read %s: %w", path, err)
	}
	return ParseYAML(content)
}

// IsValid reports whether upazila lies in district within division.
func (v *StaticValidator) IsValid(division, district, upazila string) bool {
	_, ok := v.triples[key(division, district, upazila)]
	return ok
}

// Len returns the number of known upazilas.
func (v *StaticValidator) Len() int { return len(v.triples) }

func key(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}
