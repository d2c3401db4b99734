package matching

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/regions.yaml
var defaultRegionsYAML []byte

type regionsFile struct {
	Version   int                 `yaml:"version"`
	Adjacency map[string][]string `yaml:"adjacency"`
}

// Regions holds the regional-adjacency table used for nearby-location
// detection. The table may list each pair in one direction only;
// Adjacent checks both.
type Regions struct {
	version   int
	adjacency map[string]map[string]struct{}
}

func ParseRegions(b []byte) (*Regions, error) {
	var f regionsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}

	adjacency := make(map[string]map[string]struct{}, len(f.Adjacency))
	for loc, near := range f.Adjacency {
		key := normalizeTerm(loc)
		if key == "" {
			continue
		}
		set := make(map[string]struct{}, len(near))
		for _, n := range near {
			if v := normalizeTerm(n); v != "" {
				set[v] = struct{}{}
			}
		}
		adjacency[key] = set
	}

	return &Regions{version: f.Version, adjacency: adjacency}, nil
}

func LoadRegionsFile(path string) (*Regions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions: %w", err)
	}
	return ParseRegions(b)
}

func DefaultRegions() *Regions {
	r, err := ParseRegions(defaultRegionsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded regions table is invalid: %v", err))
	}
	return r
}

func (r *Regions) Version() int {
	if r == nil {
		return 0
	}
	return r.version
}

// Adjacent reports whether the two locations are listed as nearby in
// either direction.
func (r *Regions) Adjacent(a, b string) bool {
	if r == nil {
		return false
	}
	na, nb := normalizeTerm(a), normalizeTerm(b)
	if na == "" || nb == "" {
		return false
	}
	if set, ok := r.adjacency[na]; ok {
		if _, hit := set[nb]; hit {
			return true
		}
	}
	if set, ok := r.adjacency[nb]; ok {
		if _, hit := set[na]; hit {
			return true
		}
	}
	return false
}
