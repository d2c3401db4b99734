package matching

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/skills_thesaurus.yaml
var defaultThesaurusYAML []byte

type thesaurusFile struct {
	Version   int                 `yaml:"version"`
	Relations map[string][]string `yaml:"relations"`
}

// Thesaurus maps a canonical skill or role term to the set of terms
// associated with it. Lookups are case-insensitive and an unknown term
// resolves to an empty set.
type Thesaurus struct {
	version   int
	relations map[string]map[string]struct{}
}

func ParseThesaurus(b []byte) (*Thesaurus, error) {
	var f thesaurusFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse skills thesaurus: %w", err)
	}

	relations := make(map[string]map[string]struct{}, len(f.Relations))
	for term, related := range f.Relations {
		key := normalizeTerm(term)
		if key == "" {
			continue
		}
		set := make(map[string]struct{}, len(related))
		for _, r := range related {
			if n := normalizeTerm(r); n != "" {
				set[n] = struct{}{}
			}
		}
		relations[key] = set
	}

	return &Thesaurus{version: f.Version, relations: relations}, nil
}

func LoadThesaurusFile(path string) (*Thesaurus, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skills thesaurus: %w", err)
	}
	return ParseThesaurus(b)
}

func DefaultThesaurus() *Thesaurus {
	t, err := ParseThesaurus(defaultThesaurusYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded skills thesaurus is invalid: %v", err))
	}
	return t
}

func (t *Thesaurus) Version() int {
	if t == nil {
		return 0
	}
	return t.version
}

// Related returns the associated terms for a term, empty for unknown keys.
func (t *Thesaurus) Related(term string) []string {
	if t == nil {
		return []string{}
	}
	set, ok := t.relations[normalizeTerm(term)]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out
}

// AreRelated reports whether either term's associated set contains the
// other. The check is symmetric and case-insensitive.
func (t *Thesaurus) AreRelated(a, b string) bool {
	if t == nil {
		return false
	}
	na, nb := normalizeTerm(a), normalizeTerm(b)
	if na == "" || nb == "" {
		return false
	}
	if set, ok := t.relations[na]; ok {
		if _, hit := set[nb]; hit {
			return true
		}
	}
	if set, ok := t.relations[nb]; ok {
		if _, hit := set[na]; hit {
			return true
		}
	}
	return false
}
