// Package reference serves the bundled SRD rules text: spells and class
// features, decoded once from embedded YAML.
package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fentz26/lorekeeper/internal/fold"
)

//go:embed data/spells.yaml
var spellsYAML []byte

//go:embed data/features.yaml
var featuresYAML []byte

// Kind distinguishes the reference tables.
type Kind string

const (
	KindSpell   Kind = "spell"
	KindFeature Kind = "feature"
)

// Entry is one reference item of either kind.
type Entry struct {
	Name    string
	Kind    Kind
	Spell   *Spell
	Feature *Feature
}

// Summary is the short label shown next to suggestions.
func (e *Entry) Summary() string {
	return "SRD " + string(e.Kind)
}

// Details renders the entry followed by its license notice.
func (e *Entry) Details() string {
	var body string
	switch e.Kind {
	case KindSpell:
		body = e.Spell.Details()
	case KindFeature:
		body = e.Feature.Details()
	}
	return fmt.Sprintf("%s\n\n*%s is Open Game Content subject to the `Open Game License`.*", body, e.Name)
}

// Library indexes reference entries by folded name.
type Library struct {
	entries []*Entry // sorted by name
	byName  map[string]*Entry
}

// Load decodes the embedded SRD data.
func Load() (*Library, error) {
	return Parse(bytes.NewReader(spellsYAML), bytes.NewReader(featuresYAML))
}

// Parse decodes spell and feature YAML lists.
func Parse(spells, features io.Reader) (*Library, error) {
	var ss []*Spell
	if err := decode(spells, &ss); err != nil {
		return nil, fmt.Errorf("reference: decode spells: %w", err)
	}
	var fs []*Feature
	if err := decode(features, &fs); err != nil {
		return nil, fmt.Errorf("reference: decode features: %w", err)
	}

	lib := &Library{byName: make(map[string]*Entry, len(ss)+len(fs))}
	for _, s := range ss {
		if err := lib.add(&Entry{Name: s.Name, Kind: KindSpell, Spell: s}); err != nil {
			return nil, err
		}
	}
	for _, f := range fs {
		if err := lib.add(&Entry{Name: f.Name, Kind: KindFeature, Feature: f}); err != nil {
			return nil, err
		}
	}
	sort.Slice(lib.entries, func(i, j int) bool { return lib.entries[i].Name < lib.entries[j].Name })
	return lib, nil
}

func decode(r io.Reader, v interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (l *Library) add(e *Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("reference: %s without a name", e.Kind)
	}
	key := fold.String(e.Name)
	if _, ok := l.byName[key]; ok {
		return fmt.Errorf("reference: duplicate entry %q", e.Name)
	}
	l.byName[key] = e
	l.entries = append(l.entries, e)
	return nil
}

// Lookup finds an entry of any kind by name, ignoring case.
func (l *Library) Lookup(name string) (*Entry, bool) {
	e, ok := l.byName[fold.String(strings.TrimSpace(name))]
	return e, ok
}

// Find is Lookup restricted to one kind.
func (l *Library) Find(kind Kind, name string) (*Entry, bool) {
	e, ok := l.Lookup(name)
	if !ok || e.Kind != kind {
		return nil, false
	}
	return e, true
}

// Search returns entries whose name starts with prefix, ignoring case, in
// name order. An empty kind matches both tables.
func (l *Library) Search(kind Kind, prefix string) []*Entry {
	var out []*Entry
	for _, e := range l.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if fold.HasPrefix(e.Name, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Len reports the number of entries.
func (l *Library) Len() int {
	return len(l.entries)
}
