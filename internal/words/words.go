// Package words loads the topic-keyed word source used by puzzle
// generation. Each topic carries a path pool (words eligible for the
// start-to-end chain) and a bonus pool. The lists are treated as
// opaque, pre-filtered input; this package only normalizes casing and
// drops entries outside the per-word length bounds.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

//go:embed words.yaml
var defaultYAML []byte

// List is one topic's word pools.
type List struct {
	Path  []string `yaml:"path"`
	Bonus []string `yaml:"bonus"`
}

// Source is an immutable, topic-keyed word dictionary.
type Source struct {
	topics map[string]List
}

// Default returns the word source embedded in the binary.
func Default() (*Source, error) {
	return Parse(defaultYAML)
}

// LoadFile reads a word source from a YAML file.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML word source and normalizes every pool.
func Parse(data []byte) (*Source, error) {
	var doc struct {
		Topics map[string]List `yaml:"topics"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}

	src := &Source{topics: make(map[string]List, len(doc.Topics))}
	for name, list := range doc.Topics {
		src.topics[strings.ToLower(name)] = List{
			Path:  normalize(list.Path),
			Bonus: normalize(list.Bonus),
		}
	}
	return src, nil
}

// Topics returns the available topic names, sorted.
func (s *Source) Topics() []string {
	names := make([]string, 0, len(s.topics))
	for name := range s.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the pools for a topic, or types.ErrTopicNotFound.
func (s *Source) Lookup(topic string) (List, error) {
	list, ok := s.topics[strings.ToLower(topic)]
	if !ok {
		return List{}, types.ErrTopicNotFound
	}
	return list, nil
}

// normalize lowercases entries, strips non-letter characters, drops
// words outside the length bounds, and dedupes while preserving order.
func normalize(pool []string) []string {
	seen := make(map[string]bool, len(pool))
	var out []string
	for _, w := range pool {
		var b strings.Builder
		for _, r := range strings.ToLower(strings.TrimSpace(w)) {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
		clean := b.String()
		if len(clean) < types.MinWordLength || len(clean) > types.MaxWordLength {
			continue
		}
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}
