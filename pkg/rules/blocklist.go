package rules

import (
	"slices"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/constants"
)

// Blocklist is an immutable set of componentId values that must not be
// referenced. The zero value blocks nothing.
type Blocklist struct {
	ids     map[string]struct{}
	ordered []string
}

// NewBlocklist builds a Blocklist from ids. Values are trimmed; blanks and
// duplicates are dropped.
func NewBlocklist(ids ...string) Blocklist {
	b := Blocklist{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := b.ids[id]; ok {
			continue
		}
		b.ids[id] = struct{}{}
		b.ordered = append(b.ordered, id)
	}
	return b
}

// DefaultBlocklist returns the built-in blocklist.
func DefaultBlocklist() Blocklist {
	return NewBlocklist(constants.DefaultBlocklist...)
}

// Contains reports whether id is blocked. id is compared exactly.
func (b Blocklist) Contains(id string) bool {
	_, ok := b.ids[id]
	return ok
}

// Len returns the number of blocked identifiers.
func (b Blocklist) Len() int {
	return len(b.ordered)
}

// IDs returns the blocked identifiers in the order they were supplied.
func (b Blocklist) IDs() []string {
	return slices.Clone(b.ordered)
}
