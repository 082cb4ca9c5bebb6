package dictionary

// TokenMapper wraps one flat English↔foreign term map and exposes forward
// and reverse lookup over it. Both directions are built once at
// construction.
type TokenMapper struct {
	forward map[string]string // english → foreign
	reverse map[string]string // foreign → english
}

// NewTokenMapper builds a mapper from an English→foreign map.
func NewTokenMapper(terms map[string]string) *TokenMapper {
	m := &TokenMapper{
		forward: make(map[string]string, len(terms)),
		reverse: make(map[string]string, len(terms)),
	}
	for en, foreign := range terms {
		m.forward[en] = foreign
		m.reverse[foreign] = en
	}
	return m
}

// Forward looks up the foreign spelling of an English term.
func (m *TokenMapper) Forward(english string) (string, bool) {
	foreign, ok := m.forward[english]
	return foreign, ok
}

// Reverse looks up the English spelling of a foreign term.
func (m *TokenMapper) Reverse(foreign string) (string, bool) {
	english, ok := m.reverse[foreign]
	return english, ok
}

// Len returns the number of term pairs.
func (m *TokenMapper) Len() int {
	return len(m.forward)
}
