package caption

// Entry is one token/text pair in declaration order.
type Entry struct {
	Token string
	Text  string
}

// Set is an ordered token -> text mapping.
type Set struct {
	Language string

	entries []Entry
	index   map[string]int
}

// NewSet returns an empty set for the given language name.
func NewSet(language string) *Set {
	return &Set{
		Language: language,
		index:    make(map[string]int),
	}
}

// Set stores text under token. Re-setting an existing token overwrites its
// text but keeps the position of the first declaration.
func (s *Set) Set(token, text string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[token]; ok {
		s.entries[i].Text = text
		return
	}
	s.index[token] = len(s.entries)
	s.entries = append(s.entries, Entry{Token: token, Text: text})
}

// Get returns the text stored for token.
func (s *Set) Get(token string) (string, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[token]
	if !ok {
		return "", false
	}
	return s.entries[i].Text, true
}

// Len reports the number of distinct tokens.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in declaration order.
func (s *Set) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Tokens returns the tokens in declaration order.
func (s *Set) Tokens() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Token
	}
	return out
}
