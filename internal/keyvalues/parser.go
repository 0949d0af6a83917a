package keyvalues

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokOpen
	tokClose
	tokConditional
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

// Parse reads a KeyValues document and returns a root block node holding the
// top-level pairs.
func Parse(src string) (*Node, error) {
	src = strings.TrimPrefix(src, "\ufeff")
	s := &scanner{src: src, line: 1, col: 1}
	root := &Node{Block: true, Line: 1}
	if err := s.parseBlock(root, true); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *scanner) parseBlock(parent *Node, topLevel bool) error {
	for {
		tok, err := s.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokEOF:
			if !topLevel {
				return s.errorf(tok, "unexpected end of input, missing '}' for %q opened on line %d", parent.Key, parent.Line)
			}
			return nil
		case tokClose:
			if topLevel {
				return s.errorf(tok, "unexpected '}'")
			}
			return nil
		case tokOpen:
			return s.errorf(tok, "unexpected '{' without a key")
		case tokConditional:
			continue
		}

		node := &Node{Key: tok.text, Line: tok.line}
		if err := s.parseValue(node); err != nil {
			return err
		}
		parent.Children = append(parent.Children, node)
	}
}

func (s *scanner) parseValue(node *Node) error {
	tok, err := s.next()
	if err != nil {
		return err
	}
	if tok.kind == tokConditional {
		if tok, err = s.next(); err != nil {
			return err
		}
	}
	switch tok.kind {
	case tokString:
		node.Value = tok.text
		s.skipConditional()
		return nil
	case tokOpen:
		node.Block = true
		return s.parseBlock(node, false)
	case tokEOF:
		return s.errorf(tok, "key %q has no value", node.Key)
	default:
		return s.errorf(tok, "key %q followed by unexpected %q", node.Key, tok.text)
	}
}

// skipConditional consumes a [$...] tag trailing a value.
func (s *scanner) skipConditional() {
	save := *s
	tok, err := s.next()
	if err != nil || tok.kind != tokConditional {
		*s = save
	}
}

func (s *scanner) next() (token, error) {
	s.skipSpaceAndComments()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, line: s.line, col: s.col}, nil
	}

	start := token{line: s.line, col: s.col}
	switch c := s.src[s.pos]; c {
	case '{':
		s.advance()
		start.kind, start.text = tokOpen, "{"
		return start, nil
	case '}':
		s.advance()
		start.kind, start.text = tokClose, "}"
		return start, nil
	case '"':
		text, err := s.quoted(start)
		if err != nil {
			return token{}, err
		}
		start.kind, start.text = tokString, text
		return start, nil
	case '[':
		end := strings.IndexAny(s.src[s.pos:], "]\n")
		if end < 0 || s.src[s.pos+end] != ']' {
			return token{}, s.errorf(start, "unterminated conditional")
		}
		stop := s.pos + end + 1
		start.kind, start.text = tokConditional, s.src[s.pos:stop]
		for s.pos < stop {
			s.advance()
		}
		return start, nil
	}

	begin := s.pos
	for s.pos < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsSpace(r) || r == '{' || r == '}' || r == '"' {
			break
		}
		if strings.HasPrefix(s.src[s.pos:], "//") {
			break
		}
		s.advance()
	}
	start.kind, start.text = tokString, s.src[begin:s.pos]
	return start, nil
}

func (s *scanner) quoted(start token) (string, error) {
	s.advance() // opening quote
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '"':
			s.advance()
			return b.String(), nil
		case c == '\\' && s.pos+1 < len(s.src):
			switch s.src[s.pos+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte('\\')
				s.advance()
				continue
			}
			s.advance()
			s.advance()
		default:
			_, size := utf8.DecodeRuneInString(s.src[s.pos:])
			b.WriteString(s.src[s.pos : s.pos+size])
			s.advance()
		}
	}
	return "", s.errorf(start, "unterminated quoted string")
}

func (s *scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		if strings.HasPrefix(s.src[s.pos:], "//") {
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.advance()
			}
			continue
		}
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.advance()
	}
}

// advance moves past one rune, tracking line and column.
func (s *scanner) advance() {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
		return
	}
	s.col++
}

func (s *scanner) errorf(at token, format string, args ...any) error {
	return &SyntaxError{Line: at.line, Col: at.col, Msg: fmt.Sprintf(format, args...)}
}
