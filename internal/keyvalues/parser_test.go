package keyvalues

import (
	"errors"
	"testing"
)

const sample = `// Closed captions
"lang"
{
	"Language" "English"
	"Tokens"
	{
		"HL2.Greeting"	"<clr:255,255,255>Hello, \"friend\".\nWelcome."
		bare.token	bare_value
		"Platform.Line"	"PC only"	[$WIN32]
		"Empty"	""
		"Dup"	"first"
		"Dup"	"second"
	}
}
`

func TestParseCaptionDocument(t *testing.T) {
	root, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lang := root.Child("LANG")
	if lang == nil || !lang.Block {
		t.Fatal("expected lang block")
	}
	if got := lang.Child("language").Value; got != "English" {
		t.Fatalf("language = %q", got)
	}

	tokens := lang.Child("tokens")
	if tokens == nil || len(tokens.Children) != 6 {
		t.Fatalf("expected 6 token pairs, got %+v", tokens)
	}

	tests := []struct {
		key   string
		value string
	}{
		{"HL2.Greeting", "<clr:255,255,255>Hello, \"friend\".\nWelcome."},
		{"bare.token", "bare_value"},
		{"Platform.Line", "PC only"},
		{"Empty", ""},
		{"Dup", "first"},
		{"Dup", "second"},
	}
	for i, tt := range tests {
		got := tokens.Children[i]
		if got.Key != tt.key || got.Value != tt.value || got.Block {
			t.Fatalf("pair %d: got %q=%q want %q=%q", i, got.Key, got.Value, tt.key, tt.value)
		}
	}
	if tokens.Child("dup").Value != "second" {
		t.Fatal("Child should return the last matching pair")
	}
	if tokens.Children[0].Line != 7 {
		t.Fatalf("unexpected line for first token: %d", tokens.Children[0].Line)
	}
}

func TestParseKeepsUnknownEscapes(t *testing.T) {
	root, err := Parse(`"k" "C:\path\dir"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := root.Child("k").Value; got != `C:\path\dir` {
		t.Fatalf("value = %q", got)
	}
}

func TestParseStripsByteOrderMark(t *testing.T) {
	root, err := Parse("\ufeff\"k\" \"v\"")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Child("k") == nil {
		t.Fatal("expected key after BOM")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{name: "unterminated string", src: "\"lang\"\n{\n\"a\" \"b", line: 3},
		{name: "missing close brace", src: "\"lang\"\n{\n\"a\" \"b\"\n", line: 4},
		{name: "stray close brace", src: "}", line: 1},
		{name: "key without value", src: "\"a\"", line: 1},
		{name: "block without key", src: "{ }", line: 1},
		{name: "unterminated conditional", src: "\"a\" \"b\" [$WIN32\n", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("expected ErrSyntax, got %v", err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Line != tt.line {
				t.Fatalf("error line %d, want %d (%v)", syntaxErr.Line, tt.line, err)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	root, err := Parse(`"a" { } "b" "v" "c" { "x" "y" }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	blocks := root.Blocks()
	if len(blocks) != 2 || blocks[0].Key != "a" || blocks[1].Key != "c" {
		t.Fatalf("unexpected blocks %+v", blocks)
	}
}
