package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// SourceDocument renders a caption source with the given language and
// token/text pairs.
func SourceDocument(language string, pairs ...string) string {
	if len(pairs)%2 != 0 {
		panic("testsupport: odd number of token/text values")
	}
	var b strings.Builder
	b.WriteString("\"lang\"\n{\n")
	b.WriteString("\t\"Language\" \"" + language + "\"\n")
	b.WriteString("\t\"Tokens\"\n\t{\n")
	for i := 0; i < len(pairs); i += 2 {
		b.WriteString("\t\t\"" + escape(pairs[i]) + "\" \"" + escape(pairs[i+1]) + "\"\n")
	}
	b.WriteString("\t}\n}\n")
	return b.String()
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// WriteSource writes a UTF-8 caption source to path.
func WriteSource(t testing.TB, path, language string, pairs ...string) {
	t.Helper()
	writeFile(t, path, []byte(SourceDocument(language, pairs...)))
}

// WriteUTF16Source writes a caption source as UTF-16LE with a byte order
// mark, the way the game tools save them.
func WriteUTF16Source(t testing.TB, path, language string, pairs ...string) {
	t.Helper()

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(SourceDocument(language, pairs...)))
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	writeFile(t, path, data)
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
