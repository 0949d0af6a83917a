package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"closecaption_english.dat", "closecaption_english.dat"},
		{"  a/b\\c:d*e  ", "a-b-c-d-e"},
		{`what?"<>|`, "what"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.input); got != tt.expected {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"English", "english"},
		{"pt-BR", "pt-br"},
		{"Simplified Chinese", "simplified_chinese"},
		{"../etc", "etc"},
		{"", "unknown"},
		{"!!!", "unknown"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExpandPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		vars     map[string]string
		expected string
	}{
		{"closecaption_{language}.dat", map[string]string{"language": "english"}, "closecaption_english.dat"},
		{"{name}_{language}.dat", map[string]string{"language": "schinese", "name": "Subtitles"}, "subtitles_schinese.dat"},
		{"closecaption_{language}.dat", map[string]string{"language": ""}, "closecaption_unknown.dat"},
		{"fixed.dat", nil, "fixed.dat"},
		{"{other}.dat", map[string]string{"language": "english"}, "{other}.dat"},
	}
	for _, tt := range tests {
		if got := ExpandPattern(tt.pattern, tt.vars); got != tt.expected {
			t.Errorf("ExpandPattern(%q) = %q, want %q", tt.pattern, got, tt.expected)
		}
	}
}
