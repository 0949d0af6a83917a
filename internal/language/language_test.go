package language

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"english", "english"},
		{"English", "english"},
		{" ENGLISH ", "english"},
		{"en", "english"},
		{"eng", "english"},
		{"fre", "french"},
		{"pt-BR", "brazilian"},
		{"pt_br", "brazilian"},
		{"por", "portuguese"},
		{"Korean", "koreana"},
		{"zh", "schinese"},
		{"zh-TW", "tchinese"},
		{"Traditional Chinese", "tchinese"},
		{"klingon", "klingon"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Canonical(tt.input); got != tt.expected {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		input    string
		expected language.Tag
	}{
		{"english", language.English},
		{"brazilian", language.BrazilianPortuguese},
		{"schinese", language.SimplifiedChinese},
		{"latam", language.LatinAmericanSpanish},
		{"sr-Latn", language.MustParse("sr-Latn")},
		{"klingon", language.Und},
		{"", language.Und},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Tag(tt.input); got.String() != tt.expected.String() {
				t.Errorf("Tag(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"english", "English"},
		{"koreana", "Korean"},
		{"tchinese", "Traditional Chinese"},
		{"", "Unknown"},
		{"  ", "Unknown"},
		{" pirate ", "pirate"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	if !Known("German") || Known("elvish") {
		t.Fatal("unexpected Known results")
	}
}
