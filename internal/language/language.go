package language

import (
	"strings"

	"golang.org/x/text/language"
)

type entry struct {
	name    string   // canonical caption language name
	bcp47   string   // BCP 47 tag
	code3   string   // ISO 639-2
	display string   // Human-readable name
	aliases []string // other accepted spellings
}

var languages = []entry{
	{"english", "en", "eng", "English", []string{"en"}},
	{"french", "fr", "fra", "French", []string{"fr", "fre"}},
	{"german", "de", "deu", "German", []string{"de", "ger"}},
	{"spanish", "es", "spa", "Spanish", []string{"es"}},
	{"latam", "es-419", "spa", "Spanish (Latin America)", []string{"es-419"}},
	{"italian", "it", "ita", "Italian", []string{"it"}},
	{"portuguese", "pt", "por", "Portuguese", []string{"pt", "pt-pt"}},
	{"brazilian", "pt-BR", "por", "Portuguese (Brazil)", []string{"pt-br"}},
	{"japanese", "ja", "jpn", "Japanese", []string{"ja"}},
	{"koreana", "ko", "kor", "Korean", []string{"ko", "korean"}},
	{"schinese", "zh-Hans", "zho", "Simplified Chinese", []string{"zh", "zh-cn", "zh-hans", "chinese"}},
	{"tchinese", "zh-Hant", "zho", "Traditional Chinese", []string{"zh-tw", "zh-hant"}},
	{"russian", "ru", "rus", "Russian", []string{"ru"}},
	{"polish", "pl", "pol", "Polish", []string{"pl"}},
	{"czech", "cs", "ces", "Czech", []string{"cs", "cze"}},
	{"dutch", "nl", "nld", "Dutch", []string{"nl", "dut"}},
	{"danish", "da", "dan", "Danish", []string{"da"}},
	{"finnish", "fi", "fin", "Finnish", []string{"fi"}},
	{"norwegian", "no", "nor", "Norwegian", []string{"no", "nb"}},
	{"swedish", "sv", "swe", "Swedish", []string{"sv"}},
	{"hungarian", "hu", "hun", "Hungarian", []string{"hu"}},
	{"greek", "el", "ell", "Greek", []string{"el", "gre"}},
	{"turkish", "tr", "tur", "Turkish", []string{"tr"}},
	{"ukrainian", "uk", "ukr", "Ukrainian", []string{"uk"}},
	{"bulgarian", "bg", "bul", "Bulgarian", []string{"bg"}},
	{"romanian", "ro", "ron", "Romanian", []string{"ro", "rum"}},
	{"thai", "th", "tha", "Thai", []string{"th"}},
	{"vietnamese", "vi", "vie", "Vietnamese", []string{"vi"}},
	{"arabic", "ar", "ara", "Arabic", []string{"ar"}},
}

// Index maps built at init time.
var (
	byName map[string]*entry
)

func init() {
	byName = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		byName[e.name] = e
		byName[strings.ToLower(e.display)] = e
		for _, alias := range e.aliases {
			byName[alias] = e
		}
	}
	// ISO 639-2 codes are shared by regional variants; the first entry wins.
	for i := range languages {
		e := &languages[i]
		if _, ok := byName[e.code3]; !ok {
			byName[e.code3] = e
		}
	}
}

func lookup(name string) *entry {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return nil
	}
	return byName[key]
}

// Canonical returns the caption language name for any recognized spelling.
// Unrecognized input is returned trimmed and lower-cased.
func Canonical(name string) string {
	if e := lookup(name); e != nil {
		return e.name
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// Tag returns the BCP 47 tag for name, or language.Und when it is not
// recognized. Unlisted names that are themselves valid tags parse directly.
func Tag(name string) language.Tag {
	if e := lookup(name); e != nil {
		return language.MustParse(e.bcp47)
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return language.Und
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Und
	}
	return tag
}

// DisplayName returns a human-readable language name. Returns "Unknown" for
// empty input and the trimmed input for anything unrecognized.
func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	if e := lookup(name); e != nil {
		return e.display
	}
	return strings.TrimSpace(name)
}

// Known reports whether name maps to a listed caption language.
func Known(name string) bool {
	return lookup(name) != nil
}
