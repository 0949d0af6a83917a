package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"vccd/internal/caption"
	"vccd/internal/fileutil"
	"vccd/internal/keyvalues"
)

// Supported source encodings.
const (
	EncodingAuto    = "auto"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingUTF8    = "utf-8"
)

var (
	// ErrNoTokens is returned when a document has no lang/Tokens block.
	ErrNoTokens = errors.New("source: no lang.Tokens block")
	// ErrNestedToken is returned when a token maps to a block instead of text.
	ErrNestedToken = errors.New("source: token value is a block")
	// ErrUnsupportedEncoding is returned for an unknown encoding name.
	ErrUnsupportedEncoding = errors.New("source: unsupported encoding")
	// ErrInvalidEncoding is returned when bytes are not valid in the chosen encoding.
	ErrInvalidEncoding = errors.New("source: invalid text encoding")
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// File is a loaded caption source.
type File struct {
	Path     string
	Encoding string
	SHA256   string
	Set      *caption.Set
}

// Load reads, decodes and parses the caption source at path.
func Load(path, enc string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	text, detected, err := Decode(raw, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	set, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &File{
		Path:     path,
		Encoding: detected,
		SHA256:   fileutil.SHA256Hex(raw),
		Set:      set,
	}, nil
}

// Decode converts raw source bytes to UTF-8 text. With EncodingAuto the byte
// order mark decides; without one, a NUL in the high byte of the first code
// unit selects UTF-16, otherwise UTF-8 is assumed. It returns the encoding
// that was used.
func Decode(raw []byte, enc string) (string, string, error) {
	enc = strings.ToLower(strings.TrimSpace(enc))
	if enc == "" || enc == EncodingAuto {
		enc = sniff(raw)
	}

	switch enc {
	case EncodingUTF8, "utf8":
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return "", EncodingUTF8, ErrInvalidEncoding
		}
		return string(raw), EncodingUTF8, nil
	case EncodingUTF16LE, "utf16le":
		text, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), raw)
		return text, EncodingUTF16LE, err
	case EncodingUTF16BE, "utf16be":
		text, err := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.UseBOM), raw)
		return text, EncodingUTF16BE, err
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

func sniff(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, []byte{0xff, 0xfe}):
		return EncodingUTF16LE
	case bytes.HasPrefix(raw, []byte{0xfe, 0xff}):
		return EncodingUTF16BE
	case bytes.HasPrefix(raw, utf8BOM):
		return EncodingUTF8
	case len(raw) >= 2 && raw[0] != 0 && raw[1] == 0:
		return EncodingUTF16LE
	case len(raw) >= 2 && raw[0] == 0 && raw[1] != 0:
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

func decodeWith(e encoding.Encoding, raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte count %d for UTF-16", ErrInvalidEncoding, len(raw))
	}
	out, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}

// Parse maps a KeyValues caption document onto a caption set. Block and key
// names are matched case-insensitively; within Tokens a repeated token keeps
// the last value.
func Parse(text string) (*caption.Set, error) {
	root, err := keyvalues.Parse(text)
	if err != nil {
		return nil, err
	}
	lang := root.Child("lang")
	if lang == nil || !lang.Block {
		return nil, ErrNoTokens
	}
	tokens := lang.Child("Tokens")
	if tokens == nil || !tokens.Block {
		return nil, ErrNoTokens
	}

	var name string
	if n := lang.Child("Language"); n != nil && !n.Block {
		name = n.Value
	}

	set := caption.NewSet(name)
	for _, node := range tokens.Children {
		if node.Block {
			return nil, fmt.Errorf("%w: %q on line %d", ErrNestedToken, node.Key, node.Line)
		}
		set.Set(node.Key, node.Value)
	}
	return set, nil
}
