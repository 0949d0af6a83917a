package vccd

import (
	"hash/crc32"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"vccd/internal/caption"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type sortedEntry struct {
	key   string
	token string
	text  string
}

// Compile encodes set and returns the file bytes.
func Compile(set *caption.Set) ([]byte, error) {
	file, err := Build(set)
	if err != nil {
		return nil, err
	}
	return file.Bytes, nil
}

// Build encodes set and returns the bytes together with the header and
// directory that describe them.
func Build(set *caption.Set) (*File, error) {
	if set == nil {
		return nil, ErrNilSet
	}

	entries := sortEntries(set.Entries())
	for _, e := range entries {
		if err := checkCaption(e); err != nil {
			return nil, err
		}
	}

	n := len(entries)
	padding := DirectoryPadding(n)
	dataOffset := DataOffset(n)

	out := newAccumulator(dataOffset)
	out.writeString(Magic)
	out.putInt32(Version)
	blockCountPos := out.reserveInt32()
	out.putInt32(BlockSize)
	out.putInt32(int32(n))
	out.putInt32(int32(dataOffset))
	if out.len() != HeaderSize {
		return nil, layoutError("header", out.len(), HeaderSize)
	}

	enc := utf16LE.NewEncoder()
	data := newAccumulator(0)
	block := newAccumulator(BlockSize)
	blocks := 0
	directory := make([]DirectoryEntry, 0, n)

	for _, e := range entries {
		length := EncodedLength(e.text)
		if block.len()+length >= BlockSize {
			if err := closeBlock(data, block); err != nil {
				return nil, err
			}
			blocks++
		}

		offset := block.len()
		if err := writeCaption(enc, block, e.text); err != nil {
			return nil, err
		}
		if written := block.len() - offset; written != length {
			return nil, layoutError("caption "+e.token, written, length)
		}

		directory = append(directory, DirectoryEntry{
			Token:  e.token,
			CRC32:  crc32.ChecksumIEEE([]byte(e.key)),
			Block:  uint32(blocks),
			Offset: uint16(offset),
			Length: uint16(length),
		})
	}

	if block.len() > 0 {
		if err := closeBlock(data, block); err != nil {
			return nil, err
		}
		blocks++
	}

	for _, d := range directory {
		out.putUint32(d.CRC32)
		out.putUint32(d.Block)
		out.putUint16(d.Offset)
		out.putUint16(d.Length)
	}
	out.zeros(padding)
	if out.len() != dataOffset {
		return nil, layoutError("directory", out.len(), dataOffset)
	}

	out.write(data.bytes())
	if expected := ExpectedSize(n, blocks); out.len() != expected {
		return nil, layoutError("file size", out.len(), expected)
	}
	out.patchInt32(blockCountPos, int32(blocks))

	return &File{
		Language: set.Language,
		Header: Header{
			Version:        Version,
			BlockCount:     int32(blocks),
			BlockSize:      BlockSize,
			DirectoryCount: int32(n),
			DataOffset:     int32(dataOffset),
		},
		Padding: padding,
		Entries: directory,
		Bytes:   out.bytes(),
	}, nil
}

// EncodedLength returns the number of bytes text occupies in a block: two
// bytes per UTF-16 code unit plus the NUL terminator.
func EncodedLength(text string) int {
	units := 0
	for _, r := range text {
		units += utf16.RuneLen(r)
	}
	return units*2 + 2
}

// TokenHash returns the directory hash for token.
func TokenHash(token string) uint32 {
	return crc32.ChecksumIEEE([]byte(strings.ToLower(token)))
}

// sortEntries orders entries by lower-cased token using plain byte comparison.
// Case variants of the same token keep their declaration order.
func sortEntries(in []caption.Entry) []sortedEntry {
	out := make([]sortedEntry, len(in))
	for i, e := range in {
		out[i] = sortedEntry{key: strings.ToLower(e.Token), token: e.Token, text: e.Text}
	}
	slices.SortStableFunc(out, func(a, b sortedEntry) int {
		return strings.Compare(a.key, b.key)
	})
	return out
}

func checkCaption(e sortedEntry) error {
	if !utf8.ValidString(e.text) {
		return &CaptionError{Token: e.token, Err: ErrInvalidText}
	}
	if length := EncodedLength(e.text); length > MaxEncodedLength {
		return &CaptionError{Token: e.token, Length: length, Err: ErrCaptionTooLarge}
	}
	return nil
}

func writeCaption(enc *encoding.Encoder, block *accumulator, text string) error {
	payload, err := enc.Bytes([]byte(text))
	if err != nil {
		return err
	}
	block.write(payload)
	block.putUint16(0)
	return nil
}

// closeBlock zero-pads block to BlockSize, appends it to data and empties it.
func closeBlock(data, block *accumulator) error {
	block.zeros(BlockSize - block.len())
	before := data.len()
	data.write(block.bytes())
	if appended := data.len() - before; appended != BlockSize {
		return layoutError("block", appended, BlockSize)
	}
	block.reset()
	return nil
}
