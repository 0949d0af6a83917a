package vccd

// Container constants.
const (
	Magic              = "VCCD"
	Version            = 1
	BlockSize          = 8192
	HeaderSize         = 24
	DirectoryEntrySize = 4 + 4 + 2 + 2 // crc + block index + offset + length
	DirectoryAlignment = 512

	// MaxEncodedLength is the largest caption payload (UTF-16LE plus NUL) that
	// still fits an empty block under the rollover rule offset+length < BlockSize.
	MaxEncodedLength = BlockSize - 2
)

// Header mirrors the fixed 24-byte file header.
type Header struct {
	Version        int32
	BlockCount     int32
	BlockSize      int32
	DirectoryCount int32
	DataOffset     int32
}

// DirectoryEntry locates one caption inside the data blocks. Token is kept for
// reporting and is not encoded.
type DirectoryEntry struct {
	Token  string
	CRC32  uint32
	Block  uint32
	Offset uint16
	Length uint16
}

// File is the result of a build.
type File struct {
	Language string
	Header   Header
	Padding  int
	Entries  []DirectoryEntry
	Bytes    []byte
}

// Size returns the length of the compiled file in bytes.
func (f *File) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Bytes)
}

// DirectoryPadding returns the number of zero bytes between a directory of n
// entries and the data region. The result is always in [1, 512]; an already
// aligned directory receives a full 512 bytes.
func DirectoryPadding(n int) int {
	return DirectoryAlignment - (HeaderSize+n*DirectoryEntrySize)%DirectoryAlignment
}

// DataOffset returns the absolute offset of the first data block for n entries.
func DataOffset(n int) int {
	return HeaderSize + n*DirectoryEntrySize + DirectoryPadding(n)
}

// ExpectedSize returns the exact file size for n entries spread over blocks blocks.
func ExpectedSize(n, blocks int) int {
	return DataOffset(n) + blocks*BlockSize
}
