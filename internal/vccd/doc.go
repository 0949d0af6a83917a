// Package vccd compiles a caption set into the VCCD closed-caption container.
//
// A compiled file is a 24-byte header, a directory of 12-byte entries, zero
// padding up to the next 512-byte boundary, and a run of 8192-byte data
// blocks. Each directory entry names a caption by the IEEE CRC-32 of its
// lower-cased token and points at the UTF-16LE, NUL-terminated text inside one
// block. A caption never straddles blocks: when the next caption does not fit,
// the current block is zero-padded and a fresh one is opened.
//
// Layout, all integers little-endian:
//
//	0   magic        "VCCD"
//	4   version      int32 (1)
//	8   blockCount   int32, patched once encoding finishes
//	12  blockSize    int32 (8192)
//	16  dirCount     int32
//	20  dataOffset   int32
//	24  directory    dirCount x {crc32 u32, block u32, offset u16, length u16}
//	    padding      512 - (24+12*dirCount)%512 zero bytes, never zero
//	    blocks       blockCount x 8192 bytes
//
// Directory order is the ordinal (byte) order of the lower-cased tokens. The
// consuming runtime sorts the same way, so locale collation must never be used
// here.
//
// Build and Compile are pure and safe for concurrent use on independent sets.
// Layout mismatches detected while encoding are reported as *LayoutError and
// indicate a defect in this package, not bad input.
package vccd
