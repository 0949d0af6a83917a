package vccd

import "encoding/binary"

// accumulator is an owned, growable little-endian byte buffer. Fields that are
// only known later are reserved and patched in place.
type accumulator struct {
	buf []byte
}

func newAccumulator(capacity int) *accumulator {
	return &accumulator{buf: make([]byte, 0, capacity)}
}

func (a *accumulator) len() int { return len(a.buf) }

func (a *accumulator) write(p []byte) int {
	a.buf = append(a.buf, p...)
	return len(p)
}

func (a *accumulator) writeString(s string) int {
	a.buf = append(a.buf, s...)
	return len(s)
}

func (a *accumulator) putUint16(v uint16) {
	a.buf = binary.LittleEndian.AppendUint16(a.buf, v)
}

func (a *accumulator) putUint32(v uint32) {
	a.buf = binary.LittleEndian.AppendUint32(a.buf, v)
}

func (a *accumulator) putInt32(v int32) {
	a.putUint32(uint32(v))
}

// reserveInt32 appends a zero int32 and returns its position for patchInt32.
func (a *accumulator) reserveInt32() int {
	pos := len(a.buf)
	a.putInt32(0)
	return pos
}

func (a *accumulator) patchInt32(pos int, v int32) {
	binary.LittleEndian.PutUint32(a.buf[pos:pos+4], uint32(v))
}

func (a *accumulator) zeros(n int) {
	for range n {
		a.buf = append(a.buf, 0)
	}
}

func (a *accumulator) reset() {
	a.buf = a.buf[:0]
}

// bytes hands out the underlying slice; the accumulator must not be written
// to afterwards.
func (a *accumulator) bytes() []byte { return a.buf }
