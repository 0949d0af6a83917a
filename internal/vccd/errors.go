package vccd

import (
	"errors"
	"fmt"
)

var (
	// ErrLayout marks an internal-consistency violation: a computed offset,
	// length or size disagreed with its predicted value.
	ErrLayout = errors.New("vccd: layout mismatch")
	// ErrNilSet is returned when Build is called without a caption set.
	ErrNilSet = errors.New("vccd: nil caption set")
	// ErrCaptionTooLarge is returned for a caption that cannot fit in a single block.
	ErrCaptionTooLarge = errors.New("vccd: caption exceeds block capacity")
	// ErrInvalidText is returned for caption text that is not valid UTF-8.
	ErrInvalidText = errors.New("vccd: caption text is not valid UTF-8")
)

// LayoutError describes where the encoder's bookkeeping went wrong.
type LayoutError struct {
	Stage string
	Got   int
	Want  int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %s: got %d, want %d", ErrLayout, e.Stage, e.Got, e.Want)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }

func layoutError(stage string, got, want int) error {
	return &LayoutError{Stage: stage, Got: got, Want: want}
}

// CaptionError rejects a single caption.
type CaptionError struct {
	Token  string
	Length int
	Err    error
}

func (e *CaptionError) Error() string {
	if errors.Is(e.Err, ErrCaptionTooLarge) {
		return fmt.Sprintf("caption %q: %v (%d bytes encoded, max %d)", e.Token, e.Err, e.Length, MaxEncodedLength)
	}
	return fmt.Sprintf("caption %q: %v", e.Token, e.Err)
}

func (e *CaptionError) Unwrap() error { return e.Err }
