package indicator

import (
	"fmt"
	"log"
)

const (
	capsLockBit uint32 = 1 << 0
	numLockBit  uint32 = 1 << 1
)

// State is the decoded Caps Lock / Num Lock indicator state
type State struct {
	CapsLock bool
	NumLock  bool
}

// Decode extracts the indicator bits from a raw keyboard record.
// Bits other than Caps Lock and Num Lock are ignored.
func Decode(raw *RawState) (State, error) {
	log.Printf("decode(%p)", raw)
	if raw == nil {
		return State{}, NewError(KeyboardNull, nil)
	}

	return FromMask(raw.LedMask), nil
}

// FromMask builds a State from an LED bitmask
func FromMask(mask uint32) State {
	return State{
		CapsLock: mask&capsLockBit == capsLockBit,
		NumLock:  mask&numLockBit == numLockBit,
	}
}

// Mask returns the LED bitmask equivalent of the state
func (s State) Mask() uint32 {
	var mask uint32
	if s.CapsLock {
		mask |= capsLockBit
	}
	if s.NumLock {
		mask |= numLockBit
	}
	return mask
}

func (s State) String() string {
	return fmt.Sprintf("capslock=%t;numlock=%t", s.CapsLock, s.NumLock)
}
