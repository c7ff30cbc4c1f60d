package indicator

// RawState is the keyboard control record returned by the display server
type RawState struct {
	GlobalAutoRepeat bool
	LedMask          uint32 // bit 0 = Caps Lock, bit 1 = Num Lock
	KeyClickPercent  uint8
	BellPercent      uint8
	BellPitch        uint16 // Hz
	BellDuration     uint16 // milliseconds
	AutoRepeats      []byte // one bit per keycode
}

// Source is the interface that all keyboard state implementations must satisfy
type Source interface {
	// KeyboardControl queries the current keyboard control state
	KeyboardControl() (*RawState, error)

	// GetDisplayServer returns the display server type ("x11")
	GetDisplayServer() string

	// Close releases the connection to the display server
	Close() error
}

// Opener opens a Source for the named display; an empty name selects the platform default
type Opener func(displayName string) (Source, error)
