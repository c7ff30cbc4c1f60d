package indicator

// Kind classifies a failure in the open, fetch, decode chain
type Kind int

const (
	DisplayOpenFailed Kind = iota + 1
	KeyboardError
	KeyboardNull
)

// KeyboardQuery names the protocol request used to fetch keyboard state
const KeyboardQuery = "xproto.GetKeyboardControl"

var kindMessages = map[Kind]string{
	DisplayOpenFailed: "Failed to open display",
	KeyboardError:     "Failed to grab the keyboard from X11 (" + KeyboardQuery + ")",
	KeyboardNull:      "Diligence: Keyboard pointer was null, should never happen",
}

var kindNames = map[Kind]string{
	DisplayOpenFailed: "DisplayOpenFailed",
	KeyboardError:     "KeyboardError",
	KeyboardNull:      "KeyboardNull",
}

// Name returns the identifier of the kind, e.g. "KeyboardError"
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "unknown keyboard indicator error"
}

// Sentinels for use with errors.Is
var (
	ErrDisplayOpenFailed = &Error{Kind: DisplayOpenFailed}
	ErrKeyboardError     = &Error{Kind: KeyboardError}
	ErrKeyboardNull      = &Error{Kind: KeyboardNull}
)

// Error is a classified failure. Its message is the user-facing text of its
// Kind; the platform cause is kept separately for debugging.
type Error struct {
	Kind Kind
	Err  error
}

// NewError creates an Error of the given kind wrapping cause (which may be nil)
func NewError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Cause returns the underlying platform error, for github.com/pkg/errors
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}
