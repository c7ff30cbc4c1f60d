package x11

import (
	"errors"
	"io"
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/actionsum/kbdleds/pkg/indicator"
)

// Source implements indicator.Source over a core X11 protocol connection
type Source struct {
	conn  *xgb.Conn
	query func() (*xproto.GetKeyboardControlReply, error)
}

// SetLogOutput redirects xgb's internal logger, which otherwise writes to stderr
func SetLogOutput(w io.Writer) {
	xgb.Logger.SetOutput(w)
}

// NewSource connects to the named X display. An empty name uses $DISPLAY.
func NewSource(displayName string) (*Source, error) {
	log.Printf("display(%q)", displayName)

	conn, err := xgb.NewConnDisplay(displayName)
	if err != nil {
		return nil, indicator.NewError(indicator.DisplayOpenFailed, err)
	}
	if conn == nil {
		return nil, indicator.NewError(indicator.DisplayOpenFailed, nil)
	}

	s := &Source{conn: conn}
	s.query = s.getKeyboardControl
	return s, nil
}

// Open is an indicator.Opener backed by NewSource
func Open(displayName string) (indicator.Source, error) {
	src, err := NewSource(displayName)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// GetDisplayServer returns "x11"
func (s *Source) GetDisplayServer() string {
	return "x11"
}

// KeyboardControl issues a GetKeyboardControl request and waits for the reply
func (s *Source) KeyboardControl() (*indicator.RawState, error) {
	log.Printf("keyboardControl(%p)", s.conn)

	if s.query == nil {
		return nil, indicator.NewError(indicator.KeyboardError, errors.New("source is closed"))
	}

	reply, err := s.query()
	if err != nil {
		return nil, indicator.NewError(indicator.KeyboardError, err)
	}
	if reply == nil {
		return nil, indicator.NewError(indicator.KeyboardError, nil)
	}

	return rawFromReply(reply), nil
}

func (s *Source) getKeyboardControl() (*xproto.GetKeyboardControlReply, error) {
	return xproto.GetKeyboardControl(s.conn).Reply()
}

// rawFromReply copies the wire reply into a RawState owned by the caller
func rawFromReply(reply *xproto.GetKeyboardControlReply) *indicator.RawState {
	repeats := make([]byte, len(reply.AutoRepeats))
	copy(repeats, reply.AutoRepeats)

	return &indicator.RawState{
		GlobalAutoRepeat: reply.GlobalAutoRepeat != 0,
		LedMask:          reply.LedMask,
		KeyClickPercent:  reply.KeyClickPercent,
		BellPercent:      reply.BellPercent,
		BellPitch:        reply.BellPitch,
		BellDuration:     reply.BellDuration,
		AutoRepeats:      repeats,
	}
}

// Close closes the X connection
func (s *Source) Close() error {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.query = nil
	return nil
}
