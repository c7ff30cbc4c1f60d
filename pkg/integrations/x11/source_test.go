package x11

import (
	"errors"
	"os"
	"testing"

	"github.com/jezek/xgb/xproto"

	"github.com/actionsum/kbdleds/pkg/indicator"
)

func TestGetDisplayServer(t *testing.T) {
	source := &Source{}
	displayServer := source.GetDisplayServer()

	if displayServer != "x11" {
		t.Errorf("GetDisplayServer() = %s, want %s", displayServer, "x11")
	}
}

func TestRawFromReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    xproto.GetKeyboardControlReply
		wantCaps bool
		wantNum  bool
	}{
		{
			name:  "No LEDs",
			reply: xproto.GetKeyboardControlReply{LedMask: 0},
		},
		{
			name:     "Caps Lock",
			reply:    xproto.GetKeyboardControlReply{LedMask: 1},
			wantCaps: true,
		},
		{
			name:    "Num Lock",
			reply:   xproto.GetKeyboardControlReply{LedMask: 2},
			wantNum: true,
		},
		{
			name:     "Caps, Num and Scroll Lock",
			reply:    xproto.GetKeyboardControlReply{LedMask: 7, GlobalAutoRepeat: 1, BellPercent: 50, BellPitch: 400, BellDuration: 100},
			wantCaps: true,
			wantNum:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawFromReply(&tt.reply)
			if raw.LedMask != tt.reply.LedMask {
				t.Errorf("LedMask = %d, want %d", raw.LedMask, tt.reply.LedMask)
			}
			if raw.GlobalAutoRepeat != (tt.reply.GlobalAutoRepeat != 0) {
				t.Errorf("GlobalAutoRepeat = %v", raw.GlobalAutoRepeat)
			}
			if raw.BellPitch != tt.reply.BellPitch {
				t.Errorf("BellPitch = %d, want %d", raw.BellPitch, tt.reply.BellPitch)
			}

			state, err := indicator.Decode(raw)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if state.CapsLock != tt.wantCaps || state.NumLock != tt.wantNum {
				t.Errorf("state = %+v, want caps=%v num=%v", state, tt.wantCaps, tt.wantNum)
			}
		})
	}
}

func TestRawFromReplyCopiesAutoRepeats(t *testing.T) {
	reply := &xproto.GetKeyboardControlReply{AutoRepeats: make([]byte, 32)}
	reply.AutoRepeats[0] = 0xff

	raw := rawFromReply(reply)
	reply.AutoRepeats[0] = 0

	if len(raw.AutoRepeats) != 32 {
		t.Fatalf("len(AutoRepeats) = %d, want 32", len(raw.AutoRepeats))
	}
	if raw.AutoRepeats[0] != 0xff {
		t.Error("AutoRepeats aliases the reply buffer")
	}
}

func TestKeyboardControlReplies(t *testing.T) {
	replyErr := errors.New("BadImplementation {NiceName: Implementation Sequence: 1}")

	tests := []struct {
		name     string
		query    func() (*xproto.GetKeyboardControlReply, error)
		wantErr  error
		wantMask uint32
	}{
		{
			name: "Reply error",
			query: func() (*xproto.GetKeyboardControlReply, error) {
				return nil, replyErr
			},
			wantErr: indicator.ErrKeyboardError,
		},
		{
			name: "Nil reply without error",
			query: func() (*xproto.GetKeyboardControlReply, error) {
				return nil, nil
			},
			wantErr: indicator.ErrKeyboardError,
		},
		{
			name: "Valid reply",
			query: func() (*xproto.GetKeyboardControlReply, error) {
				return &xproto.GetKeyboardControlReply{LedMask: 2}, nil
			},
			wantMask: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &Source{query: tt.query}

			raw, err := source.KeyboardControl()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("KeyboardControl() error = %v, want %v", err, tt.wantErr)
				}
				if err.Error() != "Failed to grab the keyboard from X11 (xproto.GetKeyboardControl)" {
					t.Errorf("KeyboardControl() message = %q", err.Error())
				}
				if raw != nil {
					t.Errorf("KeyboardControl() returned record %+v with error", raw)
				}
				return
			}

			if err != nil {
				t.Fatalf("KeyboardControl() error: %v", err)
			}
			if raw.LedMask != tt.wantMask {
				t.Errorf("LedMask = %d, want %d", raw.LedMask, tt.wantMask)
			}
		})
	}

	source := &Source{query: func() (*xproto.GetKeyboardControlReply, error) { return nil, replyErr }}
	_, err := source.KeyboardControl()
	if errors.Unwrap(err) != replyErr {
		t.Errorf("cause = %v, want %v", errors.Unwrap(err), replyErr)
	}
}

func TestKeyboardControlAfterClose(t *testing.T) {
	source := &Source{query: func() (*xproto.GetKeyboardControlReply, error) {
		return &xproto.GetKeyboardControlReply{}, nil
	}}
	source.Close()

	if _, err := source.KeyboardControl(); !errors.Is(err, indicator.ErrKeyboardError) {
		t.Errorf("KeyboardControl() after Close error = %v, want KeyboardError", err)
	}
}

func TestNewSourceBadDisplay(t *testing.T) {
	_, err := NewSource("nonexistent-host-xyz.invalid:99")
	if err == nil {
		t.Fatal("NewSource() with unreachable display returned no error")
	}
	if !errors.Is(err, indicator.ErrDisplayOpenFailed) {
		t.Errorf("NewSource() error = %v, want DisplayOpenFailed", err)
	}
	if err.Error() != "Failed to open display" {
		t.Errorf("NewSource() message = %q", err.Error())
	}
}

func TestKeyboardControl(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("X11 display not available on this system")
	}

	source, err := NewSource("")
	if err != nil {
		t.Skipf("X11 display not reachable: %v", err)
	}
	defer source.Close()

	raw, err := source.KeyboardControl()
	if err != nil {
		t.Fatalf("KeyboardControl() error: %v", err)
	}

	state, err := indicator.Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	t.Logf("LED mask: %#b", raw.LedMask)
	t.Logf("State: %s", state)
}

func TestClose(t *testing.T) {
	source := &Source{}
	if err := source.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}

func TestSourceInterface(t *testing.T) {
	var _ indicator.Source = (*Source)(nil)
	var _ indicator.Opener = Open
}
