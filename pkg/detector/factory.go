package detector

import (
	"log"
	"os"

	"github.com/actionsum/kbdleds/pkg/indicator"
	"github.com/actionsum/kbdleds/pkg/integrations/x11"
)

// New opens a keyboard indicator source on the named display
func New(displayName string) (indicator.Source, error) {
	log.Printf("Opening keyboard source (session: %s)", DetectDisplayServer())
	return x11.Open(displayName)
}

func DetectDisplayServer() string {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv("DISPLAY")

	if sessionType == "wayland" || waylandDisplay != "" {
		return "wayland"
	}

	if sessionType == "x11" || x11Display != "" {
		return "x11"
	}

	return "unknown"
}
