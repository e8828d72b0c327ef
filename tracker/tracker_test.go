package tracker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ayoisaiah/fast/config"
	"github.com/ayoisaiah/fast/fasting"
)

func TestInitSurfacesStartErrors(t *testing.T) {
	cfg := &config.TrackerConfig{
		UserName:        "user-1",
		DefaultProtocol: fasting.ProtocolCustom,
		ProtocolSet:     true,
		PathToStatus:    filepath.Join(t.TempDir(), "status.json"),
	}

	// A custom protocol with no duration reaches the start command and
	// must fail. The store is never touched on this path.
	tr := New(nil, cfg, nil)

	if cmd := tr.Init(); cmd == nil {
		t.Fatal("Expected Init to return a command")
	}

	if !errors.Is(tr.Err(), fasting.ErrInvalidDuration) {
		t.Errorf(
			"Expected the failed start to be reported via Err, but got: %v",
			tr.Err(),
		)
	}
}
