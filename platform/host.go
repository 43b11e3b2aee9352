// Package platform runs the game in an ebiten window. It polls input,
// calls game.UpdateAndRender once per frame and presents the software
// buffer with WritePixels.
package platform

import (
	"fmt"
	"os"
	"time"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/game"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Host adapts game.State to ebiten.Game.
type Host struct {
	state  *game.State
	logger *log.Logger
	clock  *Clock
	in     input.Snapshot

	buf  *render.PixelBuffer
	rgba []byte

	width, height int
	fullscreen    bool
}

// NewHost wraps a started game.
func NewHost(state *game.State) *Host {
	return &Host{
		state: state,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "host",
		}),
		clock:  NewClock(time.Now()),
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

func (h *Host) Update() error {
	pollInput(&h.in)
	if h.fullscreenToggled() {
		h.fullscreen = !h.fullscreen
		ebiten.SetFullscreen(h.fullscreen)
		h.saveSettings()
	}

	if h.buf == nil || h.buf.Width() != h.width || h.buf.Height() != h.height {
		h.buf = render.NewPixelBuffer(h.width, h.height)
		h.rgba = make([]byte, 4*h.width*h.height)
	}

	scale := h.state.Scale()
	dt := h.clock.Tick(time.Now())
	info := h.state.UpdateAndRender(h.buf, &h.in, dt)
	if h.state.Scale() != scale {
		h.saveSettings()
	}

	ebiten.SetWindowTitle(fmt.Sprintf("frame: %.3f ms, %.2f fps || %s", h.clock.FrameMS(), h.clock.FPS(), info))
	return nil
}

func (h *Host) fullscreenToggled() bool {
	altEnter := h.in.Down(input.KeyAlt) && h.in.Pressed(input.KeyEnter)
	return altEnter || cfg.Pressed(&h.in, cfg.ActionFullscreen)
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.buf == nil {
		return
	}
	h.buf.CopyRGBA(h.rgba)
	screen.WritePixels(h.rgba)
}

// Layout keeps one buffer pixel per window pixel; the game does its own
// upscaling.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return h.width, h.height
}

// applySettings restores the saved window settings.
func (h *Host) applySettings() {
	saved, err := systems.LoadSettings()
	if err != nil {
		h.logger.Warn("Could not load settings", "err", err)
		return
	}
	if saved == nil {
		return
	}
	h.fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
	h.state.SetScale(saved.Scale)
}

func (h *Host) saveSettings() {
	err := systems.SaveSettings(&systems.SavedSettings{
		Fullscreen: h.fullscreen,
		Scale:      h.state.Scale(),
	})
	if err != nil {
		h.logger.Warn("Could not save settings", "err", err)
	}
}

// Run opens the window and blocks until it is closed.
func Run(state *game.State) error {
	h := NewHost(state)

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence(); err != nil {
		h.logger.Warn("Could not initialize persistence", "err", err)
	}
	h.applySettings()

	return ebiten.RunGame(h)
}
