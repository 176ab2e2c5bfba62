package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/catsanzsh/ultraland/audio"
	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/config"
	"github.com/catsanzsh/ultraland/game"
	"github.com/catsanzsh/ultraland/screen"
)

// App is the Ebitengine shell around the game machine: it polls the
// keyboard, presents the 160x144 framebuffer with integer scaling, and
// handles the pause overlay and config reloads.
type App struct {
	machine *game.Machine
	fb      *screen.Framebuffer
	frame   *ebiten.Image
	pix     []byte

	cfg     *config.Config
	cfgPath string
	watcher *config.Watcher
	bank    *audio.Bank

	paused  bool
	ui      *ebitenui.UI
	showFPS bool
}

func NewApp(machine *game.Machine, bank *audio.Bank, cfg *config.Config, cfgPath string, watcher *config.Watcher) *App {
	a := &App{
		machine: machine,
		fb:      screen.NewFramebuffer(),
		frame:   ebiten.NewImage(common.ScreenWidth, common.ScreenHeight),
		pix:     make([]byte, common.ScreenWidth*common.ScreenHeight*4),
		cfgPath: cfgPath,
		watcher: watcher,
		bank:    bank,
	}
	a.ui = NewPauseUI(a)
	a.applyConfig(cfg)
	return a
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.fb.SetPalette(screen.PaletteByName(cfg.Palette))
	a.showFPS = cfg.ShowFPS
	if a.bank != nil {
		a.bank.SetVolume(cfg.Volume)
		a.bank.SetMuted(cfg.Muted)
	}
}

func (a *App) Update() error {
	a.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showFPS = !a.showFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.paused = !a.paused
	}

	if a.paused {
		a.ui.Update()
		return nil
	}

	a.machine.Update(pollInput())
	return nil
}

// pollConfig drains watcher events and reloads the config file on edit.
// A malformed edit is logged and the running config stays in effect.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			log.Printf("config reloaded from %s", path)
			a.applyConfig(cfg)
		case err, ok := <-a.watcher.Errors:
			if ok && err != nil {
				log.Printf("config watch: %v", err)
			}
		default:
			return
		}
	}
}

func pollInput() game.Input {
	in := game.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Cancel:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for i := 0; i < common.LevelCount; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			in.SelectLevel = i + 1
		}
	}
	return in
}

func (a *App) Draw(dst *ebiten.Image) {
	a.machine.Draw(a.fb)
	a.fb.RGBA(a.pix)
	a.frame.WritePixels(a.pix)

	dst.Fill(colornames.Black)

	sw, sh := dst.Bounds().Dx(), dst.Bounds().Dy()
	scale := sw / common.ScreenWidth
	if s := sh / common.ScreenHeight; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(
		float64(sw-common.ScreenWidth*scale)/2,
		float64(sh-common.ScreenHeight*scale)/2,
	)
	dst.DrawImage(a.frame, op)

	if a.showFPS {
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if a.paused {
		a.ui.Draw(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
