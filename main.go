package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/catsanzsh/ultraland/audio"
	"github.com/catsanzsh/ultraland/common"
	"github.com/catsanzsh/ultraland/config"
	"github.com/catsanzsh/ultraland/game"
)

func main() {
	cfgPath := flag.String("config", "ultraland.yaml", "path to the config file")
	scale := flag.Int("scale", 0, "window scale override (1-10)")
	palette := flag.String("palette", "", "palette override: green, gray or pocket")
	mute := flag.Bool("mute", false, "start muted")
	unlock := flag.Bool("unlock", false, "start with all levels unlocked")
	level := flag.Int("level", 0, "jump straight into a level (1-5)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *palette != "" {
		cfg.Palette = *palette
	}
	if *mute {
		cfg.Muted = true
	}

	ctx := eaudio.NewContext(audio.SampleRate)
	bank, err := audio.NewBank(ctx)
	if err != nil {
		log.Fatal(err)
	}

	machine := game.NewMachine(bank)
	if *unlock {
		machine.UnlockAll()
	}
	if *level > 0 {
		machine.StartLevel(*level)
	}

	watcher, err := config.NewWatcher(*cfgPath)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
		watcher = nil
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Scale*common.ScreenWidth, cfg.Scale*common.ScreenHeight)
	ebiten.SetWindowTitle("ultraland")

	app := NewApp(machine, bank, cfg, *cfgPath, watcher)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
