package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/standmaker/config"
	"github.com/milk9111/standmaker/data"
	"github.com/milk9111/standmaker/form"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Optional YAML config file")
	dataDir := flag.String("data", "", "Directory containing translations.json and base.svg (overrides config)")
	lang := flag.String("lang", "", "Starting language code; defaults to the first language of translations.json")
	out := flag.String("out", "", "Output SVG path (overrides config)")
	flag.Parse()

	log.Println("Stand maker starting...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if *out != "" {
		cfg.Output = *out
	}

	dir := data.Dir(cfg.DataDir)
	tr, err := loadTranslator(dir)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	f, err := form.New(form.Options{
		Translator: tr,
		Language:   cfg.Language,
		Stat:       cfg.Stat,
		Appearance: cfg.Appearance,
		Template:   dir.Template,
	})
	if err != nil {
		log.Fatalf("Failed to create form: %v", err)
	}
	log.Printf("Language: %s", f.Language())

	game, err := NewStandMaker(cfg, dir, f)
	if err != nil {
		log.Fatalf("Failed to build UI: %v", err)
	}
	if cfg.Watch {
		if err := game.Watch(); err != nil {
			log.Printf("Live reload disabled: %v", err)
		}
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Stand maker exited: %v", err)
	}
}
