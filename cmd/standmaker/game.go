package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/standmaker/config"
	"github.com/milk9111/standmaker/data"
	"github.com/milk9111/standmaker/form"
	"github.com/milk9111/standmaker/translations"
)

const previewScale = 2.5

// StandMaker is the ebiten game hosting the form.
type StandMaker struct {
	ui      *ebitenui.UI
	standUI *StandUI
	form    *form.Form
	preview *Preview

	dataDir data.Dir
	watcher *data.Watcher

	width, height int
}

func NewStandMaker(cfg config.Config, dir data.Dir, f *form.Form) (*StandMaker, error) {
	g := &StandMaker{
		form:    f,
		dataDir: dir,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}

	ui, standUI, err := BuildStandUI(f, cfg.Output, UIActions{
		OnSave:     g.save,
		OnCopy:     g.copySVG,
		OnBrowse:   g.browse,
		OnLanguage: g.setLanguage,
	})
	if err != nil {
		return nil, err
	}
	g.ui = ui
	g.standUI = standUI

	if err := f.Bind(form.KeyWindowTitle, ebiten.SetWindowTitle); err != nil {
		return nil, err
	}

	size := float32(data.TemplateSize) * previewScale
	g.preview = NewPreview(f, float32(g.width)-size-20, 40, previewScale)
	return g, nil
}

// Watch reloads the translation table whenever it changes on disk.
func (g *StandMaker) Watch() error {
	w, err := data.NewWatcher(g.dataDir)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *StandMaker) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *StandMaker) Update() error {
	g.ui.Update()
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		if g.form.Trigger.Enabled() {
			g.save()
		}
	}
	return nil
}

func (g *StandMaker) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *StandMaker) reload(name string) {
	switch name {
	case data.TranslationsFile:
		tr, err := loadTranslator(g.dataDir)
		if err != nil {
			log.Printf("Translations reload failed: %v", err)
			return
		}
		if err := g.form.SetTranslator(tr); err != nil {
			log.Printf("Translations reload failed: %v", err)
			return
		}
		g.standUI.SetLanguages(g.form.Languages(), g.form.Language())
		g.ui.Container.RequestRelayout()
		g.standUI.SetStatus(g.form.Status(form.StatusReloaded, nil))
		log.Printf("Translations reloaded: %s", g.dataDir.Path(name))
	case data.TemplateFile:
		// read again on the next export
		log.Printf("Template changed: %s", g.dataDir.Path(name))
	}
}

// setLanguage handles list selections, including the ones SetLanguages
// triggers itself; those name the active language and stop here.
func (g *StandMaker) setLanguage(code string) {
	if code == g.form.Language() {
		return
	}
	if err := g.form.SetLanguage(code); err != nil {
		log.Printf("Language change failed: %v", err)
		g.standUI.SetLanguages(g.form.Languages(), g.form.Language())
		return
	}
	g.ui.Container.RequestRelayout()
	log.Printf("Language: %s", code)
}

func (g *StandMaker) outputPath() string {
	return strings.TrimSpace(g.standUI.OutputInput.GetText())
}

func (g *StandMaker) save() {
	path := g.outputPath()
	if path == "" {
		g.fail(errors.New("no output file"))
		return
	}
	if err := g.form.Save(path); err != nil {
		g.fail(err)
		return
	}
	log.Printf("Saved stand: %s", path)
	g.standUI.SetStatus(g.form.Status(form.StatusSaved, map[string]any{"Path": path}))
}

func (g *StandMaker) copySVG() {
	out, err := g.form.Render()
	if err != nil {
		g.fail(err)
		return
	}
	if err := copyToClipboard(out); err != nil {
		g.fail(fmt.Errorf("clipboard: %w", err))
		return
	}
	g.standUI.SetStatus(g.form.Status(form.StatusCopied, nil))
}

func (g *StandMaker) browse() {
	title, err := g.form.Label(form.KeyOutputLabel)
	if err != nil {
		title = form.KeyOutputLabel
	}
	path, err := openSaveDialog(title)
	if err != nil {
		log.Printf("Save dialog: %v", err)
		return
	}
	g.standUI.OutputInput.SetText(path)
}

func (g *StandMaker) fail(err error) {
	log.Printf("Save failed: %v", err)
	g.standUI.SetStatus(g.form.Status(form.StatusFailed, map[string]any{"Error": err.Error()}))
}

func (g *StandMaker) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Dimgray)
	g.ui.Draw(screen)
	g.preview.Draw(screen)
}

func (g *StandMaker) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// loadTranslator reads translations.json from dir and checks that every
// language has every label the window shows.
func loadTranslator(dir data.Dir) (*translations.Translator, error) {
	raw, err := dir.Translations()
	if err != nil {
		return nil, err
	}
	table, err := translations.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(form.LabelKeys()...); err != nil {
		return nil, err
	}
	return translations.NewTranslator(table)
}
