package main

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/standmaker/form"
)

// BuildStandUI lays out the form: stats on the left, appearance, language and
// save controls in the middle. The right side is left free for the preview.
func BuildStandUI(f *form.Form, output string, actions UIActions) (*ebitenui.UI, *StandUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, nil, fmt.Errorf("load font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newStandTheme(&fontFace)

	standUI := &StandUI{}

	statsPanel := newPanel(160)
	if err := addStatsSection(statsPanel, &fontFace, f); err != nil {
		return nil, nil, err
	}

	controlsPanel := newPanel(220)
	if err := addAppearanceSection(controlsPanel, &fontFace, f); err != nil {
		return nil, nil, err
	}
	if err := addLanguageSection(controlsPanel, &fontFace, f, standUI, actions.OnLanguage); err != nil {
		return nil, nil, err
	}
	if err := addSaveSection(controlsPanel, ui.PrimaryTheme, &fontFace, f, standUI, output, actions); err != nil {
		return nil, nil, err
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panels := newRow(0)
	panels.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	panels.AddChild(statsPanel)
	panels.AddChild(controlsPanel)
	root.AddChild(panels)
	ui.Container = root

	standUI.SetLanguages(f.Languages(), f.Language())
	return ui, standUI, nil
}

func newPanel(width int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 400),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
}
