package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/standmaker/form"
	"github.com/milk9111/standmaker/stand"
)

func addStatsSection(parent *widget.Container, fontFace *text.Face, f *form.Form) error {
	title := newSectionLabel(fontFace, titleColor)
	if err := f.Bind(form.KeyStatsTitle, func(s string) { title.Label = s }); err != nil {
		return err
	}
	parent.AddChild(title)

	for _, stat := range stand.AllStats {
		label := newSectionLabel(fontFace, labelColor)
		if err := f.Bind(stat.String(), func(s string) { label.Label = s }); err != nil {
			return err
		}
		parent.AddChild(label)
		parent.AddChild(newValueInput(fontFace, 80, f.Stats.Value(stat)))
	}
	return nil
}
