package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/standmaker/form"
	"github.com/milk9111/standmaker/stand"
)

func addAppearanceSection(parent *widget.Container, fontFace *text.Face, f *form.Form) error {
	title := newSectionLabel(fontFace, titleColor)
	if err := f.Bind(form.KeyAppearanceTitle, func(s string) { title.Label = s }); err != nil {
		return err
	}
	parent.AddChild(title)

	fields := []struct {
		key   string
		value *stand.Value[string]
	}{
		{form.KeyContour, f.Appearance.Contour},
		{form.KeyPolyFill, f.Appearance.PolyFill},
		{form.KeyPolyStroke, f.Appearance.PolyStroke},
		{form.KeyPolyOpacity, f.Appearance.PolyOpacity},
	}
	for _, field := range fields {
		label := newSectionLabel(fontFace, labelColor)
		if err := f.Bind(field.key, func(s string) { label.Label = s }); err != nil {
			return err
		}
		parent.AddChild(label)
		parent.AddChild(newValueInput(fontFace, 180, field.value))
	}
	return nil
}
