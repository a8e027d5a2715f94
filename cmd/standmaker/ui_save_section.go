package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/standmaker/form"
)

func addSaveSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, f *form.Form, ui *StandUI, output string, actions UIActions) error {
	outputLabel := newSectionLabel(fontFace, labelColor)
	if err := f.Bind(form.KeyOutputLabel, func(s string) { outputLabel.Label = s }); err != nil {
		return err
	}
	parent.AddChild(outputLabel)

	outputRow := newRow(6)
	ui.OutputInput = newTextInput(fontFace, 180, nil)
	ui.OutputInput.SetText(output)
	outputRow.AddChild(ui.OutputInput)
	outputRow.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("...", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if actions.OnBrowse != nil {
				actions.OnBrowse()
			}
		}),
	))
	parent.AddChild(outputRow)

	buttonsRow := newRow(6)
	ui.SaveButton = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if actions.OnSave != nil {
				actions.OnSave()
			}
		}),
	)
	if err := f.Bind(form.KeySaveButton, ui.SaveButton.SetText); err != nil {
		return err
	}
	ui.SetSaveEnabled(f.Trigger.Enabled())
	f.Trigger.OnEnabled(func() { ui.SetSaveEnabled(true) })

	ui.CopyButton = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if actions.OnCopy != nil {
				actions.OnCopy()
			}
		}),
	)
	if err := f.Bind(form.KeyCopyButton, ui.CopyButton.SetText); err != nil {
		return err
	}
	buttonsRow.AddChild(ui.SaveButton)
	buttonsRow.AddChild(ui.CopyButton)
	parent.AddChild(buttonsRow)

	ui.Status = newSectionLabel(fontFace, labelColor)
	parent.AddChild(ui.Status)
	return nil
}
