package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/standmaker/form"
)

func addLanguageSection(parent *widget.Container, fontFace *text.Face, f *form.Form, ui *StandUI, onLanguage func(code string)) error {
	title := newSectionLabel(fontFace, titleColor)
	if err := f.Bind(form.KeyLanguageTitle, func(s string) { title.Label = s }); err != nil {
		return err
	}
	parent.AddChild(title)

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if code, ok := e.(string); ok {
				return code
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if onLanguage == nil {
				return
			}
			if code, ok := args.Entry.(string); ok {
				onLanguage(code)
			}
		}),
	)
	list.GetWidget().MinHeight = 90
	parent.AddChild(list)
	ui.LanguageList = list
	return nil
}
