package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/standmaker/stand"
)

var (
	panelBackground = color.RGBA{40, 40, 40, 255}
	labelColor      = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	titleColor      = &widget.LabelColor{Idle: color.RGBA{255, 214, 102, 255}, Disabled: color.Gray{Y: 140}}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newStandTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.RGBA{0, 0, 128, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{200, 220, 255, 255},
				SelectedBackground:  color.RGBA{180, 200, 255, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{220, 220, 220, 255}),
				Mask: solidNineSlice(color.RGBA{220, 220, 220, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:    solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed:  solidNineSlice(color.RGBA{160, 160, 160, 255}),
				Disabled: solidNineSlice(color.RGBA{90, 90, 90, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 150},
			},
		},
	}
}

// newTextInput is the white single-line input used by every form field.
func newTextInput(fontFace *text.Face, width int, onChange func(text string)) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if onChange != nil {
				onChange(args.InputText)
			}
		}),
	)
}

// newValueInput edits v. SetText fires a change event for the initial text,
// which is not forwarded to v so the save trigger only sees user edits.
func newValueInput(fontFace *text.Face, width int, v *stand.Value[string]) *widget.TextInput {
	input := newTextInput(fontFace, width, func(text string) {
		if text != v.Get() {
			v.Set(text)
		}
	})
	input.SetText(v.Get())
	return input
}

func newSectionLabel(fontFace *text.Face, c *widget.LabelColor) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text("", fontFace, c))
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(spacing),
			),
		),
	)
}
