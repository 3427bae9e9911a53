package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	cfg "github.com/dmac/tilegame/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	buttonPressed = color.RGBA{40, 40, 60, 255}
	dimText       = color.RGBA{180, 180, 180, 255}
)

// TitleUI is the level picker shown before play starts.
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay        func(index int)
	OnToggleDebug func() bool
	OnQuit        func()

	debugLabel *widget.Label
	statsLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI builds a menu with one button per level name.
func NewTitleUI(levelNames []string, debug bool, onPlay func(int), onToggleDebug func() bool, onQuit func()) *TitleUI {
	ui := &TitleUI{
		OnPlay:        onPlay,
		OnToggleDebug: onToggleDebug,
		OnQuit:        onQuit,
	}
	ui.loadFonts()
	ui.buildUI(levelNames, debug)
	return ui
}

func (ui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	size := cfg.UI.MenuFontSize
	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: size * 1.6}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: size}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: size * 0.7}
}

func (ui *TitleUI) buildUI(levelNames []string, debug bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, name := range levelNames {
		index := i
		contentContainer.AddChild(ui.newButton(name, ui.normalFace, func() {
			if ui.OnPlay != nil {
				ui.OnPlay(index)
			}
		}))
	}

	contentContainer.AddChild(ui.buildDebugRow(debug))

	ui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: dimText,
		}),
	)
	contentContainer.AddChild(ui.statsLabel)

	contentContainer.AddChild(ui.newButton("Quit", ui.normalFace, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildDebugRow(debug bool) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	row.AddChild(ui.newButton("Debug overlay", ui.smallFace, func() {
		if ui.OnToggleDebug != nil {
			ui.SetDebug(ui.OnToggleDebug())
		}
	}))

	ui.debugLabel = widget.NewLabel(
		widget.LabelOpts.Text(onOff(debug), &ui.smallFace, &widget.LabelColor{
			Idle: dimText,
		}),
	)
	row.AddChild(ui.debugLabel)
	return row
}

func (ui *TitleUI) newButton(label string, face text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.DarkBlue),
			Hover:   image.NewNineSliceColor(cfg.LightBlue),
			Pressed: image.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{
			Idle: cfg.White,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetDebug updates the overlay indicator next to the toggle button.
func (ui *TitleUI) SetDebug(enabled bool) {
	if ui.debugLabel != nil {
		ui.debugLabel.Label = onOff(enabled)
	}
}

// SetEnemiesSlain shows the lifetime kill count.
func (ui *TitleUI) SetEnemiesSlain(n int) {
	if ui.statsLabel != nil {
		ui.statsLabel.Label = fmt.Sprintf("enemies slain: %d", n)
	}
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}

func (ui *TitleUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
