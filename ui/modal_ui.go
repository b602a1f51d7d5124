package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ModalUI shows the session's dialogs one at a time. It implements the
// modal half of the session's UI collaborator.
type ModalUI struct {
	UI *ebitenui.UI

	// OnAction is called with the dialog title and the chosen action.
	OnAction func(title, action string)

	current *session.Modal
	queue   []session.Modal

	titleFace  text.Face
	normalFace text.Face
}

// NewModalUI creates a modal UI with nothing showing
func NewModalUI(onAction func(title, action string)) *ModalUI {
	mui := &ModalUI{OnAction: onAction}
	mui.loadFonts()
	return mui
}

func (mui *ModalUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

// PresentModal shows m, or queues it behind the dialog already showing.
func (mui *ModalUI) PresentModal(m session.Modal) {
	if mui.current != nil {
		mui.queue = append(mui.queue, m)
		return
	}
	mui.show(m)
}

// IsOpen reports whether a dialog is showing.
func (mui *ModalUI) IsOpen() bool {
	return mui.current != nil
}

// Choose closes the current dialog with action, as if its button was
// clicked.
func (mui *ModalUI) Choose(action string) {
	if mui.current == nil {
		return
	}
	title := mui.current.Title
	mui.current = nil
	mui.UI = nil

	if mui.OnAction != nil {
		mui.OnAction(title, action)
	}
	if len(mui.queue) > 0 {
		next := mui.queue[0]
		mui.queue = mui.queue[1:]
		mui.show(next)
	}
}

func (mui *ModalUI) show(m session.Modal) {
	mui.current = &m
	mui.buildUI(m)
}

func (mui *ModalUI) buildUI(m session.Modal) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 32, 44, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(14)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(300, 0),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(m.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(m.Message, &mui.normalFace, color.RGBA{220, 220, 230, 255}),
		widget.TextOpts.MaxWidth(280),
	))

	panel.AddChild(mui.buildButtons(m.Actions))
	rootContainer.AddChild(panel)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *ModalUI) buildButtons(actions []string) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)

	if len(actions) == 0 {
		actions = []string{"Dismiss"}
	}
	for _, action := range actions {
		action := action
		container.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(84, 28)),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(action, &mui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 220, 160, 255},
				Pressed: color.RGBA{200, 170, 120, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.Choose(action)
			}),
		))
	}
	return container
}

func (mui *ModalUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method while a dialog is showing
func (mui *ModalUI) Update() {
	if mui.UI != nil {
		mui.UI.Update()
	}
}

func (mui *ModalUI) Draw(screen *ebiten.Image) {
	if mui.UI != nil {
		mui.UI.Draw(screen)
	}
}
