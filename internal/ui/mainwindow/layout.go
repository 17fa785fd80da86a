package mainwindow

import "fyne.io/fyne/v2"

const cardBarHeight = float32(4)

// cardLayout draws a thin colored bar on top of a filled card background.
// Objects are bar, background, content.
type cardLayout struct{}

func (layout *cardLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	bar := objects[0]
	background := objects[1]
	content := objects[2]

	bar.Move(fyne.NewPos(0, 0))
	bar.Resize(fyne.NewSize(size.Width, cardBarHeight))

	bodyHeight := size.Height - cardBarHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	background.Move(fyne.NewPos(0, cardBarHeight))
	background.Resize(fyne.NewSize(size.Width, bodyHeight))
	content.Move(fyne.NewPos(0, cardBarHeight))
	content.Resize(fyne.NewSize(size.Width, bodyHeight))
}

func (layout *cardLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	contentMin := objects[2].MinSize()
	return fyne.NewSize(contentMin.Width, contentMin.Height+cardBarHeight)
}
