package layout

import (
	"fyne.io/fyne/v2"
)

// ButtonRowLayout places objects left to right in cells of one fixed size,
// so a toolbar gets its button positions from the layout instead of from
// hardcoded coordinates.
type ButtonRowLayout struct {
	cell fyne.Size
}

func NewButtonRowLayout(cell fyne.Size) *ButtonRowLayout {
	return &ButtonRowLayout{cell: cell}
}

func (brl *ButtonRowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	x := float32(0)
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		obj.Resize(brl.cell)
		obj.Move(fyne.NewPos(x, 0))
		x += brl.cell.Width
	}
}

func (brl *ButtonRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := 0
	for _, obj := range objects {
		if obj.Visible() {
			visible++
		}
	}
	if visible == 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(brl.cell.Width*float32(visible), brl.cell.Height)
}

// Flex marks a ColumnLayout child that takes the remaining height.
const Flex float32 = 0

// ColumnLayout stacks children top to bottom at full width inside a uniform
// padding. Each child has a fixed height or Flex; flex children share what
// the fixed children leave over. Children past the end of heights are Flex.
type ColumnLayout struct {
	heights []float32
	padding float32
}

func NewColumnLayout(padding float32, heights ...float32) *ColumnLayout {
	return &ColumnLayout{
		heights: heights,
		padding: padding,
	}
}

func (cl *ColumnLayout) heightAt(i int) float32 {
	if i < len(cl.heights) {
		return cl.heights[i]
	}
	return Flex
}

func (cl *ColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	fixed := float32(0)
	flexCount := 0
	for i := range objects {
		if h := cl.heightAt(i); h == Flex {
			flexCount++
		} else {
			fixed += h
		}
	}

	width := containerSize.Width - 2*cl.padding
	if width < 0 {
		width = 0
	}

	flexHeight := float32(0)
	if flexCount > 0 {
		remaining := containerSize.Height - 2*cl.padding - fixed
		if remaining > 0 {
			flexHeight = remaining / float32(flexCount)
		}
	}

	y := cl.padding
	for i, obj := range objects {
		height := cl.heightAt(i)
		if height == Flex {
			height = flexHeight
		}

		obj.Resize(fyne.NewSize(width, height))
		obj.Move(fyne.NewPos(cl.padding, y))
		y += height
	}
}

func (cl *ColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	maxWidth := float32(0)
	totalHeight := float32(0)

	for i, obj := range objects {
		objMin := obj.MinSize()
		if objMin.Width > maxWidth {
			maxWidth = objMin.Width
		}

		if h := cl.heightAt(i); h == Flex {
			totalHeight += objMin.Height
		} else {
			totalHeight += h
		}
	}

	return fyne.NewSize(maxWidth+2*cl.padding, totalHeight+2*cl.padding)
}
