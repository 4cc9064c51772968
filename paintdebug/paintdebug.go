// Package paintdebug renders a computed layout tree as flat rectangles on
// an RGBA canvas, the engine's own sanity-check visualizer (spec.md §6):
// enough to eyeball that block/flex/grid boxes land where expected
// without pulling painting into the layout core itself. It is an optional
// collaborator package; kelp never imports it.
package paintdebug

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	kelp "github.com/kelplayout/kelp"
)

// Options controls how a tree is rendered.
type Options struct {
	// Background fills the canvas before any node is drawn.
	Background color.Color
	// Stops colors each node by nesting depth; nil falls back to a
	// built-in blue-to-amber ramp.
	Stops Stops
	// Outline, when true, draws a 1px border instead of a filled rect.
	Outline bool
}

func (o Options) stops() Stops {
	if len(o.Stops) > 0 {
		return o.Stops
	}
	return defaultStops
}

var defaultStops = Stops{
	{Pos: 0, Color: color.NRGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff}},
	{Pos: 0.5, Color: color.NRGBA{R: 0x5a, G: 0x9b, B: 0xd6, A: 0xff}},
	{Pos: 1, Color: color.NRGBA{R: 0xe0, G: 0x9b, B: 0x2d, A: 0xff}},
}

// Render walks the tree rooted at node, already laid out via
// kelp.ComputeRootLayout, and draws each node's border box onto a new
// canvas sized to root's border box. Node-local locations are accumulated
// into canvas-absolute coordinates the way the teacher's Layer.AddLayer
// composites a child layer at a parent-relative offset
// (instructions/layer.go), simplified here to plain rect fills since a
// debug overlay has no need for a layer's own pixel buffer per node.
func Render(t kelp.Tree, root kelp.NodeID, opts Options) *image.RGBA {
	res := t.LayoutMut(root)
	w := int(res.Size.Width + 0.5)
	h := int(res.Size.Height + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	stops := opts.stops()
	maxDepth := treeDepth(t, root, 0)
	paintNode(t, root, canvas, 0, 0, 0, maxDepth, stops, opts.Outline)
	return canvas
}

func treeDepth(t kelp.Tree, node kelp.NodeID, depth int) int {
	max := depth
	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		if d := treeDepth(t, t.ChildAt(node, i), depth+1); d > max {
			max = d
		}
	}
	return max
}

func paintNode(t kelp.Tree, node kelp.NodeID, canvas *image.RGBA, originX, originY float32, depth, maxDepth int, stops Stops, outline bool) {
	res := t.LayoutMut(node)
	x := originX + res.Location.X
	y := originY + res.Location.Y
	w := res.Size.Width
	h := res.Size.Height

	t01 := 0.0
	if maxDepth > 0 {
		t01 = float64(depth) / float64(maxDepth)
	}
	c := stops.At(t01)

	rect := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5)).Intersect(canvas.Bounds())
	if !rect.Empty() {
		if outline {
			drawOutline(canvas, rect, c)
		} else {
			draw.Draw(canvas, rect, &image.Uniform{C: c}, image.Point{}, draw.Over)
		}
	}

	n := t.ChildCount(node)
	for i := 0; i < n; i++ {
		paintNode(t, t.ChildAt(node, i), canvas, x, y, depth+1, maxDepth, stops, outline)
	}
}

func drawOutline(canvas *image.RGBA, rect image.Rectangle, c color.Color) {
	top := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1)
	bottom := image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y)
	left := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y)
	right := image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y)
	for _, r := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(canvas, r.Intersect(canvas.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Over)
	}
}
