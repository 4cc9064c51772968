package measure

import (
	"strings"

	"github.com/rivo/uniseg"

	kelp "github.com/kelplayout/kelp"
	"github.com/kelplayout/kelp/internal/core/geom"
)

// NewTextMeasurer returns a kelp.MeasureFunc that wraps text at word
// boundaries to fit the available width and reports the wrapped block's
// width/height, the engine's own demonstration of a Measure callback
// (spec.md §6). Grounded on instructions/text_wrap.go's word-wrap pass,
// simplified to a single font and a greedy line-fit loop (the original's
// binary-search prefix sums and per-line font scaling exist to support
// rich multi-style text runs, out of scope for a plain measurement leaf).
func NewTextMeasurer(f *Font, text string) kelp.MeasureFunc {
	return func(knownDims geom.Size[*float32], availableSpace geom.Size[kelp.AvailableSpace]) geom.Size[float32] {
		if knownDims.Width != nil && knownDims.Height != nil {
			return geom.Size[float32]{Width: *knownDims.Width, Height: *knownDims.Height}
		}

		maxWidth, wrap := availableSpace.Width.Value()
		if knownDims.Width != nil {
			maxWidth, wrap = *knownDims.Width, true
		}

		lineHeight := f.LineHeightPx()
		if !wrap || maxWidth <= 0 {
			width := f.MeasureString(singleLine(text))
			lines := strings.Count(text, "\n") + 1
			return geom.Size[float32]{Width: width, Height: lineHeight * float32(lines)}
		}

		lines := wrapText(f, text, maxWidth)
		width := float32(0)
		for _, ln := range lines {
			width = geom.MaxF32(width, f.MeasureString(ln))
		}
		height := lineHeight * float32(len(lines))

		if knownDims.Height != nil {
			height = *knownDims.Height
		}
		if knownDims.Width != nil {
			width = *knownDims.Width
		}
		return geom.Size[float32]{Width: width, Height: height}
	}
}

func singleLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// wrapText greedily packs words onto lines no wider than maxWidth,
// respecting explicit newlines as paragraph breaks, and falls back to
// grapheme-cluster splitting (via uniseg) for a single word wider than
// maxWidth on its own.
func wrapText(f *Font, text string, maxWidth float32) []string {
	var out []string
	for _, para := range strings.Split(normalizeNewlines(text), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		spaceW := f.MeasureString(" ")
		var line string
		var lineW float32

		flush := func() {
			out = append(out, line)
			line, lineW = "", 0
		}

		for _, w := range words {
			wordW := f.MeasureString(w)
			if wordW > maxWidth {
				if line != "" {
					flush()
				}
				out = append(out, splitLongWord(f, w, maxWidth)...)
				continue
			}
			if line == "" {
				line, lineW = w, wordW
				continue
			}
			if lineW+spaceW+wordW <= maxWidth {
				line += " " + w
				lineW += spaceW + wordW
				continue
			}
			flush()
			line, lineW = w, wordW
		}
		if line != "" || len(out) == 0 {
			flush()
		}
	}
	return out
}

func splitLongWord(f *Font, word string, maxWidth float32) []string {
	var out []string
	var chunk strings.Builder
	var chunkW float32

	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		cluster := gr.Str()
		cw := f.MeasureString(cluster)
		if chunk.Len() > 0 && chunkW+cw > maxWidth {
			out = append(out, chunk.String())
			chunk.Reset()
			chunkW = 0
		}
		chunk.WriteString(cluster)
		chunkW += cw
	}
	if chunk.Len() > 0 {
		out = append(out, chunk.String())
	}
	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
