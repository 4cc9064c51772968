package kelp

import (
	"github.com/kelplayout/kelp/internal/core/geom"
	"github.com/kelplayout/kelp/internal/style"
)

// gridTrack is one resolved row or column's working sizing state.
type gridTrack struct {
	fn   style.TrackSizingFunction
	base float32 // current base size
	grow float32 // current growth limit
}

// sizeTracks implements spec.md §4.6 phase 3, simplified to two rounds:
// initialize each track's base/growth-limit from its fixed length or
// intrinsic content contribution, then distribute remaining free space to
// flexible (fr) tracks. There is no per-span distribution: for rows, a
// spanning item's content height is divided evenly across the rows it
// spans; for columns, spanning items contribute nothing.
//
// Grounded on calculateGridTrackSizes in
// other_examples/424c6c80_SCKelemen-layout__grid.go.go, generalized from
// float64/fixed-or-fraction tracks to the TrackSizingFunction variants
// (fixed, minmax, fr, min/max-content, auto) and intrinsic content
// contribution.
func sizeTracks(fns []style.TrackSizingFunction, available *float32, gap float32, contribute func(track int, mode style.AvailableSpace) float32) []gridTrack {
	tracks := make([]gridTrack, len(fns))
	for i, fn := range fns {
		tracks[i] = gridTrack{fn: fn}
		if min := fn.ResolvedMinimum(available); min != nil {
			tracks[i].base = *min
		} else {
			tracks[i].base = contribute(i, style.MinContentSpace)
		}
		if max := fn.ResolvedMaximum(available); max != nil {
			tracks[i].grow = geom.MaxF32(*max, tracks[i].base)
		} else {
			tracks[i].grow = contribute(i, style.MaxContentSpace)
			if tracks[i].grow < tracks[i].base {
				tracks[i].grow = tracks[i].base
			}
		}
	}

	if available == nil {
		return tracks
	}

	gapTotal := gap * float32(geom.MaxInt(0, len(tracks)-1))
	used := gapTotal
	totalFlex := float32(0)
	for _, tr := range tracks {
		if tr.fn.IsFlex() {
			totalFlex += tr.fn.FlexFactor()
			used += tr.base
			continue
		}
		used += tr.grow
	}

	free := *available - used
	if free <= 0 || totalFlex <= 0 {
		return tracks
	}
	for i, tr := range tracks {
		if !tr.fn.IsFlex() {
			continue
		}
		share := free * (tr.fn.FlexFactor() / totalFlex)
		tracks[i].base = tr.base + share
		tracks[i].grow = tracks[i].base
	}
	return tracks
}

// trackSizes extracts the final pixel size (growth limit, which equals
// base once flex distribution has run) for each track.
func trackSizes(tracks []gridTrack) []float32 {
	out := make([]float32, len(tracks))
	for i, tr := range tracks {
		if tr.fn.IsFlex() {
			out[i] = tr.base
		} else {
			out[i] = tr.grow
		}
	}
	return out
}

func sumTrackSizes(sizes []float32, gap float32) float32 {
	if len(sizes) == 0 {
		return 0
	}
	sum := gap * float32(len(sizes)-1)
	for _, s := range sizes {
		sum += s
	}
	return sum
}

func trackOffsets(sizes []float32, gap float32) []float32 {
	offsets := make([]float32, len(sizes))
	cursor := float32(0)
	for i, s := range sizes {
		offsets[i] = cursor
		cursor += s + gap
	}
	return offsets
}
