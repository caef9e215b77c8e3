// Package curvekit builds renderable Bézier curves from user-placed
// control points.
//
// # Overview
//
// curvekit is the geometry core behind the demos in cmd/: an interactive
// Bézier curve editor and an OBJ model viewer. The central type is
// [Builder], which owns an ordered sequence of control points plus an
// integer subdivision quality, and derives from them a polyline
// approximation of the Bézier curve annotated with cumulative arc-length.
//
// # Quick Start
//
//	import "github.com/gogpu/curvekit"
//
//	b := curvekit.NewBuilder()
//	b.Append(curvekit.Pt(0, 0))
//	b.Append(curvekit.Pt(10, 0))
//	b.Append(curvekit.Pt(10, 10))
//
//	for _, s := range b.Samples() {
//	    // s.Pos, s.Color, s.Dist (arc-length from the first sample)
//	}
//
// The sample sequence is a fully derived value: any change to the control
// points or to the quality replaces it wholesale. There is no incremental
// update path.
//
// # Rendering
//
// Samples carry everything a renderer needs for the dashed-line effect: the
// per-sample arc-length feeds either a fragment shader (see
// cmd/curve-editor) or the CPU-side [Dash.Segments] split used by
// [Snapshot] for headless PNG output.
//
// # Concurrency
//
// Builder is not safe for concurrent use. The demos own it from a single
// event/render thread, which is the intended usage.
package curvekit
