// Command curve-editor is an interactive Bézier curve editor.
//
// Left click places a control point, right click removes the most recent
// one. The curve through the points is resampled on every change and drawn
// dashed; the control polygon is drawn solid with the points on top.
//
// Keys:
//
//	Left / Right  decrease / increase the subdivision quality
//	S             write a PNG snapshot of the scene
//	Escape        quit
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/internal/app"
	"github.com/gogpu/curvekit/internal/glutil"
)

var (
	//go:embed line.vert
	lineVertSrc string
	//go:embed line.frag
	lineFragSrc string
	//go:embed dashed.vert
	dashedVertSrc string
	//go:embed dashed.frag
	dashedFragSrc string
)

// pointVertex is the control-point vertex layout: position plus a
// normalized 8-bit color, 12 bytes.
type pointVertex struct {
	X, Y       float32
	R, G, B, A uint8
}

// curveVertex extends pointVertex with the cumulative arc-length the dash
// shader tests, 16 bytes.
type curveVertex struct {
	X, Y       float32
	R, G, B, A uint8
	Dist       float32
}

type editor struct {
	builder *curvekit.Builder
	dash    curvekit.Dash

	lineProg  *glutil.Program
	curveProg *glutil.Program

	vaoPoints, vaoCurve uint32
	vboPoints, vboCurve *glutil.VBO

	pointCount  int32
	sampleCount int32
	dirty       bool
}

func (e *editor) Init(w *app.Window) error {
	var err error
	if e.lineProg, err = glutil.NewProgram(lineVertSrc, lineFragSrc); err != nil {
		return err
	}
	if e.curveProg, err = glutil.NewProgram(dashedVertSrc, dashedFragSrc); err != nil {
		return err
	}

	e.vboPoints = glutil.NewVBO(gl.ARRAY_BUFFER)
	e.vaoPoints = glutil.NewVAO()
	e.vboPoints.Bind()
	stride := int32(unsafe.Sizeof(pointVertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, 8)

	e.vboCurve = glutil.NewVBO(gl.ARRAY_BUFFER)
	e.vaoCurve = glutil.NewVAO()
	e.vboCurve.Bind()
	stride = int32(unsafe.Sizeof(curveVertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, 8)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 12)

	bg := curvekit.BackgroundColor
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 0)
	gl.LineWidth(5)
	gl.PointSize(10)
	return nil
}

func (e *editor) MouseButton(w *app.Window, button glfw.MouseButton, x, y float64) {
	switch button {
	case glfw.MouseButtonLeft:
		e.builder.Append(curvekit.Pt(x, y))
	case glfw.MouseButtonRight:
		e.builder.RemoveLast()
	default:
		return
	}
	e.dirty = true
}

func (e *editor) KeyPress(w *app.Window, key glfw.Key) {
	switch key {
	case glfw.KeyLeft:
		e.builder.DecQuality()
		e.dirty = true
	case glfw.KeyRight:
		e.builder.IncQuality()
		e.dirty = true
	case glfw.KeyS:
		e.snapshot(w)
	case glfw.KeyEscape:
		w.Close()
	}
}

func (e *editor) snapshot(w *app.Window) {
	width, height := w.Size()
	img := curvekit.Snapshot(e.builder, e.dash, width, height)
	name := fmt.Sprintf("curve-%d.png", time.Now().Unix())
	if err := curvekit.SavePNG(name, img); err != nil {
		curvekit.Logger().Warn("snapshot failed", "error", err)
		return
	}
	curvekit.Logger().Info("snapshot written", "file", name)
}

// upload refreshes both vertex buffers from the builder state.
func (e *editor) upload() {
	pts := e.builder.Points()
	pv := make([]pointVertex, len(pts))
	cr, cg, cb, ca := curvekit.ControlColor.RGBA8()
	for i, p := range pts {
		pv[i] = pointVertex{
			X: float32(p.X), Y: float32(p.Y),
			R: cr, G: cg, B: cb, A: ca,
		}
	}
	e.vboPoints.Upload(len(pv)*int(unsafe.Sizeof(pointVertex{})), pv, gl.DYNAMIC_DRAW)
	e.pointCount = int32(len(pv))

	samples := e.builder.Samples()
	cv := make([]curveVertex, len(samples))
	for i, s := range samples {
		r, g, b, a := s.Color.RGBA8()
		cv[i] = curveVertex{
			X: float32(s.Pos.X), Y: float32(s.Pos.Y),
			R: r, G: g, B: b, A: a,
			Dist: float32(s.Dist),
		}
	}
	e.vboCurve.Upload(len(cv)*int(unsafe.Sizeof(curveVertex{})), cv, gl.DYNAMIC_DRAW)
	e.sampleCount = int32(len(cv))
}

func (e *editor) Frame(w *app.Window, dt float64) {
	if e.dirty {
		e.upload()
		e.dirty = false
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Pixel coordinates, origin at the top-left corner.
	width, height := w.Size()
	view := mgl32.Ortho2D(0, float32(width), float32(height), 0)

	if e.pointCount > 0 {
		e.lineProg.Use()
		gl.UniformMatrix4fv(e.lineProg.UniformLocation("view"), 1, false, &view[0])
		gl.BindVertexArray(e.vaoPoints)
		gl.DrawArrays(gl.LINE_STRIP, 0, e.pointCount)
		gl.DrawArrays(gl.POINTS, 0, e.pointCount)
	}

	if e.sampleCount > 1 {
		e.curveProg.Use()
		gl.UniformMatrix4fv(e.curveProg.UniformLocation("view"), 1, false, &view[0])
		gl.Uniform1f(e.curveProg.UniformLocation("dash_period"), float32(e.dash.Period))
		gl.Uniform1f(e.curveProg.UniformLocation("dash_cutoff"), float32(e.dash.Period*e.dash.Duty))
		gl.BindVertexArray(e.vaoCurve)
		gl.DrawArrays(gl.LINE_STRIP, 0, e.sampleCount)
	}
}

func main() {
	var (
		width    = flag.Int("width", 0, "window width (0 uses settings/default)")
		height   = flag.Int("height", 0, "window height (0 uses settings/default)")
		settings = flag.String("config", "", "TOML settings file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	curvekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene := &editor{
		builder: curvekit.NewBuilder(),
		dash:    curvekit.DefaultDash,
	}
	err := app.Run(scene,
		app.WithSettingsFile(*settings),
		app.WithTitle("curvekit: bezier editor"),
		app.WithSize(*width, *height),
	)
	if err != nil {
		curvekit.Logger().Error("fatal", "error", err)
		os.Exit(1)
	}
}
