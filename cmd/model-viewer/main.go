// Command model-viewer displays a rotating, lit OBJ model.
//
// The model spins about the Y axis; arrow keys slide it around the view
// plane. Lighting is two fixed directional lights plus a hemispherical
// ambient term, with gamma correction.
package main

import (
	_ "embed"
	"flag"
	"log/slog"
	"math"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/internal/app"
	"github.com/gogpu/curvekit/internal/glutil"
	"github.com/gogpu/curvekit/internal/objfile"
)

var (
	//go:embed shade.vert
	vertSrc string
	//go:embed shade.frag
	fragSrc string
)

// moveSpeed is how fast the arrow keys slide the model, units per second.
const moveSpeed = 1.0

type viewer struct {
	mesh *objfile.Mesh
	fit  bool

	prog *glutil.Program
	vao  uint32
	vbo  *glutil.VBO
	ebo  *glutil.VBO

	// normalize recenters arbitrary models; identity when -fit=false.
	normalize mgl32.Mat4

	time float64
	x, y float32
}

func (v *viewer) Init(w *app.Window) error {
	var err error
	if v.prog, err = glutil.NewProgram(vertSrc, fragSrc); err != nil {
		return err
	}

	v.vao = glutil.NewVAO()

	v.ebo = glutil.NewVBO(gl.ELEMENT_ARRAY_BUFFER)
	v.ebo.Upload(len(v.mesh.Indices)*4, v.mesh.Indices, gl.STATIC_DRAW)

	v.vbo = glutil.NewVBO(gl.ARRAY_BUFFER)
	stride := int32(unsafe.Sizeof(objfile.Vertex{}))
	v.vbo.Upload(len(v.mesh.Vertices)*int(stride), v.mesh.Vertices, gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)

	v.normalize = mgl32.Ident4()
	if v.fit {
		v.normalize = fitTransform(v.mesh)
	}

	gl.ClearColor(0.1, 0.1, 0.2, 0)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// fitTransform centers the mesh on the origin and scales its largest
// dimension to one unit, so models of any magnitude land in view.
func fitTransform(m *objfile.Mesh) mgl32.Mat4 {
	min, max := m.Bounds()
	var center mgl32.Vec3
	extent := float32(0)
	for k := 0; k < 3; k++ {
		center[k] = (min[k] + max[k]) / 2
		if d := max[k] - min[k]; d > extent {
			extent = d
		}
	}
	if extent == 0 {
		extent = 1
	}
	return mgl32.Scale3D(1/extent, 1/extent, 1/extent).
		Mul4(mgl32.Translate3D(-center.X(), -center.Y(), -center.Z()))
}

func (v *viewer) KeyPress(w *app.Window, key glfw.Key) {
	if key == glfw.KeyEscape {
		w.Close()
	}
}

func (v *viewer) Frame(w *app.Window, dt float64) {
	v.time += dt

	if w.KeyDown(glfw.KeyLeft) {
		v.x -= float32(moveSpeed * dt)
	}
	if w.KeyDown(glfw.KeyRight) {
		v.x += float32(moveSpeed * dt)
	}
	if w.KeyDown(glfw.KeyUp) {
		v.y += float32(moveSpeed * dt)
	}
	if w.KeyDown(glfw.KeyDown) {
		v.y -= float32(moveSpeed * dt)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	model := mgl32.Translate3D(v.x, v.y, 0).
		Mul4(mgl32.HomogRotate3DY(float32(v.time))).
		Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)).
		Mul4(v.normalize)
	view := mgl32.Translate3D(0, 0, -2)

	// 90° horizontal field of view; the vertical angle follows the aspect
	// ratio the way the original frustum construction did.
	width, height := w.Size()
	aspect := float32(width) / float32(height)
	fovy := 2 * math.Atan(math.Tan(math.Pi/4)/float64(aspect))
	projection := mgl32.Perspective(float32(fovy), aspect, 0.01, 1000)

	v.prog.Use()
	gl.UniformMatrix4fv(v.prog.UniformLocation("model"), 1, false, &model[0])
	gl.UniformMatrix4fv(v.prog.UniformLocation("view"), 1, false, &view[0])
	gl.UniformMatrix4fv(v.prog.UniformLocation("projection"), 1, false, &projection[0])

	gl.BindVertexArray(v.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(v.mesh.Indices)), gl.UNSIGNED_INT, 0)
}

func main() {
	var (
		path     = flag.String("obj", "bunny.obj", "OBJ model to display")
		fit      = flag.Bool("fit", true, "recenter and rescale the model to fit the view")
		settings = flag.String("config", "", "TOML settings file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	curvekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mesh, err := objfile.LoadFile(*path)
	if err != nil {
		curvekit.Logger().Error("fatal", "error", err)
		os.Exit(1)
	}
	curvekit.Logger().Info("model loaded",
		"file", *path,
		"vertices", len(mesh.Vertices),
		"triangles", len(mesh.Indices)/3)

	scene := &viewer{mesh: mesh, fit: *fit}
	err = app.Run(scene,
		app.WithSettingsFile(*settings),
		app.WithTitle("curvekit: model viewer"),
	)
	if err != nil {
		curvekit.Logger().Error("fatal", "error", err)
		os.Exit(1)
	}
}
