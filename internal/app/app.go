// Package app owns the surface both demos run on: a GLFW window with an
// OpenGL 3.3 core context, input routing, and the per-frame loop with a
// delta-time clock. Demos implement Scene (plus any of the optional input
// interfaces) and hand it to Run.
package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/curvekit"
)

func init() {
	// GLFW event handling and context creation must stay on the main
	// thread.
	runtime.LockOSThread()
}

// Scene is a demo's per-frame hook. Init runs once with the context
// current; Frame runs every iteration with the seconds elapsed since the
// previous one.
type Scene interface {
	Init(w *Window) error
	Frame(w *Window, dt float64)
}

// MouseHandler receives button presses with the cursor position in window
// coordinates (origin top-left, like the view matrix the editor builds).
type MouseHandler interface {
	MouseButton(w *Window, button glfw.MouseButton, x, y float64)
}

// KeyHandler receives key presses (not releases; held state is polled via
// Window.KeyDown).
type KeyHandler interface {
	KeyPress(w *Window, key glfw.Key)
}

// Resizer is notified after the viewport has been updated for a new
// window size.
type Resizer interface {
	Resize(w *Window, width, height int)
}

// Window wraps the GLFW window plus the input state demos poll.
type Window struct {
	glfw *glfw.Window

	width, height int
	keys          map[glfw.Key]bool
}

// Size returns the current window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// KeyDown reports whether a key is currently held.
func (w *Window) KeyDown(key glfw.Key) bool {
	return w.keys[key]
}

// Close requests that the run loop exit after the current frame.
func (w *Window) Close() {
	w.glfw.SetShouldClose(true)
}

// Run opens a window, initializes the scene and drives the frame loop
// until the window closes. It must be called from the main goroutine.
func Run(scene Scene, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(cfg, scene)
}

func run(cfg Config, scene Scene) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("app: glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("app: create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("app: gl init: %w", err)
	}
	curvekit.Logger().Info("context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	w := &Window{
		glfw: win,
		keys: make(map[glfw.Key]bool),
	}
	w.width, w.height = win.GetSize()

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if r, ok := scene.(Resizer); ok {
			r.Resize(w, width, height)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.keys[key] = true
			if h, ok := scene.(KeyHandler); ok {
				h.KeyPress(w, key)
			}
		case glfw.Release:
			w.keys[key] = false
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if h, ok := scene.(MouseHandler); ok {
			x, y := win.GetCursorPos()
			h.MouseButton(w, button, x, y)
		}
	})

	if err := scene.Init(w); err != nil {
		return fmt.Errorf("app: scene init: %w", err)
	}

	last := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		scene.Frame(w, dt)

		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
