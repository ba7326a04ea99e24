// Package window wraps GLFW behind the handful of calls the render loop
// needs. New must run on the main goroutine, locked to its OS thread, and
// every other method must stay on that thread.
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants the command layer reacts to, so callers need not import
// glfw themselves.
const (
	KeyEscape = glfw.KeyEscape
	KeySpace  = glfw.KeySpace
	KeyP      = glfw.KeyP
	KeyN      = glfw.KeyN
)

type Options struct {
	Title  string
	Width  int
	Height int
	// Hidden creates an invisible window, used for offscreen snapshots.
	Hidden bool
	VSync  bool
}

// Window owns a GLFW window with a current 4.1 core context.
type Window struct {
	win    *glfw.Window
	scroll float64
}

// New initializes GLFW, opens the window and makes its context current.
func New(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win}
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scroll += yoff
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
	return w, nil
}

// GetSize returns the framebuffer size in pixels.
func (w *Window) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// ContentScale is the window's device pixel ratio.
func (w *Window) ContentScale() float32 {
	sx, _ := w.win.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return sx
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

// GetMouseButton reports whether the left button is held.
func (w *Window) GetMouseButton() bool {
	return w.win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

// ConsumeScroll returns the scroll accumulated since the last call and
// resets it. Scroll callbacks fire during PollEvents on this thread.
func (w *Window) ConsumeScroll() float64 {
	s := w.scroll
	w.scroll = 0
	return s
}

// KeyHeld reports whether a key is currently pressed.
func (w *Window) KeyHeld(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy tears down the window and GLFW itself.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
