// Package glutil wraps the handful of OpenGL object chores both demos
// share: shader compilation, program linking with uniform lookup, and
// buffer upload. Failures here are environment failures (bad driver, GLSL
// typo) and are fatal to the caller; the error carries the GL info log.
package glutil

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/curvekit"
)

// CompileShader compiles a single shader stage. kind is gl.VERTEX_SHADER or
// gl.FRAGMENT_SHADER; source need not be NUL-terminated.
func CompileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("glutil: shader compilation failed: %s", log)
	}
	return shader, nil
}

// LinkProgram links compiled shader stages into a program. The stages are
// deleted afterwards regardless of outcome; they are not needed once the
// program exists.
func LinkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DetachShader(program, s)
		gl.DeleteShader(s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("glutil: program linkage failed: %s", log)
	}
	return program, nil
}

// Program is a linked GL program with a uniform-location cache.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// NewProgram compiles a vertex and a fragment shader and links them.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := CompileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	fs, err := CompileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("fragment: %w", err)
	}
	id, err := LinkProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	curvekit.Logger().Debug("program linked", "id", id)
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

// Use binds the program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// UniformLocation returns the location of a uniform, caching lookups.
// A uniform the linker optimized away yields -1, which GL ignores.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// Delete releases the program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func shaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return "(no info log)"
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return "(no info log)"
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
