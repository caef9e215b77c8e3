package glutil

import "github.com/go-gl/gl/v3.3-core/gl"

// VBO is a GL buffer object together with its binding target.
type VBO struct {
	ID     uint32
	Target uint32
}

// NewVBO generates a buffer object for the given target
// (gl.ARRAY_BUFFER or gl.ELEMENT_ARRAY_BUFFER).
func NewVBO(target uint32) *VBO {
	var id uint32
	gl.GenBuffers(1, &id)
	return &VBO{ID: id, Target: target}
}

// Bind binds the buffer to its target.
func (b *VBO) Bind() {
	gl.BindBuffer(b.Target, b.ID)
}

// Upload binds the buffer and replaces its contents. size is in bytes,
// data a pointer obtained via gl.Ptr. usage is gl.STATIC_DRAW for
// load-once meshes and gl.DYNAMIC_DRAW for the editor's rebuilt-per-edit
// sequences.
func (b *VBO) Upload(size int, data interface{}, usage uint32) {
	b.Bind()
	if size == 0 {
		gl.BufferData(b.Target, 0, nil, usage)
		return
	}
	gl.BufferData(b.Target, size, gl.Ptr(data), usage)
}

// Delete releases the buffer object.
func (b *VBO) Delete() {
	gl.DeleteBuffers(1, &b.ID)
	b.ID = 0
}

// NewVAO generates and binds a vertex array object.
func NewVAO() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	gl.BindVertexArray(id)
	return id
}
