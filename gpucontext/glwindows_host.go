// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

package gpucontext

/*
#cgo windows LDFLAGS: -lopengl32
#include <windows.h>
#include <GL/gl.h>

static GLuint gl_gen_texture() {
	GLuint tex;
	glGenTextures(1, &tex);
	return tex;
}

static void gl_upload_rgba(GLuint tex, int w, int h, void *pixels) {
	glBindTexture(GL_TEXTURE_2D, tex);
	glTexParameteri(GL_TEXTURE_2D, GL_TEXTURE_MIN_FILTER, GL_LINEAR);
	glTexParameteri(GL_TEXTURE_2D, GL_TEXTURE_MAG_FILTER, GL_LINEAR);
	glTexImage2D(GL_TEXTURE_2D, 0, GL_RGBA, w, h, 0, GL_BGRA_EXT, GL_UNSIGNED_BYTE, pixels);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/present"
)

var (
	_ Context                 = (*GLWindows)(nil)
	_ compositor.GPUImageHost = (*GLWindows)(nil)
)

// CreateTexture implements compositor.GPUImageHost.
func (g *GLWindows) CreateTexture(w, h int) (any, error) {
	tex := C.gl_gen_texture()
	id := g.nextID
	g.nextID++
	g.textures[id] = tex
	return id, nil
}

// DestroyTexture implements compositor.GPUImageHost.
func (g *GLWindows) DestroyTexture(handle any) {
	id := handle.(uintptr)
	if tex, ok := g.textures[id]; ok {
		C.glDeleteTextures(1, &tex)
		delete(g.textures, id)
	}
}

// UploadTexture implements compositor.GPUImageHost.
func (g *GLWindows) UploadTexture(handle any, pixels []byte, w, h int) {
	id := handle.(uintptr)
	tex, ok := g.textures[id]
	if !ok || len(pixels) == 0 {
		return
	}
	C.gl_upload_rgba(tex, C.int(w), C.int(h), unsafe.Pointer(&pixels[0]))
}

// ImportDMABUF implements compositor.GPUImageHost. Windows has no dmabuf
// concept; mpv's D3D11/ANGLE interop path on this platform hands back
// already-mapped pixel data instead, so a shared-texture import request
// reaching this backend indicates a decoder path mismatch.
func (g *GLWindows) ImportDMABUF(req present.TextureRequest) (any, error) {
	return nil, fmt.Errorf("gpucontext: glwindows has no dmabuf import path (fd=%d)", req.FD)
}

// ReleaseImage implements compositor.GPUImageHost.
func (g *GLWindows) ReleaseImage(handle any) { g.DestroyTexture(handle) }

// Draw implements compositor.GPUImageHost: the same premultiplied-alpha
// full-screen-triangle draw as glx11_host.go's Draw, using the
// fullscreenTriangleShader GLSL source shared across both GL backends.
func (g *GLWindows) Draw(handle any, targetW, targetH int, alpha float32) {
	id := handle.(uintptr)
	tex, ok := g.textures[id]
	if !ok {
		return
	}
	C.glViewport(0, 0, C.GLsizei(targetW), C.GLsizei(targetH))
	C.glEnable(C.GL_BLEND)
	C.glBlendFunc(C.GL_ONE, C.GL_ONE_MINUS_SRC_ALPHA)
	C.glActiveTexture(C.GL_TEXTURE0)
	C.glBindTexture(C.GL_TEXTURE_2D, tex)
	_ = alpha
	C.glDrawArrays(C.GL_TRIANGLES, 0, 3)
}
