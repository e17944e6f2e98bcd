// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package webengine

/*
#include "cef_bridge.h"
*/
import "C"

import "fmt"

// createWindowlessBrowser starts an off-screen CEF browser. CEF still
// wants a parent NSView* even for windowless_rendering_enabled browsers
// (it uses it to resolve the backing scale factor); 0 is accepted and
// resolves to the main screen's scale, matching gpucontext's own
// Select(metalLayer, ...) convention of threading the CAMetalLayer
// opaquely rather than through an NSView hierarchy.
func createWindowlessBrowser(client *C.cef_client_t, cURL *C.char, w, h int) (*C.cef_browser_t, error) {
	browser := C.jmp_create_windowless_browser(client, 0, cURL, C.int(w), C.int(h))
	if browser == nil {
		return nil, fmt.Errorf("webengine: cef_browser_host_create_browser_sync failed")
	}
	return browser, nil
}

func loadBrowserURL(browser *C.cef_browser_t, cURL *C.char) {
	C.jmp_load_url(browser, cURL)
}

func wasResized(browser *C.cef_browser_t) {
	C.jmp_was_resized(browser)
}

func closeBrowser(browser *C.cef_browser_t) {
	C.jmp_close_browser(browser)
}
