//go:build !oled_native && !oled_periph

package gfx

import "image/color"

// No display backend was selected. Build with exactly one of:
//
//	-tags oled_native
//	-tags oled_periph
var _ = no_display_backend_selected__build_with_tags_oled_native_or_oled_periph

// Placeholders so the selection error above is the only one reported.
const backendName = ""

var nativeOn, nativeOff color.Color

func newBackend(*Config) backend { return nil }
