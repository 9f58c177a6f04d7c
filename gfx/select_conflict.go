//go:build oled_native && oled_periph

package gfx

import "image/color"

// Both display backends were selected. Build with exactly one of:
//
//	-tags oled_native
//	-tags oled_periph
var _ = more_than_one_display_backend_selected__use_only_one_of_oled_native_or_oled_periph

// Placeholders so the selection error above is the only one reported.
const backendName = ""

var nativeOn, nativeOff color.Color

func newBackend(*Config) backend { return nil }
