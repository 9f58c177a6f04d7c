// Package pixel implements 1-bit color models and packed images for monochrome OLED panels.
//
// The images implement Go's native [image.Image] and [draw.Image] interfaces, so any of the
// standard drawing code can render into a panel buffer directly.
package pixel
