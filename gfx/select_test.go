package gfx

import (
	"os/exec"
	"strings"
	"testing"
)

func TestBackendSelection(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles the package four times")
	}
	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not available")
	}

	tests := []struct {
		Tags string
		OK   bool
		Want string
	}{
		{"", false, "no_display_backend_selected"},
		{"oled_native,oled_periph", false, "more_than_one_display_backend_selected"},
		{"oled_native", true, ""},
		{"oled_periph", true, ""},
	}
	for _, test := range tests {
		t.Run("tags="+test.Tags, func(it *testing.T) {
			out, err := exec.Command(goTool, "build", "-tags", test.Tags, ".").CombinedOutput()
			if test.OK {
				if err != nil {
					it.Fatalf("expected build to succeed: %v\n%s", err, out)
				}
				return
			}
			if err == nil {
				it.Fatal("expected build to fail")
			}
			if !strings.Contains(string(out), test.Want) {
				it.Errorf("expected %q in compiler output, got:\n%s", test.Want, out)
			}
		})
	}
}
