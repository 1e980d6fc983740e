package palette

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/study/pkg/deadline"
)

func TestPaletteListsEveryColor(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Palette{Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("palette: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Index") || !strings.Contains(out, "Hex") {
		t.Fatalf("expected header, got\n%s", out)
	}
	for _, hex := range deadline.Palette {
		if !strings.Contains(out, hex) {
			t.Fatalf("expected %s in\n%s", hex, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain output for a buffer")
	}
}
