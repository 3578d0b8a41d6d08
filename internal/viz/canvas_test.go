package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndRender(t *testing.T) {
	c := NewCanvas(4, 2)

	if c.DotWidth() != 8 || c.DotHeight() != 8 {
		t.Fatalf("dot extent: got %dx%d", c.DotWidth(), c.DotHeight())
	}

	c.Set(0, 0)
	if c.Cell(0, 0) == 0x2800 {
		t.Error("cell should carry a dot after Set")
	}

	// Out-of-range sets must be ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	out := c.String()
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected one line per row, got %q", out)
	}

	c.Clear()
	if c.Cell(0, 0) != 0x2800 {
		t.Error("clear should reset cells to the empty braille rune")
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)

	if c.Cell(0, 0) == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Cell(9, 9) == 0x2800 {
		t.Error("line end not drawn")
	}
}
