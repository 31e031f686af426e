package render

import (
	"strings"
	"testing"
)

func TestWriteBlocks(t *testing.T) {
	var sb strings.Builder
	cells := []uint8{
		0, 1, 0,
		2, 0, 9,
	}
	if err := WriteBlocks(&sb, cells, 3, 0, 0, []string{".", "#", "+"}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != ".#.\n+.+\n" {
		t.Fatalf("got %q", sb.String())
	}

	sb.Reset()
	if err := WriteBlocks(&sb, cells, 3, 2, 1, nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "  ██\n" {
		t.Fatalf("cropped output %q", sb.String())
	}
}
