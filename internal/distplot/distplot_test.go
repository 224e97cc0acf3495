package distplot

import (
	"bytes"
	"testing"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRender(t *testing.T) {
	smpl := sample.Sample{1, 2, 2, 3, 4, 5, 5, 5, 6, 8}

	data, err := Render(smpl, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("output is not a PNG (%d bytes)", len(data))
	}
}

func TestRender_EmptySample(t *testing.T) {
	_, err := Render(sample.Sample{}, DefaultOptions())
	if !errors.HasCode(err, errors.CodeEmptySample) {
		t.Errorf("got %v, want EMPTY_SAMPLE", err)
	}
}

func TestRenderToFile(t *testing.T) {
	path := t.TempDir() + "/dist.png"
	if err := RenderToFile(sample.Sample{1, 2, 3, 4}, DefaultOptions(), path); err != nil {
		t.Fatalf("RenderToFile failed: %v", err)
	}
}

func TestSturgesBins(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{5, 4},
		{100, 8},
	}
	for _, tt := range tests {
		if got := sturgesBins(tt.n); got != tt.want {
			t.Errorf("sturgesBins(%d): got %d, want %d", tt.n, got, tt.want)
		}
	}
}
