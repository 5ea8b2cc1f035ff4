package swatch

import (
	"image"
	"testing"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/palette"
)

func pixelAt(img image.Image, x, y int) colour.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return colour.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRenderBalancedGrid(t *testing.T) {
	img, err := Render(palette.Balanced(), DefaultColumns, DefaultCellSize)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 512 || bounds.Dy() != 128 {
		t.Fatalf("Render() size = %dx%d, want 512x128", bounds.Dx(), bounds.Dy())
	}

	// Cell interiors: first cell black, end of the greyscale row white,
	// final cell of the last row pink.
	if got := pixelAt(img, 8, 8); got != colour.Black {
		t.Errorf("first cell = %s, want #000000", got.Hex())
	}
	if got := pixelAt(img, 31*16+8, 8); got != colour.White {
		t.Errorf("last greyscale cell = %s, want #FFFFFF", got.Hex())
	}
	if got, want := pixelAt(img, 31*16+8, 7*16+8), (colour.RGB{R: 255, G: 153, B: 204}); got != want {
		t.Errorf("final cell = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestRenderPartialRow(t *testing.T) {
	colours := []colour.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	img, err := Render(colours, 2, 4)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Fatalf("Render() size = %dx%d, want 8x8", bounds.Dx(), bounds.Dy())
	}

	if got, want := pixelAt(img, 2, 6), (colour.RGB{R: 0, G: 0, B: 255}); got != want {
		t.Errorf("third cell = %s, want %s", got.Hex(), want.Hex())
	}
	// The unused fourth cell keeps the white ground.
	if got := pixelAt(img, 6, 6); got != colour.White {
		t.Errorf("empty cell = %s, want #FFFFFF", got.Hex())
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	if _, err := Render(nil, 32, 16); err == nil {
		t.Error("Render() with no colours should fail")
	}
	if _, err := Render([]colour.RGB{{R: 1}}, 0, 16); err == nil {
		t.Error("Render() with zero columns should fail")
	}
	if _, err := Render([]colour.RGB{{R: 1}}, 32, -1); err == nil {
		t.Error("Render() with negative cell size should fail")
	}
}

func TestScalePreservesAspect(t *testing.T) {
	img, err := Render(palette.Balanced(), DefaultColumns, DefaultCellSize)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	scaled, err := Scale(img, 256)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}

	bounds := scaled.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 64 {
		t.Errorf("Scale() size = %dx%d, want 256x64", bounds.Dx(), bounds.Dy())
	}
}

func TestScaleUniformColour(t *testing.T) {
	red := colour.RGB{R: 200, G: 30, B: 40}
	img, err := Render([]colour.RGB{red}, 1, 10)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	scaled, err := Scale(img, 5)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got := pixelAt(scaled, 2, 2); got != red {
		t.Errorf("scaled interior = %s, want %s", got.Hex(), red.Hex())
	}
}

func TestScaleRejectsBadWidth(t *testing.T) {
	img, err := Render([]colour.RGB{{R: 1}}, 1, 4)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := Scale(img, 0); err == nil {
		t.Error("Scale() with zero width should fail")
	}
}
