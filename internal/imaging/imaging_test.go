package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test JPEG: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	data, mime, err := Normalize(bytes.NewReader(encodeJPEG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestNormalizePNGConvertsToJPEG(t *testing.T) {
	_, mime, err := Normalize(bytes.NewReader(encodePNG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
}

func TestNormalizeDownscalesLargeImages(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(encodeJPEG(t, 2048, 1024)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != maxDimension || b.Dy() != maxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", maxDimension, maxDimension/2, b.Dx(), b.Dy())
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(encodeJPEG(t, 50, 40)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("small image should keep its size, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizeRejectsNonImages(t *testing.T) {
	if _, _, err := Normalize(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestNormalizeRejectsGIF(t *testing.T) {
	if _, _, err := Normalize(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF input")
	}
}
