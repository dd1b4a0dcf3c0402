// Package imaging normalizes uploaded item photos before storage.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// maxDimension is the largest width or height kept after normalization.
const maxDimension = 1024

// jpegQuality is the compression quality for the stored copy.
const jpegQuality = 85

// Normalize sniffs the uploaded bytes (client headers are not trusted),
// rejects anything that is not JPEG or PNG, downscales oversized photos and
// re-encodes the result as JPEG. Returns the data and its MIME type.
func Normalize(r io.Reader) ([]byte, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if detected != "image/jpeg" && detected != "image/png" {
		return nil, "", fmt.Errorf("unsupported image format %s (JPEG or PNG only)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	if b := img.Bounds(); b.Dx() > maxDimension || b.Dy() > maxDimension {
		img = downscale(img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// downscale resizes so the longer edge equals maxDimension, preserving
// aspect ratio, with Catmull-Rom interpolation.
func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var newW, newH int
	if w >= h {
		newW = maxDimension
		newH = max(1, h*maxDimension/w)
	} else {
		newH = maxDimension
		newW = max(1, w*maxDimension/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
