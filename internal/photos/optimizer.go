package photos

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

const (
	// Max dimension of an uploaded photo; the register stores thumbnails,
	// not originals.
	maxUploadEdge = 1600
	uploadQuality = 80
)

// NormalizePhoto re-encodes an uploaded image to a bounded JPEG. Phone
// photos arrive at 10+ MB; the register's POST body limit is well below
// that, so everything gets downscaled before upload.
func NormalizePhoto(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxUploadEdge || bounds.Dy() > maxUploadEdge {
		img = imaging.Fit(img, maxUploadEdge, maxUploadEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: uploadQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
