package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Fetch downloads and decodes an image. Discord serves avatars and
// thumbnails as png, jpeg, gif or webp.
func Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	switch resp.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return nil, ErrUnsupportedFormat
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Resize scales to exactly w x h.
func Resize(img image.Image, w, h int) image.Image {
	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return resized
}

// RoundedCard scales the image to a size x size square, clips it to rounded
// corners and returns the encoded PNG.
func RoundedCard(img image.Image, size int, radius float64) ([]byte, error) {
	scaled := Resize(img, size, size)

	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	dc.Clip()
	dc.DrawImage(scaled, 0, 0)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}
