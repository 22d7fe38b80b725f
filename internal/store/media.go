package store

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/disintegration/imaging"
)

const (
	MaxImageWidth = 1080
	// MaxImagePixels bounds the decoded size of an upload, checked from
	// the image header before any pixel data is read.
	MaxImagePixels = 40_000_000
	MaxUploadBytes = 10 << 20
	jpegQuality    = 82
)

// Image is an uploaded photo, normalised to an upright JPEG no wider than
// MaxImageWidth.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []byte `json:"-"`
}

func (i Image) ContentType() string { return "image/jpeg" }

type Media struct {
	mu    sync.RWMutex
	newID func() string
	byID  map[string]*Image
}

// Put decodes r, applies EXIF orientation, downsizes wide images and
// stores the result.
func (m *Media) Put(r io.Reader) (Image, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("read upload: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return Image{}, fileError("max_size")
	}
	hdr, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Image{}, fileError("image")
	}
	if hdr.Width <= 0 || hdr.Height <= 0 || int64(hdr.Width)*int64(hdr.Height) > MaxImagePixels {
		return Image{}, fileError("max_pixels")
	}

	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return Image{}, fileError("image")
	}
	if src.Bounds().Dx() > MaxImageWidth {
		src = imaging.Resize(src, MaxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return Image{}, fmt.Errorf("encode image: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newID()
	img := Image{
		ID:     id,
		URL:    "/media/" + id,
		Width:  src.Bounds().Dx(),
		Height: src.Bounds().Dy(),
		Data:   buf.Bytes(),
	}
	m.byID[id] = &img
	return img, nil
}

func (m *Media) Get(id string) (Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.byID[id]
	if !ok {
		return Image{}, notFound("image", id)
	}
	return *img, nil
}

func fileError(rule string) error {
	return &ValidationError{Fields: []FieldError{{Field: "file", Rule: rule}}}
}
