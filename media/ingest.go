package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"log"

	// Register the decoders uploads arrive in.
	_ "image/gif"
	_ "image/png"

	"github.com/IllustraDesign/ecommerce-3/storage"
)

// ErrNotImage is returned when the uploaded bytes do not decode as a raster
// image. Nothing is written to the object store in that case.
var ErrNotImage = errors.New("media: file is not a decodable image")

// UploadError means both the durable write and the embedded fallback failed.
type UploadError struct {
	StoreErr    error
	FallbackErr error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media: upload failed: %v and fallback failed: %v", e.StoreErr, e.FallbackErr)
}

func (e *UploadError) Unwrap() []error { return []error{e.StoreErr, e.FallbackErr} }

// Kind says which representation an Asset carries.
type Kind string

const (
	// Durable means URL points into the object store.
	Durable Kind = "durable"
	// Embedded means URL is a self-contained data URI. Embedded assets are
	// not persisted anywhere by the pipeline itself; whatever record the URL
	// is written into is their only home.
	Embedded Kind = "embedded"
)

// Asset is the result of an ingest. URL is directly usable as an image
// source in either representation.
type Asset struct {
	Kind Kind   `json:"kind"`
	URL  string `json:"url"`
}

// ObjectStore is the slice of storage.Client the pipeline needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	URLFor(key string) string
}

// Ingestor normalizes uploaded images and persists them, degrading to an
// embedded representation when the store is unreachable.
type Ingestor struct {
	store ObjectStore
}

func NewIngestor(store ObjectStore) *Ingestor {
	return &Ingestor{store: store}
}

// Ingest decodes raw, re-encodes it as JPEG and writes it to the object
// store under a key derived from folder and filename. If the store write
// fails the re-encoded bytes are returned inline as a data URI instead; the
// caller always gets a usable URL unless the input was not an image or both
// paths failed.
func (in *Ingestor) Ingest(ctx context.Context, raw []byte, filename, folder string) (Asset, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return Asset{}, err
	}

	key := storage.ObjectKey(folder, filename)
	if storeErr := in.store.Put(ctx, key, normalized, "image/jpeg"); storeErr != nil {
		log.Printf("❌ Object store write failed, embedding image inline: %v", storeErr)
		uri, fbErr := dataURI(normalized)
		if fbErr != nil {
			return Asset{}, &UploadError{StoreErr: storeErr, FallbackErr: fbErr}
		}
		return Asset{Kind: Embedded, URL: uri}, nil
	}

	log.Printf("✅ Image stored: %s", key)
	return Asset{Kind: Durable, URL: in.store.URLFor(key)}, nil
}

// Normalize decodes any supported raster format and re-encodes it as a
// high-quality JPEG. Alpha and indexed color are flattened to RGB over
// white, so the stored format is uniform regardless of what was uploaded.
func Normalize(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: 95}); err != nil {
		return nil, fmt.Errorf("media: re-encode: %w", err)
	}
	return buf.Bytes(), nil
}

const dataURIPrefix = "data:image/jpeg;base64,"

func dataURI(encoded []byte) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(dataURIPrefix)
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if _, err := enc.Write(encoded); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
