// Package thumb provides helpers for downscaling images and serializing them
// to JPEG
package thumb

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/essentialkaos/datakit"
)

// ////////////////////////////////////////////////////////////////////////////////// //

const (
	ThumbnailQuality = 60 // JPEG quality for thumbnails
	CompressQuality  = 85 // JPEG quality for compressed images
	MinQuality       = 10 // Minimal JPEG quality used by CompressToSize
	QualityStep      = 10 // Quality decrement used by CompressToSize
)

// ////////////////////////////////////////////////////////////////////////////////// //

var (
	ErrNilImage   = fmt.Errorf("Image is nil")
	ErrEmptyImage = fmt.Errorf("Image is empty")
	ErrEmptyData  = fmt.Errorf("Image data is empty")
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Resize proportionally downscales image, so its longest edge does not exceed
// targetLength. Images which already fit are returned as is.
func Resize(img image.Image, targetLength int) image.Image {
	if img == nil || targetLength <= 0 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= targetLength && h <= targetLength {
		return img
	}

	w, h = fitSize(w, h, targetLength)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst
}

// Thumbnail resizes image and encodes it to JPEG with thumbnail quality
func Thumbnail(img image.Image, targetLength int) ([]byte, error) {
	return encode(img, targetLength, ThumbnailQuality)
}

// Compress resizes image and encodes it to JPEG with compress quality
func Compress(img image.Image, targetLength int) ([]byte, error) {
	return encode(img, targetLength, CompressQuality)
}

// CompressToSize resizes image and encodes it to JPEG lowering quality step by
// step until result fits maxBytes. If even minimal quality doesn't fit, the
// smallest result is returned.
func CompressToSize(img image.Image, targetLength, maxBytes int) ([]byte, error) {
	err := validate(img)

	if err != nil {
		return nil, err
	}

	img = Resize(img, targetLength)

	var best []byte

	for quality := CompressQuality; ; quality = max(quality-QualityStep, MinQuality) {
		data, err := encodeJPEG(img, quality)

		if err != nil {
			return nil, err
		}

		if best == nil || len(data) < len(best) {
			best = data
		}

		if maxBytes <= 0 || len(data) <= maxBytes || quality <= MinQuality {
			break
		}
	}

	return best, nil
}

// Decode decodes JPEG, PNG or GIF image
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", datakit.ErrEncoding, ErrEmptyData)
	}

	img, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, fmt.Errorf("%w: Can't decode image: %w", datakit.ErrEncoding, err)
	}

	return img, nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// encode resizes image and encodes it with given quality
func encode(img image.Image, targetLength, quality int) ([]byte, error) {
	err := validate(img)

	if err != nil {
		return nil, err
	}

	return encodeJPEG(Resize(img, targetLength), quality)
}

// encodeJPEG encodes image to JPEG
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer

	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})

	if err != nil {
		return nil, fmt.Errorf("%w: Can't encode image: %w", datakit.ErrEncoding, err)
	}

	return buf.Bytes(), nil
}

// validate checks that image can be encoded
func validate(img image.Image) error {
	switch {
	case img == nil:
		return fmt.Errorf("%w: %w", datakit.ErrEncoding, ErrNilImage)
	case img.Bounds().Empty():
		return fmt.Errorf("%w: %w", datakit.ErrEncoding, ErrEmptyImage)
	}

	return nil
}

// fitSize calculates size of image with longest edge equal to target length
func fitSize(w, h, target int) (int, int) {
	if w >= h {
		h = max(1, h*target/w)
		w = target
	} else {
		w = max(1, w*target/h)
		h = target
	}

	return w, h
}
