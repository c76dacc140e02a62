package thumb

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/essentialkaos/datakit"

	. "github.com/essentialkaos/check"
)

// ////////////////////////////////////////////////////////////////////////////////// //

func Test(t *testing.T) { TestingT(t) }

type ThumbSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&ThumbSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *ThumbSuite) TestResize(c *C) {
	src := genImage(400, 200)

	img := Resize(src, 100)
	c.Assert(img.Bounds().Dx(), Equals, 100)
	c.Assert(img.Bounds().Dy(), Equals, 50)

	img = Resize(genImage(200, 400), 100)
	c.Assert(img.Bounds().Dx(), Equals, 50)
	c.Assert(img.Bounds().Dy(), Equals, 100)

	img = Resize(genImage(1000, 3), 100)
	c.Assert(img.Bounds().Dx(), Equals, 100)
	c.Assert(img.Bounds().Dy(), Equals, 1)

	c.Assert(Resize(src, 400), Equals, image.Image(src))
	c.Assert(Resize(src, 1000), Equals, image.Image(src))
	c.Assert(Resize(src, 0), Equals, image.Image(src))
	c.Assert(Resize(nil, 100), IsNil)
}

func (s *ThumbSuite) TestThumbnailBounds(c *C) {
	sizes := [][2]int{
		{1, 1}, {10, 10}, {99, 100}, {100, 100}, {101, 100},
		{640, 480}, {480, 640}, {1920, 1080}, {3000, 17}, {17, 3000},
	}

	for _, target := range []int{16, 100, 256} {
		for _, size := range sizes {
			data, err := Thumbnail(genImage(size[0], size[1]), target)
			c.Assert(err, IsNil)

			cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
			c.Assert(err, IsNil)

			c.Assert(max(cfg.Width, cfg.Height) <= target, Equals, true,
				Commentf("Source %dx%d, target %d, got %dx%d", size[0], size[1], target, cfg.Width, cfg.Height))

			// smaller images must not be upscaled
			if size[0] <= target && size[1] <= target {
				c.Assert(cfg.Width, Equals, size[0])
				c.Assert(cfg.Height, Equals, size[1])
			}
		}
	}
}

func (s *ThumbSuite) TestCompress(c *C) {
	src := genImage(640, 480)

	thumb, err := Thumbnail(src, 320)
	c.Assert(err, IsNil)

	comp, err := Compress(src, 320)
	c.Assert(err, IsNil)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(comp))
	c.Assert(err, IsNil)
	c.Assert(cfg.Width, Equals, 320)
	c.Assert(cfg.Height, Equals, 240)

	c.Assert(len(thumb) < len(comp), Equals, true)
}

func (s *ThumbSuite) TestCompressToSize(c *C) {
	src := genImage(640, 480)

	full, err := CompressToSize(src, 640, 0)
	c.Assert(err, IsNil)

	comp, err := Compress(src, 640)
	c.Assert(err, IsNil)
	c.Assert(full, DeepEquals, comp)

	small, err := CompressToSize(src, 640, len(full)/2)
	c.Assert(err, IsNil)
	c.Assert(len(small) < len(full), Equals, true)

	tiny, err := CompressToSize(src, 640, 1)
	c.Assert(err, IsNil)
	c.Assert(tiny, Not(HasLen), 0)
	c.Assert(len(tiny) <= len(small), Equals, true)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(tiny))
	c.Assert(err, IsNil)
	c.Assert(cfg.Width, Equals, 640)
}

func (s *ThumbSuite) TestCompressToSizeMinQuality(c *C) {
	src := genImage(640, 480)

	minData, err := encodeJPEG(src, MinQuality)
	c.Assert(err, IsNil)

	prevData, err := encodeJPEG(src, MinQuality+QualityStep/2)
	c.Assert(err, IsNil)
	c.Assert(len(minData) < len(prevData), Equals, true)

	data, err := CompressToSize(src, 640, len(minData))
	c.Assert(err, IsNil)
	c.Assert(len(data) <= len(minData), Equals, true)
	c.Assert(data, DeepEquals, minData)
}

func (s *ThumbSuite) TestDecode(c *C) {
	var buf bytes.Buffer

	c.Assert(png.Encode(&buf, genImage(30, 20)), IsNil)

	img, err := Decode(buf.Bytes())
	c.Assert(err, IsNil)
	c.Assert(img.Bounds().Dx(), Equals, 30)
	c.Assert(img.Bounds().Dy(), Equals, 20)

	data, err := Thumbnail(genImage(30, 20), 10)
	c.Assert(err, IsNil)

	img, err = Decode(data)
	c.Assert(err, IsNil)
	c.Assert(img.Bounds().Dx(), Equals, 10)
}

func (s *ThumbSuite) TestErrors(c *C) {
	_, err := Thumbnail(nil, 100)
	c.Assert(errors.Is(err, datakit.ErrEncoding), Equals, true)
	c.Assert(errors.Is(err, ErrNilImage), Equals, true)

	_, err = Compress(image.NewRGBA(image.Rect(0, 0, 0, 0)), 100)
	c.Assert(errors.Is(err, datakit.ErrEncoding), Equals, true)
	c.Assert(errors.Is(err, ErrEmptyImage), Equals, true)

	_, err = CompressToSize(nil, 100, 100)
	c.Assert(errors.Is(err, ErrNilImage), Equals, true)

	_, err = Decode(nil)
	c.Assert(errors.Is(err, ErrEmptyData), Equals, true)

	_, err = Decode([]byte("NOT-AN-IMAGE"))
	c.Assert(errors.Is(err, datakit.ErrEncoding), Equals, true)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// genImage generates image with gradient and noise-like pattern
func genImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / max(w, 1)),
				G: uint8(y * 255 / max(h, 1)),
				B: uint8((x*31 + y*17) % 256),
				A: 255,
			})
		}
	}

	return img
}
