package rasterizer

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
)

// Writer encodes a drawn preview.
type Writer func(w io.Writer, img image.Image) error

// PNGWriter writes the preview as a PNG file
func PNGWriter() Writer {
	return func(w io.Writer, img image.Image) error {
		return png.Encode(w, img)
	}
}

// JPGWriter writes the preview as a JPG file
func JPGWriter(opts *jpeg.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the preview as a GIF file
func GIFWriter(opts *gif.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, opts)
	}
}

// WriterFor returns the writer for a file extension, which is one of .png, .jpg, .jpeg or .gif.
func WriterFor(ext string) (Writer, bool) {
	switch ext {
	case ".png":
		return PNGWriter(), true
	case ".jpg", ".jpeg":
		return JPGWriter(nil), true
	case ".gif":
		return GIFWriter(nil), true
	}
	return nil, false
}
