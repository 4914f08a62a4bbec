// Package pdf is a small line-oriented writer over gofpdf: append text lines,
// append images, serialize to bytes.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	fontFamily     = "Arial"
	lineHeight     = 10.0
	maxImageSidePx = 1200
)

type Document struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	images int
}

func New() *Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	return &Document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *Document) Title(text string) {
	d.pdf.SetFont(fontFamily, "B", 16)
	d.pdf.CellFormat(0, lineHeight, d.tr(text), "", 1, "C", false, 0, "")
}

// Line writes regular text, wrapping long values onto following lines.
func (d *Document) Line(text string) {
	d.pdf.SetFont(fontFamily, "", 12)
	d.pdf.MultiCell(0, lineHeight, d.tr(text), "", "L", false)
}

func (d *Document) BoldLine(text string) {
	d.pdf.SetFont(fontFamily, "B", 12)
	d.pdf.MultiCell(0, lineHeight, d.tr(text), "", "L", false)
}

func (d *Document) Gap(height float64) {
	d.pdf.Ln(height)
}

// ImageFile decodes, downsizes and re-encodes the image before embedding it
// at the given width in mm. Undecodable files are rejected without touching the document.
func (d *Document) ImageFile(path string, width float64) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image %s: %w", path, err)
	}
	img = imaging.Fit(img, maxImageSidePx, maxImageSidePx, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("encode image %s: %w", path, err)
	}
	return d.place(buf.Bytes(), "JPG", width)
}

// QRCode embeds a QR code encoding payload, size mm wide.
func (d *Document) QRCode(payload string, size float64) error {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}
	return d.place(png, "PNG", size)
}

func (d *Document) place(data []byte, imageType string, width float64) error {
	d.images++
	name := fmt.Sprintf("img%d", d.images)
	opts := gofpdf.ImageOptions{ImageType: imageType}

	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	d.pdf.ImageOptions(name, d.pdf.GetX(), d.pdf.GetY(), width, 0, true, opts, 0, "")
	return d.pdf.Error()
}

func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
