// seehuhn.de/go/label - compose and verify printable label images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Labeldraw renders a label layout to an image file, or checks a scanned
// image against a layout.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer/standard"
	"seehuhn.de/go/label/metric"
	"seehuhn.de/go/label/page"
)

// errVerifyFailed is returned by run if the image does not match the
// layout.
var errVerifyFailed = errors.New("verification failed")

func main() {
	vv := flag.Bool("vv", false, "print debug messages")
	v := flag.Bool("v", false, "print informational messages")
	q := flag.Bool("q", false, "print only errors")
	ctxFile := flag.String("ctx", "", "read the element contents from `file`, one line per element")
	verify := flag.String("verify", "", "verify the scanned `image` instead of drawing")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] layout.(json|yaml|toml) output.(png|bmp|tiff)\n", os.Args[0])
		fmt.Fprintf(out, "       %s [options] -verify scan.png layout.(json|yaml|toml)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: label.LevelFromFlags(*vv, *v, *q),
	})
	label.SetLogger(slog.New(handler))

	nArgs := 2
	if *verify != "" {
		nArgs = 1
	}
	if flag.NArg() != nArgs {
		flag.Usage()
		os.Exit(2)
	}

	opt := &options{
		layout:  flag.Arg(0),
		ctxFile: *ctxFile,
		verify:  *verify,
	}
	if *verify == "" {
		opt.output = flag.Arg(1)
	}
	err := run(opt)
	if errors.Is(err, errVerifyFailed) {
		fmt.Fprintln(os.Stderr, "labeldraw:", err)
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "labeldraw:", err)
		os.Exit(2)
	}
}

type options struct {
	layout  string
	ctxFile string
	verify  string
	output  string // "-" for standard output
}

func run(opt *options) error {
	p, err := loadLayout(opt.layout)
	if err != nil {
		return err
	}
	defer p.Close()
	err = p.Allocate()
	if err != nil {
		return err
	}

	ctx := p.Context()
	if opt.ctxFile != "" {
		ctx, err = readContext(opt.ctxFile)
		if err != nil {
			return err
		}
	}

	if opt.verify != "" {
		img, err := readImage(opt.verify)
		if err != nil {
			return err
		}
		ok, err := p.VerifyImage(img, ctx)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", opt.verify, errVerifyFailed)
		}
		label.Logger().Info("verification passed", "image", opt.verify)
		return nil
	}

	img, err := p.Draw(ctx)
	if err != nil {
		return err
	}
	return writeImage(opt.output, img)
}

// loadLayout reads a layout document.  Documents with a printing
// resolution give their geometry in metric units.
func loadLayout(fname string) (*page.Page, error) {
	doc, err := config.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	layout := doc
	if obj, ok := config.AsObject(doc); ok {
		switch {
		case obj.Has(metric.KeyResolution):
			layout, err = metric.ConvertLayout(obj)
			if err != nil {
				return nil, err
			}
		case obj.Has(metric.KeyLayout):
			layout = obj[metric.KeyLayout]
		}
	}

	p, err := page.LoadLayout(standard.Registry(), layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	label.Logger().Info("layout loaded",
		"file", fname,
		"size", p.Size(),
		"elements", len(p.Elements()))
	return p, nil
}

// readContext reads one element content per line.  A line consisting of
// a single "-" stands for an element without content.
func readContext(fname string) (label.Context, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return parseContext(fd)
}

func parseContext(r io.Reader) (label.Context, error) {
	var ctx label.Context
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "-" {
			ctx = append(ctx, label.NoContent)
		} else {
			ctx = append(ctx, label.Text(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ctx, nil
}

func readImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(fname string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png", "":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%s: unsupported image format", fname)
	}
}

func writeImage(fname string, img image.Image) (err error) {
	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write image data to a terminal")
		}
		return png.Encode(os.Stdout, img)
	}

	encode, err := encoderFor(fname)
	if err != nil {
		return err
	}
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	err = encode(fd, img)
	if err != nil {
		return err
	}
	label.Logger().Info("image written", "file", fname, "size", img.Bounds().Size())
	return nil
}
