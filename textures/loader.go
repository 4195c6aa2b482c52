// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textures loads the surface textures of the bodies in the
// background, reporting progress as they arrive. The scene is usable
// before any texture is loaded: textures are applied in place when ready.
package textures

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Decoders are the image decoders for each supported file extension.
// Images are decoded by extension rather than sniffed, since TGA files
// have no magic number.
var Decoders = map[string]func(r io.Reader) (image.Image, error){
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".png":  png.Decode,
	".gif":  gif.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// Decode decodes the image data in r according to the extension
// of filename.
func Decode(r io.Reader, filename string) (image.Image, error) {
	ext := strings.ToLower(path.Ext(filename))
	dec, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported image extension %q", ext)
	}
	return dec(r)
}

// Loader loads a set of named textures from a filesystem, concurrently.
type Loader struct {

	// FS is the filesystem the texture files are read from.
	FS fs.FS

	// Files maps logical texture names to paths within FS.
	Files map[string]string

	// MaxSize is the maximum width or height of a loaded texture;
	// larger images are scaled down. 0 means no limit.
	MaxSize int

	// Limit is the maximum number of textures decoded at once.
	Limit int

	// OnLoad is called with each successfully loaded texture.
	// It is called from a loading goroutine.
	OnLoad func(name string, img *image.RGBA)

	// OnProgress is called after each texture is done, whether it loaded
	// or failed, with the number done so far and the total.
	// It is called from a loading goroutine.
	OnProgress func(done, total int)

	mu     sync.Mutex
	done   int
	failed []string
}

// NewLoader returns a new [Loader] for the given files in fsys.
func NewLoader(fsys fs.FS, files map[string]string) *Loader {
	return &Loader{FS: fsys, Files: files, MaxSize: 2048, Limit: 4}
}

// Total returns the number of textures to load.
func (ld *Loader) Total() int { return len(ld.Files) }

// Progress returns the number of textures done and the total.
func (ld *Loader) Progress() (done, total int) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.done, len(ld.Files)
}

// Failed returns the sorted names of the textures that could not be loaded.
func (ld *Loader) Failed() []string {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	f := slices.Clone(ld.failed)
	slices.Sort(f)
	return f
}

// Load loads all textures, blocking until they are done or the context
// is canceled. Progress restarts from zero on each call. A texture that
// fails to load is logged and skipped; the returned error joins all such
// failures, and is nil if all loaded.
func (ld *Loader) Load(ctx context.Context) error {
	ld.mu.Lock()
	ld.done = 0
	ld.failed = nil
	ld.mu.Unlock()

	names := make([]string, 0, len(ld.Files))
	for nm := range ld.Files {
		names = append(names, nm)
	}
	slices.Sort(names)

	g, ctx := errgroup.WithContext(ctx)
	if ld.Limit > 0 {
		g.SetLimit(ld.Limit)
	}
	var mu sync.Mutex
	var errs []error
	for _, nm := range names {
		fn := ld.Files[nm]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := ld.open(fn)
			if err != nil {
				slog.Error("textures: could not load texture", "name", nm, "file", fn, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("texture %q: %w", nm, err))
				mu.Unlock()
			} else if ld.OnLoad != nil {
				ld.OnLoad(nm, img)
			}
			ld.finish(nm, err != nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// finish records that the texture is done and reports progress.
func (ld *Loader) finish(name string, failed bool) {
	ld.mu.Lock()
	ld.done++
	if failed {
		ld.failed = append(ld.failed, name)
	}
	done, total := ld.done, len(ld.Files)
	ld.mu.Unlock()
	if ld.OnProgress != nil {
		ld.OnProgress(done, total)
	}
}

// open reads, decodes and, if needed, downscales the given file.
func (ld *Loader) open(filename string) (*image.RGBA, error) {
	f, err := ld.FS.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f, filename)
	if err != nil {
		return nil, err
	}
	return imagex.CloneAsRGBA(Fit(img, ld.MaxSize)), nil
}

// Fit returns the image scaled down to fit within limit x limit pixels,
// preserving its aspect ratio. It returns the image itself if it already
// fits or limit is 0.
func Fit(img image.Image, limit int) image.Image {
	sz := img.Bounds().Size()
	if limit <= 0 || (sz.X <= limit && sz.Y <= limit) {
		return img
	}
	w, h := limit, limit
	if sz.X >= sz.Y {
		h = max(1, sz.Y*limit/sz.X)
	} else {
		w = max(1, sz.X*limit/sz.Y)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
