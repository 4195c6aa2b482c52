// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"cogentcore.org/core/xyz"
	"github.com/HugoSmits86/nativewebp"
)

// EncodeSnapshot writes the image to w in the lossless WebP format.
func EncodeSnapshot(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("view: no image to encode")
	}
	return nativewebp.Encode(w, img, nil)
}

// Snapshot writes the current rendered frame of the scene to w as WebP.
func Snapshot(sc *xyz.Scene, w io.Writer) error {
	img, err := sc.ImageCopy()
	if err != nil {
		return fmt.Errorf("view: snapshot: %w", err)
	}
	if img == nil {
		return errors.New("view: snapshot: no rendered frame")
	}
	return EncodeSnapshot(w, img)
}

// SaveSnapshot saves the current rendered frame of the scene
// to the given WebP file.
func SaveSnapshot(sc *xyz.Scene, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Snapshot(sc, bw); err != nil {
		return err
	}
	return bw.Flush()
}
