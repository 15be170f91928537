// Copyright (C) 2020 Markus L. Noga
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

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// Writes the image to the given file. The format is chosen by suffix:
// .png, .tif/.tiff with deflate compression, or .jpg/.jpeg.
func WriteFile(img image.Image, fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%s: unknown image format %q", fileName, ext)
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	if err := enc(writer, img); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}
