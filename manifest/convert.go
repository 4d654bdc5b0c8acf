//go:build !js
// +build !js

package manifest

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// ConvertWebP converts every WebP icon under imagesDir to PNG and removes the
// original. It returns the paths of the written PNG files.
func ConvertWebP(imagesDir string) ([]string, error) {
	var written []string
	for _, category := range IconCategories {
		dir := filepath.Join(imagesDir, category)
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("convert webp: %w", err)
		}

		for _, e := range entries {
			if e.IsDir() || !hasExt(e.Name(), ".webp") {
				continue
			}
			src := filepath.Join(dir, e.Name())
			dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".png"
			if err := convertFile(src, dst); err != nil {
				return written, fmt.Errorf("convert webp: %w", err)
			}
			written = append(written, dst)
		}
	}
	return written, nil
}

func convertFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	img, err := webp.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// WriteFile encodes a manifest into path.
func WriteFile(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
