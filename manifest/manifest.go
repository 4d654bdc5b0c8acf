// Package manifest builds and reads the icon and sound manifests that list
// every asset file the game loads.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/samber/lo"

	"github.com/simukka/ninja-slice/game"
)

// Icons maps an icon category to its image URLs.
type Icons map[string][]string

// Sounds maps a sound category to subcategory to sound URLs.
type Sounds map[string]map[string][]string

// IconCategories are the image folders scanned for icons.
var IconCategories = []string{
	game.CategorySubreddits,
	game.CategoryMemes,
	game.CategoryHazards,
	game.CategoryPowerUps,
}

// SoundCategories are the sound folders scanned for sounds.
var SoundCategories = []string{
	game.SoundCuts,
	game.SoundPowerUps,
	"ui",
	game.SoundEffects,
}

// URL prefixes the manifests are written with, relative to the web root.
const (
	ImagesPrefix = "assets/images"
	SoundsPrefix = "assets/sounds"
)

// Manifest file names.
const (
	IconsFile  = "icons.json"
	SoundsFile = "sounds.json"
)

func hasExt(name string, exts ...string) bool {
	ext := strings.ToLower(path.Ext(name))
	return lo.Contains(exts, ext)
}

// readDir lists a directory, treating a missing one as empty.
func readDir(fsys fs.FS, dir string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	return entries, nil
}

func fileURLs(entries []fs.DirEntry, prefix string, exts ...string) []string {
	files := lo.Filter(entries, func(e fs.DirEntry, _ int) bool {
		return !e.IsDir() && hasExt(e.Name(), exts...)
	})
	return lo.Map(files, func(e fs.DirEntry, _ int) string {
		return prefix + "/" + e.Name()
	})
}

// ScanIcons lists the PNG files of every icon category under fsys, which is
// rooted at the images directory. Every category is present in the result,
// empty when its folder is missing.
func ScanIcons(fsys fs.FS) (Icons, error) {
	icons := make(Icons, len(IconCategories))
	for _, category := range IconCategories {
		entries, err := readDir(fsys, category)
		if err != nil {
			return nil, fmt.Errorf("scan icons: %w", err)
		}
		icons[category] = fileURLs(entries, ImagesPrefix+"/"+category, ".png")
	}
	return icons, nil
}

// ScanSounds lists the WAV and MP3 files of every sound category under fsys,
// which is rooted at the sounds directory. Subfolders become subcategories; a
// category without subfolders puts its files under "default".
func ScanSounds(fsys fs.FS) (Sounds, error) {
	sounds := make(Sounds, len(SoundCategories))
	for _, category := range SoundCategories {
		subs := make(map[string][]string)
		sounds[category] = subs

		entries, err := readDir(fsys, category)
		if err != nil {
			return nil, fmt.Errorf("scan sounds: %w", err)
		}
		if entries == nil {
			continue
		}

		dirs := lo.Filter(entries, func(e fs.DirEntry, _ int) bool { return e.IsDir() })
		if len(dirs) == 0 {
			subs[game.SubDefault] = fileURLs(entries, SoundsPrefix+"/"+category, ".wav", ".mp3")
			continue
		}
		for _, dir := range dirs {
			sub := dir.Name()
			files, err := readDir(fsys, category+"/"+sub)
			if err != nil {
				return nil, fmt.Errorf("scan sounds: %w", err)
			}
			subs[sub] = fileURLs(files, SoundsPrefix+"/"+category+"/"+sub, ".wav", ".mp3")
		}
	}
	return sounds, nil
}

// Encode renders a manifest as indented JSON.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return data, nil
}

// DecodeIcons parses an icons manifest.
func DecodeIcons(data []byte) (Icons, error) {
	var icons Icons
	if err := json.Unmarshal(data, &icons); err != nil {
		return nil, fmt.Errorf("decode icons: %w", err)
	}
	return icons, nil
}

// DecodeSounds parses a sounds manifest.
func DecodeSounds(data []byte) (Sounds, error) {
	var sounds Sounds
	if err := json.Unmarshal(data, &sounds); err != nil {
		return nil, fmt.Errorf("decode sounds: %w", err)
	}
	return sounds, nil
}

// Assets builds the game registry from both manifests.
func Assets(icons Icons, sounds Sounds) *game.Assets {
	return game.NewAssets(icons, sounds)
}
