// Command assetgen regenerates icons.json and sounds.json from the assets directory.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/simukka/ninja-slice/manifest"
)

func main() {
	root := flag.String("assets", "static/assets", "Assets directory containing images/ and sounds/")
	convert := flag.Bool("convert-webp", true, "Convert WebP icons to PNG before scanning")
	flag.Parse()

	imagesDir := filepath.Join(*root, "images")
	soundsDir := filepath.Join(*root, "sounds")

	if *convert {
		written, err := manifest.ConvertWebP(imagesDir)
		if err != nil {
			log.Fatalf("Failed to convert icons: %v", err)
		}
		for _, path := range written {
			log.Printf("Converted %s", path)
		}
	}

	icons, err := manifest.ScanIcons(os.DirFS(imagesDir))
	if err != nil {
		log.Fatalf("Failed to scan icons: %v", err)
	}
	iconsPath := filepath.Join(imagesDir, manifest.IconsFile)
	if err := manifest.WriteFile(iconsPath, icons); err != nil {
		log.Fatalf("Failed to write icons: %v", err)
	}
	log.Printf("Wrote %s", iconsPath)

	sounds, err := manifest.ScanSounds(os.DirFS(soundsDir))
	if err != nil {
		log.Fatalf("Failed to scan sounds: %v", err)
	}
	soundsPath := filepath.Join(soundsDir, manifest.SoundsFile)
	if err := manifest.WriteFile(soundsPath, sounds); err != nil {
		log.Fatalf("Failed to write sounds: %v", err)
	}
	log.Printf("Wrote %s", soundsPath)
}
