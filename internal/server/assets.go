package server

import (
	"embed"
	"io/fs"
	"os"
)

// Embed the frontend assets
//
//go:embed all:assets
var assetsFS embed.FS

// GetAssets returns the assets filesystem, either from disk or embedded.
// Setting HYDROMET_ASSETS_DIR to a directory serves assets straight
// from the filesystem, so frontend edits show up without a rebuild.
func GetAssets() fs.FS {
	if dir := os.Getenv("HYDROMET_ASSETS_DIR"); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic("failed to create assets sub-filesystem: " + err.Error())
	}
	return assets
}
