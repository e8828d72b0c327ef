package main

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/app"
)

const (
	configDir = "fast"
)

//go:embed static/*
var static embed.FS

func init() {
	_ = fs.WalkDir(static, "static", func(path string, d fs.DirEntry, err error) error {
		if !d.IsDir() {
			var b []byte

			b, err = fs.ReadFile(static, path)
			if err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}

			relPath := filepath.Join(configDir, path)

			var pathToFile string

			pathToFile, err = xdg.DataFile(relPath)
			if err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}

			if _, err = xdg.SearchDataFile(relPath); err != nil {
				_ = os.WriteFile(pathToFile, b, os.ModePerm)
			}
		}

		return err
	})
}

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
