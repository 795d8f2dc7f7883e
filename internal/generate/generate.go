// seehuhn.de/go/moonicon - procedural icon generator
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

// Package generate writes the icon files for a list of sizes.
package generate

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/moonicon"
	"seehuhn.de/go/moonicon/canvas"
)

// Config selects which icons are written where.
type Config struct {
	OutputDir string     `env:"MOONICON_OUTPUT_DIR" envDefault:"public/icons"`
	Sizes     []int      `env:"MOONICON_SIZES" envDefault:"16,48,128"`
	LogLevel  slog.Level `env:"MOONICON_LOG_LEVEL" envDefault:"WARN"`

	// Backend is the canvas backend; empty means canvas.BackendRaster.
	Backend canvas.Backend
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		OutputDir: "public/icons",
		Sizes:     []int{16, 48, 128},
		LogLevel:  slog.LevelWarn,
	}
}

// Validate checks that the size list is non-empty, that every size is
// supported, and that no size occurs twice.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("no output directory")
	}
	if len(c.Sizes) == 0 {
		return errors.New("no icon sizes")
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if err := moonicon.CheckSize(size); err != nil {
			return err
		}
		if seen[size] {
			return fmt.Errorf("duplicate icon size %d", size)
		}
		seen[size] = true
	}
	return nil
}

// FileName returns the name of the icon file for the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Run composes one icon per configured size and writes it as a PNG file
// into the output directory, replacing existing files. For every file a
// line is printed to out, followed by the absolute output directory.
// A nil logger discards diagnostics.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	absDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return err
	}

	images, err := composeAll(ctx, cfg, logger)
	if err != nil {
		return err
	}

	for i, size := range cfg.Sizes {
		name := FileName(size)
		fname := filepath.Join(cfg.OutputDir, name)
		if err := writePNG(fname, images[i]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logger.Info("icon written", "size", size, "path", fname)
		fmt.Fprintf(out, "Created: %s\n", name)
	}
	fmt.Fprintf(out, "\nIcons saved to: %s\n", absDir)
	return nil
}

// composeAll renders all sizes concurrently. The images are returned in
// the order of cfg.Sizes.
func composeAll(ctx context.Context, cfg Config, logger *slog.Logger) ([]image.Image, error) {
	opts := []moonicon.Option{moonicon.WithBackend(cfg.Backend)}

	images := make([]image.Image, len(cfg.Sizes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, size := range cfg.Sizes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			img, err := moonicon.Compose(size, opts...)
			if err != nil {
				return fmt.Errorf("compose %dx%d icon: %w", size, size, err)
			}
			logger.Debug("icon composed", "size", size, "elapsed", time.Since(start))
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// writePNG encodes img into a temporary file next to fname and renames
// it into place, so that fname is either the old or the new icon.
func writePNG(fname string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(tmp, img); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}
