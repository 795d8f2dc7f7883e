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

package generate

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/moonicon"
	"seehuhn.de/go/moonicon/canvas"
	"seehuhn.de/go/moonicon/internal/config"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "public", "icons")
	return cfg
}

func TestRunWritesIcons(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 files, got %d", len(entries))
	}
	for _, size := range []int{16, 48, 128} {
		f, err := os.Open(filepath.Join(cfg.OutputDir, FileName(size)))
		if err != nil {
			t.Fatal(err)
		}
		pc, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("icon%d.png: %v", size, err)
		}
		if pc.Width != size || pc.Height != size {
			t.Errorf("icon%d.png is %dx%d", size, pc.Width, pc.Height)
		}
	}

	abs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	want := "Created: icon16.png\n" +
		"Created: icon48.png\n" +
		"Created: icon128.png\n" +
		"\nIcons saved to: " + abs + "\n"
	if got := out.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sizes = []int{48}
	fname := filepath.Join(cfg.OutputDir, FileName(48))

	if err := Run(context.Background(), cfg, &bytes.Buffer{}, nil); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(fname, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(context.Background(), cfg, &bytes.Buffer{}, nil); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run produced a different file")
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestRunOutputDirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(blocker, "icons")

	var out bytes.Buffer
	err := Run(context.Background(), cfg, &out, nil)
	if err == nil || !strings.Contains(err.Error(), "create output directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, cfg, &bytes.Buffer{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, FileName(16))); !os.IsNotExist(err) {
		t.Error("icon written despite cancellation")
	}
}

func TestRunBackend(t *testing.T) {
	for _, b := range []canvas.Backend{canvas.BackendVector, canvas.BackendGG} {
		cfg := testConfig(t)
		cfg.Sizes = []int{16, 48}
		cfg.Backend = b
		if err := Run(context.Background(), cfg, &bytes.Buffer{}, nil); err != nil {
			t.Fatalf("%s: %v", b, err)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		sizes   []int
		invalid bool
		wantErr bool
	}{
		{name: "default", sizes: []int{16, 48, 128}},
		{name: "single", sizes: []int{512}},
		{name: "empty", wantErr: true},
		{name: "zero", sizes: []int{16, 0}, invalid: true, wantErr: true},
		{name: "negative", sizes: []int{-16}, invalid: true, wantErr: true},
		{name: "too large", sizes: []int{moonicon.MaxSize + 1}, invalid: true, wantErr: true},
		{name: "duplicate", sizes: []int{16, 48, 16}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Sizes = c.sizes
			err := cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
			if errors.Is(err, moonicon.ErrInvalidSize) != c.invalid {
				t.Errorf("errors.Is(%v, ErrInvalidSize) = %v", err, !c.invalid)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty output directory accepted")
	}
}

func TestConfigFromEnv(t *testing.T) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.OutputDir != def.OutputDir || cfg.LogLevel != def.LogLevel {
		t.Errorf("got %+v, want %+v", cfg, def)
	}
	if len(cfg.Sizes) != len(def.Sizes) {
		t.Fatalf("got sizes %v, want %v", cfg.Sizes, def.Sizes)
	}
	for i := range def.Sizes {
		if cfg.Sizes[i] != def.Sizes[i] {
			t.Errorf("got sizes %v, want %v", cfg.Sizes, def.Sizes)
		}
	}

	t.Setenv("MOONICON_SIZES", "32")
	t.Setenv("MOONICON_OUTPUT_DIR", "out")
	cfg = Config{}
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "out" || len(cfg.Sizes) != 1 || cfg.Sizes[0] != 32 {
		t.Errorf("environment ignored: %+v", cfg)
	}
}
