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

// Command moonicon writes the application icon in all configured sizes.
//
// It is meant to be run from the project root and, by default, writes
// icon16.png, icon48.png and icon128.png into public/icons. The
// environment variables MOONICON_OUTPUT_DIR, MOONICON_SIZES (comma
// separated) and MOONICON_LOG_LEVEL override the defaults.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/moonicon/internal/config"
	"seehuhn.de/go/moonicon/internal/generate"
)

func main() {
	var cfg generate.Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("moonicon: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generate.Run(ctx, cfg, os.Stdout, logger); err != nil {
		stop()
		config.Exitf("moonicon: %v", err)
	}
}
