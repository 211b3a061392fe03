// seehuhn.de/go/bitmap - a shared 1-bit raster canvas
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

// Command bitmap is an interactive drawing program for a 1-bit canvas.
//
// Commands are read from standard input, see the "help" command for a
// list.  Whenever a command changes the canvas, the new canvas contents
// are printed as text.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"seehuhn.de/go/bitmap"
)

func main() {
	width := flag.Int("width", 30, "initial canvas width")
	height := flag.Int("height", 15, "initial canvas height")
	seed := flag.Uint64("seed", 0, "seed for random_shapes (0 = random)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
		bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := bitmap.New(*width, *height)
	if err != nil {
		log.WithError(err).Fatal("cannot create canvas")
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	log.WithField("seed", s).Debug("random number generator initialised")

	sess := newSession(c, os.Stdin, os.Stdout, log)
	sess.rng = rand.New(rand.NewPCG(s, s))
	sess.prompt = term.IsTerminal(int(os.Stdin.Fd()))

	if err := sess.run(); err != nil {
		log.WithError(err).Fatal("command loop failed")
	}
}
