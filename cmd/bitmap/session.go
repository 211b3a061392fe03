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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/bitmap"
)

const helpText = `Commands:
  resize <width> <height>     - Resize the bitmap
  line <x1> <y1> <x2> <y2>    - Draw a line from (x1, y1) to (x2, y2)
  circle <x0> <y0> <radius>   - Draw a circle with center (x0, y0) and radius
  random_shapes               - Draw 2 circles and 2 lines at random places, concurrently
  clear                       - Clear the bitmap
  help                        - Show this help
  exit                        - Exit the program
`

// errExit is returned by exec when the user asks to leave.
var errExit = errors.New("exit")

// session holds the state of one interactive drawing session.
type session struct {
	canvas *bitmap.Canvas
	in     *bufio.Scanner
	out    io.Writer
	log    *logrus.Logger
	rng    *rand.Rand

	// prompt controls whether a prompt is shown before each command.
	prompt bool

	// checksum of the canvas contents last shown to the user
	shown uint32
}

func newSession(c *bitmap.Canvas, in io.Reader, out io.Writer, log *logrus.Logger) *session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &session{
		canvas: c,
		in:     sc,
		out:    out,
		log:    log,
		rng:    rand.New(rand.NewPCG(1, 1)),
		shown:  c.Snapshot().Checksum(),
	}
}

// run executes commands until "exit" is read or the input ends.
func (s *session) run() error {
	if _, err := io.WriteString(s.out, helpText); err != nil {
		return err
	}
	for {
		if s.prompt {
			fmt.Fprint(s.out, "Enter command: ")
		}
		cmd, ok := s.next()
		if !ok {
			break
		}

		start := time.Now()
		err := s.exec(cmd)
		if errors.Is(err, errExit) {
			return nil
		} else if err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"command":  cmd,
			"duration": time.Since(start),
		}).Debug("command done")
	}
	return s.in.Err()
}

// exec executes a single command.  Arguments are read from the input as
// needed.  The canvas is printed if the command changed it.
func (s *session) exec(cmd string) error {
	switch cmd {
	case "resize":
		args, ok := s.ints(2)
		if !ok {
			fmt.Fprintln(s.out, "Invalid width or height!")
			break
		}
		if err := s.canvas.Resize(args[0], args[1]); err != nil {
			s.log.WithError(err).Warn("resize failed")
			fmt.Fprintln(s.out, err)
		}
	case "line":
		args, ok := s.ints(4)
		if !ok {
			fmt.Fprintln(s.out, "Invalid coordinates!")
			break
		}
		bitmap.DrawLine(s.canvas, args[0], args[1], args[2], args[3])
	case "circle":
		args, ok := s.ints(3)
		if !ok {
			fmt.Fprintln(s.out, "Invalid center or radius!")
			break
		}
		bitmap.DrawCircle(s.canvas, args[0], args[1], args[2])
	case "random_shapes":
		w, h := s.canvas.Size()
		shapes := bitmap.RandomShapes(s.rng, w, h)
		for _, shape := range shapes {
			s.log.WithField("shape", shape).Debug("random shape")
		}
		bitmap.DrawAll(s.canvas, shapes...)
	case "clear":
		s.canvas.Clear()
	case "help":
		_, err := io.WriteString(s.out, helpText)
		return err
	case "exit":
		return errExit
	default:
		fmt.Fprintln(s.out, "Unknown command!")
		_, err := io.WriteString(s.out, helpText)
		return err
	}
	return s.show()
}

// show prints the canvas if it differs from the last one printed.
func (s *session) show() error {
	snap := s.canvas.Snapshot()
	sum := snap.Checksum()
	if sum == s.shown {
		return nil
	}
	s.shown = sum
	_, err := snap.WriteText(s.out)
	return err
}

// next returns the next word of input.
func (s *session) next() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// ints reads n words and parses them as integers.
// All n words are consumed, even if some of them fail to parse.
func (s *session) ints(n int) ([]int, bool) {
	res := make([]int, n)
	ok := true
	for i := range res {
		word, more := s.next()
		if !more {
			return nil, false
		}
		v, err := strconv.Atoi(word)
		if err != nil {
			s.log.WithField("arg", word).Debug("not an integer")
			ok = false
		}
		res[i] = v
	}
	return res, ok
}
