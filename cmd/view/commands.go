package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Kire2oo2/fractal"
)

type opcode int

const (
	opIter opcode = iota
	opZoom
	opReset
	opPalette
)

type command struct {
	op     opcode
	n      int
	factor float64
	mode   fractal.PaletteMode
}

// readCommands starts the stdin console reader. One goroutine parses
// lines and posts commands on the returned channel; the update loop
// drains it between render passes, so console input never mutates the
// viewport while a pass is running.
func readCommands() <-chan command {
	ch := make(chan command, 16)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			cmd, err := parseCommand(sc.Text())
			if err != nil {
				fmt.Println(err)
				continue
			}
			if cmd != nil {
				ch <- *cmd
			}
		}
	}()
	return ch
}

func parseCommand(line string) (*command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, nil
	}

	switch fields[0] {
	case "help":
		fmt.Print(`commands:
  iter N          set the iteration budget
  zoom F          scale the view by F around its center (F<1 zooms in)
  reset | home    restore the starting view
  palette M       switch palette: color, gray or legacy
`)
		return nil, nil

	case "iter":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: iter N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("iter: %q is not a number", fields[1])
		}
		return &command{op: opIter, n: n}, nil

	case "zoom":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: zoom F")
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("zoom: %q is not a number", fields[1])
		}
		return &command{op: opZoom, factor: f}, nil

	case "reset", "home":
		return &command{op: opReset}, nil

	case "palette":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: palette color|gray|legacy")
		}
		mode, ok := fractal.ParsePaletteMode(fields[1])
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", fields[1])
		}
		return &command{op: opPalette, mode: mode}, nil
	}

	return nil, fmt.Errorf("unknown command %q (try help)", fields[0])
}
