package main

import (
	"fmt"
	"log"
	"os"
)

// clickLog appends clicked complex coordinates to a file. Write failures
// are reported and swallowed; losing a log line never stops the viewer.
type clickLog struct {
	f *os.File
}

func openClickLog(path string) (*clickLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &clickLog{f: f}, nil
}

func (c *clickLog) record(x, y float64) {
	if _, err := fmt.Fprintf(c.f, "%g %g\n", x, y); err != nil {
		log.Printf("click log: %v", err)
	}
}

func (c *clickLog) Close() error {
	return c.f.Close()
}
