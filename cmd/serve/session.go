package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/Kire2oo2/fractal"
)

const (
	frameWidth  = 800
	frameHeight = 800
)

// request is one command from the browser.
type request struct {
	Op     string  `json:"op"` // render, zoomAt, zoomCentered, reset, iter, palette
	Px     int     `json:"px"`
	Py     int     `json:"py"`
	Factor float64 `json:"factor"`
	N      int     `json:"n"`
	Mode   string  `json:"mode"`
}

// response carries the rendered frame and the state it was rendered from.
type response struct {
	Frame      string  `json:"frame,omitempty"` // base64 PNG
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Xmin       float64 `json:"xmin"`
	Xmax       float64 `json:"xmax"`
	Ymin       float64 `json:"ymin"`
	Ymax       float64 `json:"ymax"`
	Iterations int     `json:"iterations"`
	Palette    string  `json:"palette"`
	Error      string  `json:"error,omitempty"`
}

type session struct {
	conn   *websocket.Conn
	engine *fractal.Engine
}

func newSession(c *websocket.Conn) *session {
	return &session{
		conn:   c,
		engine: fractal.NewEngine(frameWidth, frameHeight, fractal.Home),
	}
}

// loop reads commands until the connection drops. Each command is applied
// and answered with a fresh frame before the next is read, so mutations
// never overlap a render pass.
func (s *session) loop(ctx context.Context) {
	defer s.conn.CloseNow()

	for {
		var req request
		if err := wsjson.Read(ctx, s.conn, &req); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return
			}
			log.Printf("read: %v", err)
			return
		}

		resp := s.handle(req)
		if err := wsjson.Write(ctx, s.conn, resp); err != nil {
			log.Printf("write: %v", err)
			return
		}
	}
}

func (s *session) handle(req request) response {
	var userErr string

	switch req.Op {
	case "render", "":
		// frame only
	case "zoomAt":
		if !s.engine.ZoomAt(req.Px, req.Py, req.Factor) {
			userErr = "zoom refused: viewport at minimum width"
		}
	case "zoomCentered":
		if !s.engine.ZoomCentered(req.Factor) {
			userErr = "zoom refused: viewport at minimum width"
		}
	case "reset":
		s.engine.Reset()
	case "iter":
		if err := s.engine.SetIterations(req.N); err != nil {
			userErr = err.Error()
		}
	case "palette":
		mode, ok := fractal.ParsePaletteMode(req.Mode)
		if !ok {
			userErr = fmt.Sprintf("unknown palette %q", req.Mode)
		} else {
			s.engine.SetPaletteMode(mode)
		}
	default:
		userErr = fmt.Sprintf("unknown op %q", req.Op)
	}

	frame, err := s.renderFrame()
	if err != nil {
		// PNG encoding of a valid RGBA image does not fail in practice.
		log.Printf("frame: %v", err)
		userErr = "internal render error"
	}

	b := s.engine.Bounds()
	return response{
		Frame:      frame,
		Width:      frameWidth,
		Height:     frameHeight,
		Xmin:       b.Xmin,
		Xmax:       b.Xmax,
		Ymin:       b.Ymin,
		Ymax:       b.Ymax,
		Iterations: s.engine.Iterations(),
		Palette:    s.engine.PaletteModeNow().String(),
		Error:      userErr,
	}
}

func (s *session) renderFrame() (string, error) {
	img := s.engine.Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("png.Encode: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
