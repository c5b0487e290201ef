// serve hosts the browser viewer: an embedded page plus a /ws endpoint.
// Each websocket connection gets its own engine; the page sends JSON
// commands (zoom, iterations, palette) and receives base64 PNG frames.
package main

import (
	"flag"
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	flag.Parse()

	srv := webServer(*addr)
	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
