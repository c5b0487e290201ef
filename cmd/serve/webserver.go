package main

import (
	_ "embed"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

//go:embed index.html
var indexPage []byte

// webServer builds the http server: the embedded viewer page at / and
// the websocket endpoint at /ws.
func webServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexPage)
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the connection and hands it to a session.
// One session per connection; the session loop serializes mutations and
// render passes for that viewer.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("viewer connected: %s", r.RemoteAddr)
	newSession(c).loop(r.Context())
	log.Printf("viewer gone: %s", r.RemoteAddr)
}
