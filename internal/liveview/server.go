// Package liveview serves a live-updating rendered view of an
// ansiterm.Model over HTTP and WebSocket, for embedding a captured
// terminal session in a build dashboard. One Server owns exactly one
// Model and one goroutine feeds it; connected clients only ever read
// the server's already-rendered output, so ansiterm.Update is never
// called concurrently for the same Model (see ansiterm's concurrency
// notes).
package liveview

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/phroun/ansiterm"
	"github.com/phroun/ansiterm/render"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server streams render.Document updates for a single tailed file to
// any number of connected browsers.
type Server struct {
	path string

	mu       sync.RWMutex
	model    ansiterm.Model
	mz       *render.Memoizer
	clients  map[string]chan render.Document
}

// New opens path, reads its current contents into a fresh Model, and
// starts a background goroutine that watches the file for appends and
// re-renders on every change.
func New(path string) (*Server, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	s := &Server{
		path:    path,
		model:   ansiterm.Init(ansiterm.Cooked),
		mz:      render.NewMemoizer(),
		clients: make(map[string]chan render.Document),
	}

	offset, err := s.drain(f, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.Close()

	go s.watch(offset)
	return s, nil
}

// drain reads path from offset to EOF under the server's lock, feeding
// what it reads to the model, and returns the new offset.
func (s *Server) drain(f *os.File, offset int64) (int64, error) {
	if _, err := f.Seek(offset, 0); err != nil {
		return offset, fmt.Errorf("seeking %s: %w", s.path, err)
	}
	buf := make([]byte, 32*1024)
	total := offset
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		n, err := f.Read(buf)
		if n > 0 {
			s.model = ansiterm.Update(string(buf[:n]), s.model)
			total += int64(n)
		}
		if err != nil {
			break
		}
	}
	return total, nil
}

func (s *Server) watch(offset int64) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("liveview: creating watcher for %s: %v", s.path, err)
		return
	}
	defer watcher.Close()
	if err := watcher.Add(s.path); err != nil {
		log.Printf("liveview: watching %s: %v", s.path, err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f, err := os.Open(s.path)
			if err != nil {
				log.Printf("liveview: reopening %s: %v", s.path, err)
				continue
			}
			newOffset, err := s.drain(f, offset)
			f.Close()
			if err != nil {
				log.Printf("liveview: draining %s: %v", s.path, err)
				continue
			}
			if newOffset != offset {
				offset = newOffset
				s.broadcast()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("liveview: watcher error for %s: %v", s.path, err)
		}
	}
}

func (s *Server) broadcast() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := s.mz.Render(s.model)
	for id, ch := range s.clients {
		select {
		case ch <- doc:
		default:
			log.Printf("liveview: client %s is slow, dropping update", id)
		}
	}
}

// ListenAndServe starts the HTTP server on addr. It blocks until the
// server stops.
func (s *Server) ListenAndServe(addr string) error {
	r := mux.NewRouter()
	r.HandleFunc("/", s.serveIndex)
	r.HandleFunc("/ws", s.serveWS)
	return http.ListenAndServe(addr, r)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("liveview: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	ch := make(chan render.Document, 4)

	s.mu.Lock()
	s.clients[id] = ch
	current := s.mz.Render(s.model)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
	}()

	if err := s.pushDocument(conn, current); err != nil {
		return
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The client never sends anything meaningful, but its pong replies
	// (and close frames) only surface through ReadMessage, so a reader
	// goroutine has to drain the connection for the read deadline above
	// to ever detect a stalled peer.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case doc := <-ch:
			if err := s.pushDocument(conn, doc); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readerDone:
			return
		}
	}
}

func (s *Server) pushDocument(conn *websocket.Conn, doc render.Document) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>ansiterm live view</title></head>
<body>
<pre id="view"></pre>
<script>
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = (ev) => {
    const doc = JSON.parse(ev.data);
    const view = document.getElementById("view");
    view.textContent = doc.Rows.map(row =>
      (row.Spans || []).map(s => s.Text).join("")
    ).join("\n");
  };
</script>
</body>
</html>
`
