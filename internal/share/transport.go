// Package share serves a read-only live view of the canvas to viewers on
// the local network.
package share

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"net"
	"net/http"
	"sync"

	"PaintBrush/internal/export"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/mdns"
	"github.com/nfnt/resize"
)

const sendBuffer = 4

// viewer is one websocket client receiving frames.
type viewer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Server keeps the latest canvas frame and pushes every new frame to the
// connected viewers.
type Server struct {
	ID string

	thumbWidth uint
	upgrader   websocket.Upgrader

	mu      sync.RWMutex
	viewers map[string]*viewer
	frame   []byte
	thumb   []byte

	httpSrv *http.Server
	mdnsSrv *mdns.Server
}

func NewServer(thumbWidth int) *Server {
	return &Server{
		ID:         uuid.NewString(),
		thumbWidth: uint(thumbWidth),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[string]*viewer),
	}
}

// Handler serves /ws, /snapshot.png and /thumbnail.png.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/snapshot.png", func(w http.ResponseWriter, r *http.Request) {
		s.servePNG(w, func() []byte { return s.frame })
	})
	mux.HandleFunc("/thumbnail.png", func(w http.ResponseWriter, r *http.Request) {
		s.servePNG(w, func() []byte { return s.thumb })
	})
	return mux
}

// Start listens on port and advertises the feed over mDNS. A failed
// advertisement is logged and the feed keeps running.
func (s *Server) Start(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	s.httpSrv = &http.Server{Handler: s.Handler()}
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[SHARE] Server stopped: %v", err)
		}
	}()
	log.Printf("[SHARE] Live view listening on port %d", port)

	if s.mdnsSrv, err = advertise(port, s.ID); err != nil {
		log.Printf("[SHARE] mDNS advertisement failed: %v", err)
	}
	return nil
}

func (s *Server) Close() error {
	if s.mdnsSrv != nil {
		if err := s.mdnsSrv.Shutdown(); err != nil {
			log.Printf("[SHARE] mDNS shutdown: %v", err)
		}
	}

	s.mu.Lock()
	for id, v := range s.viewers {
		close(v.send)
		delete(s.viewers, id)
	}
	s.mu.Unlock()

	if s.httpSrv != nil {
		return s.httpSrv.Close()
	}
	return nil
}

// Viewers is the number of connected websocket viewers.
func (s *Server) Viewers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewers)
}

// Publish encodes img as the current frame and sends it to every viewer.
// A viewer that is still behind on earlier frames skips this one.
func (s *Server) Publish(img image.Image) error {
	var frame bytes.Buffer
	if err := export.WritePNG(&frame, img); err != nil {
		return err
	}
	var thumb bytes.Buffer
	if err := export.WritePNG(&thumb, s.thumbnail(img)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame.Bytes()
	s.thumb = thumb.Bytes()
	for _, v := range s.viewers {
		select {
		case v.send <- s.frame:
		default:
			log.Printf("[SHARE] Viewer %s is behind, dropping frame", v.id)
		}
	}
	return nil
}

func (s *Server) thumbnail(img image.Image) image.Image {
	if s.thumbWidth == 0 || img.Bounds().Dx() <= int(s.thumbWidth) {
		return img
	}
	return resize.Resize(s.thumbWidth, 0, img, resize.Bilinear)
}

func (s *Server) servePNG(w http.ResponseWriter, get func() []byte) {
	s.mu.RLock()
	data := get()
	s.mu.RUnlock()
	if data == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		log.Printf("[SHARE] Error writing frame: %v", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed: %v", err)
		return
	}
	v := &viewer{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}

	s.mu.Lock()
	s.viewers[v.id] = v
	if s.frame != nil {
		v.send <- s.frame
	}
	s.mu.Unlock()
	log.Printf("[SHARE] Viewer %s connected from %s", v.id, conn.RemoteAddr())

	go s.writeLoop(v)
	s.readLoop(v)
}

func (s *Server) writeLoop(v *viewer) {
	defer v.conn.Close()
	for frame := range v.send {
		if err := v.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", v.id, err)
			return
		}
	}
}

// readLoop discards incoming messages; it returns once the viewer goes away.
func (s *Server) readLoop(v *viewer) {
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			break
		}
	}
	s.mu.Lock()
	if _, ok := s.viewers[v.id]; ok {
		delete(s.viewers, v.id)
		close(v.send)
	}
	s.mu.Unlock()
	log.Printf("[SHARE] Viewer %s disconnected", v.id)
}
