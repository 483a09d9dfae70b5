package http

import (
	"log"
	"net/http"

	"art-quiz-service/internal/app"
	"art-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler streams newly stored submissions to teacher dashboards so the
// results table refreshes without polling.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the request and feeds the dashboard: first a snapshot of
// the current store, then one message per new submission. The passphrase
// travels as a query parameter because browsers cannot set headers on
// websocket dials.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Authenticate(r.URL.Query().Get("key")); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.service.Subscribe(r.Context())
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case sub, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "submission", Payload: sub}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	all := h.service.Submissions(r.Context(), domain.Filter{School: domain.FilterAll, ClassName: domain.FilterAll})
	send <- outboundMessage[any]{Type: "snapshot", Payload: all}

	// Block until the client goes away; inbound frames carry no commands.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
