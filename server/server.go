package server

import (
	"net/http"

	"dpp/calculator"
	"dpp/config"
	"dpp/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	calc     *calculator.Calculator
	field    *calculator.HeightField
	env      model.Env
}

// NewServer field 为已经计算好的高度场，每个连接共享
func NewServer(cfg config.Config, field *calculator.HeightField, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     cfg.Server.Addr,
		upgrader: upgrader,
		calc:     calculator.NewCalculator(cfg.Grid, cfg.Surface),
		field:    field,
		env:      cfg.Env(),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s, conn)
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.close()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("err", err).Warn("read message failed")
			}
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Serve 阻塞直到监听失败
func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("websocket server listening")
	return http.ListenAndServe(s.addr, s.Handler())
}
