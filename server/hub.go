package server

import (
	"encoding/json"
	"fmt"

	"dpp/calculator"
	"dpp/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const maxSweep = 64

// Hub 每个连接一个，请求与响应分别由两个 goroutine 处理
type Hub struct {
	s    *Server
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(s *Server, conn *websocket.Conn) *Hub {
	return &Hub{
		s:     s,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) close() {
	close(h.done)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithFields(log.Fields{
					"type": reply.Type,
					"err":  err,
				}).Warn("write reply failed")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.handle(msg):
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case "env":
		return h.encode("envSet", h.s.env)
	case "field":
		return h.encode("field", h.s.field.Data())
	case "sweep":
		var req model.SweepReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg(fmt.Errorf("bad sweep request: %w", err))
		}
		if req.Count > maxSweep {
			return errorMsg(fmt.Errorf("sweep count %d exceeds %d", req.Count, maxSweep))
		}
		cs, err := calculator.Linspace(req.Start, req.End, req.Count)
		if err != nil {
			return errorMsg(err)
		}
		fields, err := h.s.calc.Sweep(cs)
		if err != nil {
			return errorMsg(err)
		}
		data := make([]model.FieldData, 0, len(fields))
		for _, f := range fields {
			data = append(data, f.Data())
		}
		return h.encode("swept", data)
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type: %q", msg.Type))
	}
}

func (h *Hub) encode(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{
		Type:    typ,
		Content: string(data),
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{
		Type:    "error",
		Content: err.Error(),
	}
}
