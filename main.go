package main

import (
	"net/http"
	"os"

	"dpp/calculator"
	"dpp/config"
	"dpp/render/window"
	"dpp/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	cfg := config.Load(config.Path)
	log.SetLevel(cfg.Log.Level)

	field, err := calculator.NewCalculator(cfg.Grid, cfg.Surface).Calculate()
	if err != nil {
		log.WithField("err", err).Error("高度场计算失败")
		os.Exit(1)
	}

	if cfg.Server.Enabled {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(cfg, field, upgrader)
		go func() {
			if err := s.Serve(); err != nil {
				log.WithField("err", err).Error("websocket server stopped")
			}
		}()
	}

	if err := window.Show(field, cfg.Render); err != nil {
		log.WithField("err", err).Error("窗口异常退出")
		os.Exit(1)
	}
}
