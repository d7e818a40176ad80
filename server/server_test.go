package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"dpp/calculator"
	"dpp/config"
	"dpp/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T) *websocket.Conn {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Count = 5
	field, err := calculator.NewCalculator(cfg.Grid, cfg.Surface).Calculate()
	require.NoError(t, err)

	s := NewServer(cfg, field, websocket.Upgrader{})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg model.Msg) model.Msg {
	t.Helper()
	require.NoError(t, conn.WriteJSON(&msg))
	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestServerEnv(t *testing.T) {
	conn := newTestConn(t)
	reply := roundTrip(t, conn, model.Msg{Type: "env"})
	require.Equal(t, "envSet", reply.Type)

	var env model.Env
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &env))
	assert.Equal(t, 5, env.Count)
	assert.Equal(t, 0.5, env.C)
	assert.Equal(t, "rainbow", env.Colormap)
}

func TestServerField(t *testing.T) {
	conn := newTestConn(t)
	reply := roundTrip(t, conn, model.Msg{Type: "field"})
	require.Equal(t, "field", reply.Type)

	var data model.FieldData
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &data))
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, data.A)
	require.Len(t, data.Z, 5)
	assert.InDelta(t, 0.75, data.Z[2][2], 1e-12)
	assert.InDelta(t, -0.25, data.Z[4][4], 1e-12)
	assert.InDelta(t, -2.25, data.ZMin, 1e-12)
}

func TestServerSweep(t *testing.T) {
	conn := newTestConn(t)
	reply := roundTrip(t, conn, model.Msg{Type: "sweep", Content: `{"start":-1,"end":1,"count":3}`})
	require.Equal(t, "swept", reply.Type)

	var data []model.FieldData
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &data))
	require.Len(t, data, 3)
	for k, c := range []float64{-1, 0, 1} {
		assert.Equal(t, c, data[k].C)
		assert.InDelta(t, 1-c*c, data[k].Z[2][2], 1e-12)
	}
}

func TestServerErrors(t *testing.T) {
	conn := newTestConn(t)

	reply := roundTrip(t, conn, model.Msg{Type: "sweep", Content: `{"start":1,"end":-1,"count":3}`})
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Content, "invalid domain")

	reply = roundTrip(t, conn, model.Msg{Type: "sweep", Content: `{"start":0,"end":1,"count":1000}`})
	assert.Equal(t, "error", reply.Type)

	reply = roundTrip(t, conn, model.Msg{Type: "sweep", Content: `not json`})
	assert.Equal(t, "error", reply.Type)

	reply = roundTrip(t, conn, model.Msg{Type: "start"})
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Content, "start")

	// 出错后连接仍可用
	reply = roundTrip(t, conn, model.Msg{Type: "env"})
	assert.Equal(t, "envSet", reply.Type)
}
