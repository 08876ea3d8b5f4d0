package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/engine"
)

type wsMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type currMovePayload struct {
	Move   string `json:"move"`
	Number int    `json:"number"`
}

type infoPayload struct {
	Depth  int      `json:"depth"`
	Score  int      `json:"score"`
	Mate   int      `json:"mate,omitempty"`
	Nodes  int64    `json:"nodes"`
	PV     []string `json:"pv"`
	TimeMs int64    `json:"time_ms"`
}

// wsReporter streams root events to one client. Search runs on the
// connection goroutine, so writes are not concurrent.
type wsReporter struct {
	conn *websocket.Conn
	err  error
}

func (r *wsReporter) send(msg wsMessage) {
	if r.err != nil {
		return
	}
	r.err = r.conn.WriteJSON(msg)
}

func (r *wsReporter) CurrentMove(index int, move common.Move) {
	r.send(wsMessage{Type: "currmove", Payload: currMovePayload{Move: move.String(), Number: index + 1}})
}

func (r *wsReporter) BestLine(si common.SearchInfo) {
	var pv = make([]string, 0, len(si.MainLine))
	for _, m := range si.MainLine {
		pv = append(pv, m.String())
	}
	r.send(wsMessage{Type: "info", Payload: infoPayload{
		Depth:  si.Depth,
		Score:  si.Score.Centipawns,
		Mate:   si.Score.Mate,
		Nodes:  si.Nodes,
		PV:     pv,
		TimeMs: si.Time.Milliseconds(),
	}})
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	for {
		var req analyzeRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Msg("websocket read")
			}
			return
		}
		var reporter = &wsReporter{conn: conn}
		var p, err = parseFEN(req.FEN)
		if err != nil {
			reporter.send(wsMessage{Type: "error", Payload: err.Error()})
		} else {
			var depth = clampDepth(req.Depth, s.engine.Options.Depth)
			var si = s.engine.Search(common.SearchParams{
				Position: p,
				Depth:    depth,
				Reporter: engine.MultiReporter{reporter, engine.LogReporter{Logger: s.logger}},
			})
			reporter.send(wsMessage{Type: "result", Payload: newAnalyzeResponse(req.FEN, depth, si)})
		}
		if reporter.err != nil {
			s.logger.Debug().Err(reporter.err).Msg("websocket write")
			return
		}
	}
}
