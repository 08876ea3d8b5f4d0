package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/walrusbot/walrus/pkg/board"
	"github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/engine"
	"github.com/walrusbot/walrus/pkg/eval/pesto"
)

const MaxDepth = 8

var errEmptyFEN = errors.New("fen is empty")

type Server struct {
	engine *engine.Engine
	logger zerolog.Logger
}

func New(eng *engine.Engine, logger zerolog.Logger) *Server {
	return &Server{engine: eng, logger: logger}
}

type analyzeRequest struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
}

type analyzeResponse struct {
	FEN      string   `json:"fen"`
	Depth    int      `json:"depth"`
	BestMove string   `json:"bestmove,omitempty"`
	Score    int      `json:"score"`
	Mate     int      `json:"mate,omitempty"`
	Nodes    int64    `json:"nodes"`
	PV       []string `json:"pv"`
	TimeMs   int64    `json:"time_ms"`
}

type evalResponse struct {
	FEN     string `json:"fen"`
	Score   int    `json:"score"`
	Middle  int    `json:"mg"`
	End     int    `json:"eg"`
	MgPhase int    `json:"mg_phase"`
	EgPhase int    `json:"eg_phase"`
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/eval", s.handleEval)
	r.Get("/api/ws", s.serveWS)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		var start = time.Now()
		defer func() {
			s.logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	var p, err = parseFEN(req.FEN)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	var depth = clampDepth(req.Depth, s.engine.Options.Depth)
	var si = s.engine.Search(common.SearchParams{
		Position: p,
		Depth:    depth,
		Reporter: engine.LogReporter{Logger: s.logger},
	})
	writeJSON(w, http.StatusOK, newAnalyzeResponse(req.FEN, depth, si))
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	var p, err = parseFEN(req.FEN)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	var b = pesto.Trace(p)
	writeJSON(w, http.StatusOK, evalResponse{
		FEN:     req.FEN,
		Score:   b.Score,
		Middle:  b.Middle,
		End:     b.End,
		MgPhase: b.MgPhase,
		EgPhase: b.EgPhase,
	})
}

func newAnalyzeResponse(fen string, depth int, si common.SearchInfo) analyzeResponse {
	var res = analyzeResponse{
		FEN:    fen,
		Depth:  depth,
		Score:  si.Score.Centipawns,
		Mate:   si.Score.Mate,
		Nodes:  si.Nodes,
		PV:     make([]string, 0, len(si.MainLine)),
		TimeMs: si.Time.Milliseconds(),
	}
	for _, m := range si.MainLine {
		res.PV = append(res.PV, m.String())
	}
	if len(res.PV) > 0 {
		res.BestMove = res.PV[0]
	}
	return res
}

func parseFEN(fen string) (*board.Position, error) {
	if fen == "" {
		return nil, errEmptyFEN
	}
	var p, err = board.NewPositionFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("bad fen: %w", err)
	}
	return p, nil
}

// clampDepth keeps requested depths in [1, MaxDepth]; zero selects def.
func clampDepth(depth, def int) int {
	if depth <= 0 {
		depth = def
	}
	return max(1, min(depth, MaxDepth))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
