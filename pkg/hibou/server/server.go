// Package server adapts the teacher's pkg/server HTTP surface onto the
// pkg/hibou facade: instead of wrapping a Prolog interpreter it wraps
// Analyze/Explore, replacing handleQuery/handleCheck/handleVisualize with
// /api/analyze, /api/explore, /api/metrics, /api/reset.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
	"github.com/rfielding/hibou/internal/process/ana"
	"github.com/rfielding/hibou/internal/process/explore"
	"github.com/rfielding/hibou/pkg/hibou"
)

// Server is the HTTP server wrapping the analysis facade.
type Server struct {
	log *logrus.Logger
	mux *http.ServeMux

	mu         sync.RWMutex
	counters   map[string]int64
	timeSeries []TimePoint

	lastVerdict string
}

// TimePoint is one sample of a named counter, structurally identical to
// the teacher's TimePoint.
type TimePoint struct {
	Time    time.Time `json:"time"`
	Counter string    `json:"counter"`
	Value   int64     `json:"value"`
}

// New builds a Server with a fresh request multiplexer.
func New(log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	s := &Server{
		log:      log,
		mux:      http.NewServeMux(),
		counters: make(map[string]int64),
	}
	s.mux.HandleFunc("/api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/api/explore", s.handleExplore)
	s.mux.HandleFunc("/api/metrics", s.handleMetrics)
	s.mux.HandleFunc("/api/reset", s.handleReset)
	return s
}

// Handler returns the server's request multiplexer.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("server starting")
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) incCounter(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	s.timeSeries = append(s.timeSeries, TimePoint{Time: time.Now(), Counter: name, Value: s.counters[name]})
	if len(s.timeSeries) > 1000 {
		s.timeSeries = s.timeSeries[len(s.timeSeries)-1000:]
	}
}

func (s *Server) getCounters() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

func (s *Server) getTimeSeries() []TimePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TimePoint, len(s.timeSeries))
	copy(out, s.timeSeries)
	return out
}

type contextDTO struct {
	Lifelines []string `json:"lifelines"`
	Messages  []string `json:"messages"`
	Gates     []string `json:"gates"`
}

func (c contextDTO) build() (*context.Context, error) {
	ctx := context.New()
	for _, lf := range c.Lifelines {
		ctx.AddLifeline(lf)
	}
	for _, ms := range c.Messages {
		ctx.AddMessage(ms)
	}
	for _, gt := range c.Gates {
		ctx.AddGate(gt)
	}
	return ctx, nil
}

type analyzeRequest struct {
	Context         contextDTO        `json:"context"`
	Colocalizations [][]uint32        `json:"colocalizations"`
	Interaction     *wireInteraction  `json:"interaction"`
	MultiTrace      wireMultiTrace    `json:"multiTrace"`
	Strategy        string            `json:"strategy"`
	Goal            string            `json:"goal"`
	Simulate        bool              `json:"simulate"`
}

type analyzeResponse struct {
	NodeCount uint32 `json:"nodeCount"`
	Verdict   string `json:"verdict"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}

	ctx, err := req.Context.build()
	if err != nil {
		writeError(w, err)
		return
	}
	colocs := make(context.CoLocalizations, len(req.Colocalizations))
	for i, lfs := range req.Colocalizations {
		colocs[i] = toLfSet(lfs)
	}
	interaction, err := req.Interaction.toInteraction()
	if err != nil {
		writeError(w, err)
		return
	}
	mtrace, err := req.MultiTrace.toAnalysable(colocs)
	if err != nil {
		writeError(w, err)
		return
	}

	kind := ana.KindPrefix
	if req.Simulate {
		kind = ana.KindSimulate
	}
	opts := ana.Options{
		Strategy:         parseStrategy(req.Strategy),
		Kind:             kind,
		SimBefore:        req.Simulate,
		UseLocalAnalysis: true,
	}
	if req.Goal != "" {
		g := parseGoal(req.Goal)
		opts.Goal = &g
	}

	res, err := hibou.Analyze(ctx, colocs, interaction, mtrace, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.lastVerdict = res.Verdict.String()
	s.mu.Unlock()
	s.incCounter("analyses_total")
	s.incCounter(verdictCounterName(res.Verdict.Kind))

	json.NewEncoder(w).Encode(analyzeResponse{NodeCount: res.NodeCount, Verdict: res.Verdict.String()})
}

type exploreRequest struct {
	Context     contextDTO       `json:"context"`
	Interaction *wireInteraction `json:"interaction"`
	Strategy    string           `json:"strategy"`
}

type exploreResponse struct {
	NodeCount       uint32 `json:"nodeCount"`
	ReachableStates uint32 `json:"reachableStates"`
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	var req exploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	ctx, err := req.Context.build()
	if err != nil {
		writeError(w, err)
		return
	}
	interaction, err := req.Interaction.toInteraction()
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := hibou.Explore(ctx, interaction, explore.Options{Strategy: parseStrategy(req.Strategy)})
	if err != nil {
		writeError(w, err)
		return
	}

	s.incCounter("explorations_total")
	json.NewEncoder(w).Encode(exploreResponse{NodeCount: res.NodeCount, ReachableStates: res.ReachableStates})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"counters":    s.getCounters(),
		"timeSeries":  s.getTimeSeries(),
		"lastVerdict": s.lastVerdict,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	s.mu.Lock()
	s.counters = make(map[string]int64)
	s.timeSeries = nil
	s.lastVerdict = ""
	s.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
}

func verdictCounterName(k verdict.GlobalKind) string {
	return "verdict_" + k.String() + "_total"
}

func parseStrategy(s string) abstract.Strategy {
	switch s {
	case "bfs":
		return abstract.BFS
	case "hcs":
		return abstract.HCS
	default:
		return abstract.DFS
	}
}

func parseGoal(s string) verdict.Global {
	switch s {
	case "pass":
		return verdict.Global{Kind: verdict.Pass}
	case "weakpass":
		return verdict.Global{Kind: verdict.WeakPass}
	case "inconc":
		return verdict.Global{Kind: verdict.InconcKind}
	case "weakfail":
		return verdict.Global{Kind: verdict.WeakFail}
	default:
		return verdict.Global{Kind: verdict.Fail}
	}
}
