// Package webview serves the launch dashboard as server-rendered HTML. Each
// request derives its own view state from the shared loaded snapshot, so the
// query string is the whole selection.
package webview

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/logging"
	"github.com/tinytelemetry/launchboard/internal/model"
)

// DefaultAddr is used when Options.Addr is empty.
const DefaultAddr = "127.0.0.1:8080"

// Options configures a Server.
type Options struct {
	Addr       string
	Source     model.LaunchSource
	FetchLimit int
	PageSize   int // default rows per page when the query has no size
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
}

// Server renders the dashboard over HTTP.
type Server struct {
	addr       string
	source     model.LaunchSource
	fetchLimit int
	pageSize   int
	gatherer   prometheus.Gatherer
	log        *zap.Logger

	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time

	// snapshot is the state of the latest finished load; nil until one finishes.
	snapshot atomic.Pointer[board.State]
	gen      atomic.Uint64
	// publishMu makes the staleness check and the snapshot store one step.
	publishMu sync.Mutex
}

// NewServer creates a new dashboard server. Nothing is fetched until Start
// or Refresh is called.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if !model.ValidPageSize(opts.PageSize) {
		opts.PageSize = model.DefaultPageSize
	}
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = model.DefaultLaunchLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:       opts.Addr,
		source:     opts.Source,
		fetchLimit: opts.FetchLimit,
		pageSize:   opts.PageSize,
		gatherer:   opts.Gatherer,
		log:        logging.Component(opts.Logger, "webview"),
		ctx:        ctx,
		cancel:     cancel,
		startTime:  time.Now(),
	}
}

// Handler builds the gin engine serving the dashboard routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.handleDashboard)
	r.POST("/reload", s.handleReload)
	r.GET("/healthz", s.handleHealth)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	return r
}

// Start begins serving HTTP requests and kicks off the first load.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server stopped", zap.Error(err))
		}
	}()
	go func() {
		if err := s.Refresh(s.ctx); err != nil {
			s.log.Warn("initial load failed", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the listen address; after Start it is the bound address.
func (s *Server) Addr() string { return s.addr }

// Stop gracefully shuts down the HTTP server and abandons in-flight loads.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Refresh runs one load session and publishes its result. A session that
// finishes after a newer one started, or whose ctx was cancelled, is
// discarded. The returned error is the load failure, which is also published
// as the Error state.
func (s *Server) Refresh(ctx context.Context) error {
	gen := s.gen.Add(1)
	started := time.Now()

	st := board.NewState(gen, s.pageSize)
	ev := board.Load(ctx, s.source, s.fetchLimit, gen)
	st = board.Reduce(st, ev)

	if err := ctx.Err(); err != nil {
		s.log.Debug("dropped cancelled load", zap.Uint64("generation", gen), zap.Error(err))
		return err
	}

	s.publishMu.Lock()
	if s.gen.Load() != gen {
		s.publishMu.Unlock()
		s.log.Debug("dropped stale load result", zap.Uint64("generation", gen))
		return nil
	}
	s.snapshot.Store(&st)
	s.publishMu.Unlock()

	if failed, ok := ev.(board.LoadFailed); ok {
		s.log.Error("loading launches failed", zap.Error(failed.Err), zap.Duration("elapsed", time.Since(started)))
		return failed.Err
	}
	s.log.Info("launches loaded",
		zap.Int("launches", len(st.Launches)),
		zap.Int("total", st.Stats.Total),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// Snapshot returns the latest published state, or false before the first
// load finishes.
func (s *Server) Snapshot() (board.State, bool) {
	st := s.snapshot.Load()
	if st == nil {
		return board.State{}, false
	}
	return *st, true
}

func (s *Server) handleDashboard(c *gin.Context) {
	st, ok := s.Snapshot()
	if !ok {
		c.HTML(http.StatusOK, "dashboard", pageData{Phase: board.PhaseLoading.String()})
		return
	}

	switch st.Phase {
	case board.PhaseError:
		c.HTML(http.StatusServiceUnavailable, "dashboard", pageData{
			Phase: st.Phase.String(),
			Error: st.Err,
		})
		return
	case board.PhaseLoading:
		c.HTML(http.StatusOK, "dashboard", pageData{Phase: st.Phase.String()})
		return
	}

	st = applyQuery(st, c)
	c.HTML(http.StatusOK, "dashboard", newPageData(st))
}

// applyQuery replays the query string as selection events. Filter, search
// and size come first since each of them resets the page.
func applyQuery(st board.State, c *gin.Context) board.State {
	if raw, ok := c.GetQuery("status"); ok {
		if status, valid := board.ParseStatusFilter(raw); valid {
			st = board.Reduce(st, board.StatusFilterChanged{Status: status})
		}
	}
	if q := c.Query("q"); q != "" {
		st = board.Reduce(st, board.SearchChanged{Search: q})
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil {
		st = board.Reduce(st, board.PageSizeChanged{Size: size})
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		st = board.Reduce(st, board.PageRequested{Page: page})
	}
	if id := c.Query("launch"); id != "" {
		st = board.Reduce(st, board.DetailSelected{ID: id})
	}
	return st
}

// handleReload runs under the server context so a client that disconnects
// mid-load cannot publish its cancellation as a load failure.
func (s *Server) handleReload(c *gin.Context) {
	if err := s.Refresh(s.ctx); err != nil {
		s.log.Warn("reload failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleHealth(c *gin.Context) {
	st, ok := s.Snapshot()
	phase := board.PhaseLoading
	if ok {
		phase = st.Phase
	}

	status := http.StatusOK
	if phase == board.PhaseError {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":   phase.String(),
		"uptime":   time.Since(s.startTime).String(),
		"launches": len(st.Launches),
	})
}

// requestLogger logs one line per request at debug level.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(started)))
	}
}
