package webview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/launchapi"
	"github.com/tinytelemetry/launchboard/internal/metrics"
	"github.com/tinytelemetry/launchboard/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSource struct {
	mu       sync.Mutex
	launches []model.Launch
	stats    model.Stats
	err      error
	calls    int
	// block, when set, holds the first FetchLaunches call until closed.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeSource) FetchLaunches(ctx context.Context, _ int) ([]model.Launch, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	launches, err := f.launches, f.err
	f.mu.Unlock()

	if first && f.block != nil {
		close(f.entered)
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return launches[:1], nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return launches, err
}

func (f *fakeSource) FetchLaunch(_ context.Context, id string) (model.Launch, error) {
	for _, l := range f.launches {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Launch{}, errors.New("not found")
}

func (f *fakeSource) FetchStats(_ context.Context) (model.Stats, error) {
	return f.stats, nil
}

func testLaunches(n int) []model.Launch {
	statuses := []model.Status{model.StatusSuccess, model.StatusFailed, model.StatusUpcoming}
	out := make([]model.Launch, n)
	for i := range out {
		out[i] = model.Launch{
			ID:            fmt.Sprintf("id-%02d", i),
			MissionName:   fmt.Sprintf("Mission %02d", i),
			RocketID:      "falcon9",
			LaunchDateUTC: "2020-05-30T19:22:00Z",
			Status:        statuses[i%3],
		}
	}
	if n > 4 {
		out[4].MissionName = "Falcon Heavy Demo"
	}
	return out
}

func TestTestLaunches_AnyCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		if got := len(testLaunches(n)); got != n {
			t.Fatalf("testLaunches(%d) returned %d launches", n, got)
		}
	}
}

func newTestServer(t *testing.T, src *fakeSource) (*Server, http.Handler) {
	t.Helper()
	srv := NewServer(Options{Source: src, PageSize: 10})
	t.Cleanup(func() { srv.Stop() })
	return srv, srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestDashboard_BeforeFirstLoad(t *testing.T) {
	_, h := newTestServer(t, &fakeSource{})

	w := get(t, h, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Loading...") {
		t.Errorf("body missing loading text")
	}
}

func TestDashboard_Ready(t *testing.T) {
	src := &fakeSource{
		launches: testLaunches(25),
		stats:    model.Stats{Total: 25, ByStatus: map[string]int{"success": 9}, ByYear: map[string]int{"2020": 25}},
	}
	srv, h := newTestServer(t, src)
	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	body := get(t, h, "/").Body.String()
	for _, want := range []string{"Page 1 of 3", "Mission 00", "Mission 09", "25 launches", "Launches by Year", "Total Launches"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "Mission 10") {
		t.Errorf("first page shows more than 10 rows")
	}
}

func TestDashboard_QuerySelection(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(25)})
	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	tests := []struct {
		name   string
		target string
		want   []string
		reject []string
	}{
		{"second page", "/?page=2", []string{"Page 2 of 3", "Mission 10"}, []string{"Mission 09"}},
		{"page out of range ignored", "/?page=9", []string{"Page 1 of 3"}, nil},
		{"page size", "/?size=20", []string{"Page 1 of 2", "Mission 19"}, nil},
		{"invalid size ignored", "/?size=15", []string{"Page 1 of 3"}, nil},
		{"status filter", "/?status=failed", []string{"Page 1 of 1", "8 launches", "Mission 01"}, []string{"Mission 00"}},
		{"unknown status ignored", "/?status=exploded", []string{"Page 1 of 3"}, nil},
		{"search ignores case", "/?q=FALCON", []string{"Falcon Heavy Demo", "1 launches"}, []string{"Mission 00"}},
		{"no match", "/?q=zzz", []string{"No launches found"}, []string{"Page 1 of"}},
		{"filter resets page", "/?status=success&page=1", []string{"Page 1 of 1"}, nil},
		{"detail", "/?launch=id-01", []string{"Launch Date", "ID id-01"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, h, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := w.Body.String()
			for _, s := range tt.want {
				if !strings.Contains(body, s) {
					t.Errorf("body missing %q", s)
				}
			}
			for _, s := range tt.reject {
				if strings.Contains(body, s) {
					t.Errorf("body should not contain %q", s)
				}
			}
		})
	}
}

func TestDashboard_QueryDoesNotLeakBetweenRequests(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(25)})
	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	get(t, h, "/?status=failed&page=1&size=20")
	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, "Page 1 of 3") {
		t.Errorf("selection from an earlier request leaked into the snapshot")
	}
}

func TestDashboard_LoadError(t *testing.T) {
	src := &fakeSource{err: &launchapi.FetchError{Op: launchapi.OpLaunches, Message: "Failed to fetch launches", StatusCode: 500}}
	srv, h := newTestServer(t, src)

	if err := srv.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh should report the load failure")
	}

	w := get(t, h, "/?page=2")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Error loading data") || !strings.Contains(body, "Failed to fetch launches") {
		t.Errorf("error page incomplete")
	}
	if strings.Contains(body, "Page 1 of") {
		t.Errorf("error page shows partial data")
	}
}

func TestRefresh_DropsStaleSession(t *testing.T) {
	src := &fakeSource{
		launches: testLaunches(5),
		block:    make(chan struct{}),
		entered:  make(chan struct{}),
	}
	srv, _ := newTestServer(t, src)

	done := make(chan error, 1)
	go func() { done <- srv.Refresh(context.Background()) }()
	<-src.entered

	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("first Refresh: %v", err)
	}

	st, ok := srv.Snapshot()
	if !ok {
		t.Fatal("no snapshot published")
	}
	if len(st.Launches) != 5 {
		t.Errorf("snapshot has %d launches, want 5 from the newer session", len(st.Launches))
	}
}

func TestRefresh_CancelledContextKeepsSnapshot(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(3)})
	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Refresh(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Refresh with cancelled ctx = %v, want context.Canceled", err)
	}

	st, ok := srv.Snapshot()
	if !ok || st.Phase != board.PhaseReady {
		t.Fatalf("snapshot replaced by cancelled load: ok=%v phase=%v", ok, st.Phase)
	}
	if w := get(t, h, "/"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRefresh_ConcurrentKeepsNewestGeneration(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{launches: testLaunches(5)})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			srv.Refresh(context.Background())
		}()
	}
	wg.Wait()

	st, ok := srv.Snapshot()
	if !ok {
		t.Fatal("no snapshot published")
	}
	if want := srv.gen.Load(); st.Generation != want {
		t.Errorf("snapshot generation = %d, want newest %d", st.Generation, want)
	}
	if st.Phase != board.PhaseReady {
		t.Errorf("phase = %v, want ready", st.Phase)
	}
}

func TestReload(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(3)})

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if _, ok := srv.Snapshot(); !ok {
		t.Errorf("reload did not publish a snapshot")
	}
}

func TestReload_DisconnectedClientKeepsSnapshot(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(3)})
	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/reload", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	st, ok := srv.Snapshot()
	if !ok || st.Phase != board.PhaseReady {
		t.Fatalf("reload from a disconnected client published phase %v", st.Phase)
	}
	if w := get(t, h, "/"); w.Code != http.StatusOK {
		t.Errorf("dashboard status = %d, want 200", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, h := newTestServer(t, &fakeSource{launches: testLaunches(3)})

	var body map[string]interface{}
	w := get(t, h, "/healthz")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "loading" {
		t.Errorf("status = %v, want loading", body["status"])
	}

	if err := srv.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	w = get(t, h, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ready" || body["launches"] != float64(3) {
		t.Errorf("health = %v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("launchboard", reg)
	m.ObserveFetch(launchapi.OpLaunches, time.Now(), nil)

	srv := NewServer(Options{Source: &fakeSource{}, Gatherer: reg})
	t.Cleanup(func() { srv.Stop() })

	w := get(t, srv.Handler(), "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `launchboard_fetch_requests_total{op="launches",outcome="ok"} 1`) {
		t.Errorf("metrics body missing fetch counter:\n%s", w.Body.String())
	}
}

func TestMetricsEndpoint_DisabledWithoutGatherer(t *testing.T) {
	_, h := newTestServer(t, &fakeSource{})
	if w := get(t, h, "/metrics"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestStartStop(t *testing.T) {
	srv := NewServer(Options{Addr: "127.0.0.1:0", Source: &fakeSource{launches: testLaunches(2)}})
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := srv.Snapshot(); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial load never finished")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("GET healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz = %d", resp.StatusCode)
	}

	if err := srv.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
