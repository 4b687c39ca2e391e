package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"leagueofmolts.ai/internal/persistence/eventlog"
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
	"leagueofmolts.ai/internal/sim/match"
	"leagueofmolts.ai/internal/sim/tuning"
	"leagueofmolts.ai/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		configDir  = flag.String("configs", "./configs", "config directory")
		schemaDir  = flag.String("schemas", "./schemas", "json schema directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		rosterPath = flag.String("roster", "", "path to roster.yaml; when set the match starts immediately")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("tuning not found (%s); using defaults", tp)
			tune = tuning.Defaults()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	m := match.New(tune, cats)
	logger.Printf("match %s created (items=%s champions=%s)", m.ID(), cats.Items.Digest[:12], cats.Champions.Digest[:12])

	evLog, err := eventlog.NewWriter(filepath.Join(*dataDir, "events"), m.ID())
	if err != nil {
		logger.Fatalf("open event log: %v", err)
	}
	defer evLog.Close()
	m.SetEventSink(func(e protocol.Event) {
		if err := evLog.WriteEvent(e); err != nil {
			logger.Printf("event log write: %v", err)
		}
	})

	ctx, cancel := signalContext()
	defer cancel()

	go func() {
		if err := m.Run(ctx); err != nil && err != context.Canceled {
			logger.Printf("match stopped: %v", err)
		}
	}()

	if strings.TrimSpace(*rosterPath) != "" {
		roster, err := loadRoster(*rosterPath)
		if err != nil {
			logger.Fatalf("load roster: %v", err)
		}
		if err := control(m, match.ControlRequest{Kind: match.ControlStart, Roster: roster}); err != nil {
			logger.Fatalf("start match: %v", err)
		}
		logger.Printf("match started with %d seats from %s", len(roster), *rosterPath)
	}

	wsSrv, err := ws.NewServer(m, logger, *schemaDir)
	if err != nil {
		logger.Fatalf("ws server: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ws", wsSrv.Handler())

	// Local-only match control endpoints for the orchestrator.
	mux.HandleFunc("/control/start", controlHandler(m, logger, match.ControlStart))
	mux.HandleFunc("/control/pause", controlHandler(m, logger, match.ControlPause))
	mux.HandleFunc("/control/resume", controlHandler(m, logger, match.ControlResume))
	mux.HandleFunc("/control/end", controlHandler(m, logger, match.ControlEnd))
	mux.HandleFunc("/snapshot", func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		respCh := make(chan match.ControlResponse, 1)
		m.Control() <- match.ControlRequest{Kind: match.ControlSnapshot, Resp: respCh}
		resp := <-respCh
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(resp.Snapshot)
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = srv.Shutdown(ctx2)
	}()

	logger.Printf("listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

func controlHandler(m *match.Match, logger *log.Logger, kind match.ControlKind) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		req := match.ControlRequest{Kind: kind}
		if kind == match.ControlStart {
			var body struct {
				Roster []match.RosterSeat `json:"roster"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(rw, "bad roster body", http.StatusBadRequest)
				return
			}
			req.Roster = body.Roster
		}
		err := control(m, req)
		rw.Header().Set("Content-Type", "application/json")
		if err != nil {
			rw.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(rw).Encode(map[string]any{"ok": false, "error": err.Error()})
			return
		}
		logger.Printf("control %s ok", kind)
		_ = json.NewEncoder(rw).Encode(map[string]any{"ok": true})
	}
}

func control(m *match.Match, req match.ControlRequest) error {
	respCh := make(chan match.ControlResponse, 1)
	req.Resp = respCh
	m.Control() <- req
	return (<-respCh).Err
}

func loadRoster(path string) ([]match.RosterSeat, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f struct {
		Roster []match.RosterSeat `yaml:"roster"`
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Roster, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
