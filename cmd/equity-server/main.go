// equity-server exposes the exact equity solver over a single
// WebSocket endpoint: a client sends one Table request, the server
// streams progress frames while it solves, then sends a final
// solution or error frame and closes the connection (spec.md §5).
package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/api"
	"github.com/lox/holdem-equity/internal/cancel"
	"github.com/lox/holdem-equity/internal/engine"
	"github.com/lox/holdem-equity/internal/hostconfig"
	"github.com/lox/holdem-equity/internal/preflop"
)

type CLI struct {
	Config string `short:"c" help:"Path to an HCL configuration file"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("equity-server"),
		kong.Description("WebSocket host for the exact two-player equity solver"),
		kong.UsageOnError(),
	)

	cfg, err := hostconfig.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	level := log.InfoLevel
	if cfg.Server.LogLevel == "debug" {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	pfSource := preflop.NewFileSource(cfg.Server.PreflopTable, logger)

	srv := newServer(logger, pfSource)

	listener, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		logger.Fatal("listen failed", "addr", cfg.ListenAddr(), "error", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		os.Exit(0)
	}()

	logger.Info("equity-server starting", "addr", cfg.ListenAddr())
	if err := srv.Serve(listener); err != nil {
		logger.Fatal("serve failed", "error", err)
	}
}

// frame is the envelope every server-to-client message is wrapped in.
type frame struct {
	Type      string        `json:"type"`
	Evaluated uint64        `json:"evaluated,omitempty"`
	Total     uint64        `json:"total,omitempty"`
	Solution  *api.Solution `json:"solution,omitempty"`
	Message   string        `json:"message,omitempty"`
}

type equityServer struct {
	logger   *log.Logger
	upgrader websocket.Upgrader
	pf       preflop.Source
	mux      *http.ServeMux
}

func newServer(logger *log.Logger, pf preflop.Source) *equityServer {
	s := &equityServer{
		logger: logger,
		pf:     pf,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

func (s *equityServer) Serve(listener net.Listener) error {
	httpServer := &http.Server{Handler: s.mux}
	return httpServer.Serve(listener)
}

func (s *equityServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *equityServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	logger := s.logger.WithPrefix("conn")

	var req api.Table
	if err := conn.ReadJSON(&req); err != nil {
		logger.Error("failed to read table request", "error", err)
		return
	}

	table, err := req.ToInternal()
	if err != nil {
		s.writeFrame(conn, logger, frame{Type: "error", Message: err.Error()})
		return
	}

	sig := cancel.New()
	go s.watchForDisconnect(conn, sig, logger)

	// A single writer goroutine owns conn for writes, since gorilla's
	// websocket.Conn forbids concurrent writers; the solve goroutine
	// and the progress-forwarding goroutine below both only ever send
	// on framesOut.
	framesOut := make(chan frame, 8)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for f := range framesOut {
			s.writeFrame(conn, logger, f)
		}
	}()

	progressCh := make(chan engine.Progress, 8)
	group, _ := errgroup.WithContext(r.Context())

	group.Go(func() error {
		defer close(progressCh)
		sol, err := engine.Solve(sig, table, quartz.NewReal(), s.pf, func(p engine.Progress) {
			select {
			case progressCh <- p:
			default:
			}
		})
		if err != nil {
			framesOut <- frame{Type: "error", Message: err.Error()}
			return nil
		}
		wire := api.FromInternal(sol)
		framesOut <- frame{Type: "solution", Solution: &wire}
		return nil
	})

	group.Go(func() error {
		for p := range progressCh {
			framesOut <- frame{Type: "progress", Evaluated: p.Evaluated, Total: p.Total}
		}
		return nil
	})

	_ = group.Wait()
	close(framesOut)
	<-writerDone
}

// watchForDisconnect aborts sig as soon as the client closes the
// connection or sends anything further, since this protocol never
// expects a second message.
func (s *equityServer) watchForDisconnect(conn *websocket.Conn, sig *cancel.Signal, logger *log.Logger) {
	_, _, err := conn.ReadMessage()
	if err != nil {
		logger.Debug("client disconnected, cancelling solve", "error", err)
	}
	sig.Abort()
}

func (s *equityServer) writeFrame(conn *websocket.Conn, logger *log.Logger, f frame) {
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	data, err := json.Marshal(f)
	if err != nil {
		logger.Error("failed to marshal frame", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Error("failed to write frame", "error", err)
	}
}
