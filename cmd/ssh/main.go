package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/input"
	"github.com/tomz197/spaceship/internal/logging"
	"github.com/tomz197/spaceship/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	// Sessions are remote terminals; sound would play on the server.
	cfg.Sound = false

	logger := logging.New(os.Stderr, cfg.LogLevel)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath)

	var sessions sync.WaitGroup
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger, &sessions),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	sessions.Wait()
}

// gameMiddleware runs one independent game per session.
func gameMiddleware(cfg config.Config, logger *log.Logger, sessions *sync.WaitGroup) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			sessions.Add(1)
			defer sessions.Done()

			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			sessLog := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLog.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			size := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					size.update(win.Width, win.Height)
				}
			}()

			if err := play(sess, cfg, size.getSize, sessLog); err != nil {
				sessLog.Error("game error", "err", err)
			}
			sessLog.Info("session ended")
			next(sess)
		}
	}
}

func play(sess ssh.Session, cfg config.Config, size draw.TermSizeFunc, logger *log.Logger) error {
	t := draw.NewTerminal(sess, size, config.MaxTermWidth, config.MaxTermHeight, config.ViewWidth, config.ViewHeight)
	if err := t.Start(); err != nil {
		return err
	}
	defer t.Close()

	game, err := loop.New(cfg, loop.Deps{
		Renderer: t,
		Display:  t,
		Input:    input.StartStream(sess, cfg.KeyHold),
		Sound:    audio.Silent{},
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return game.Run(sess.Context())
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
