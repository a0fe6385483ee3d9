package main

import (
	_ "embed"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

// pageData fills the landing page.
type pageData struct {
	SSHHost string
	SSHPort string
	Lives   int
}

func main() {
	logger := logging.New(os.Stderr, config.GetEnv("SPACESHIP_LOG_LEVEL", "info"))

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_PORT", "2222"),
		Lives:   config.InitialLives,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logger.Info("starting web server", "url", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
