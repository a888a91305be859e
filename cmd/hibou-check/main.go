// Command hibou-check is a thin CLI wrapping pkg/hibou: it starts the
// HTTP surface (pkg/hibou/server) on a port. It has no mode that reads a
// scenario file and runs a single analysis. Not part of the core —
// per spec.md's Non-goals, no concrete-syntax parser ships, so input is
// restricted to the server's wire JSON shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rfielding/hibou/pkg/hibou/server"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	srv := server.New(log)
	addr := fmt.Sprintf(":%d", *port)
	log.Infof("hibou-check listening on http://localhost%s", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		log.WithError(err).Error("server error")
		os.Exit(1)
	}
}
