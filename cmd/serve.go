package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the dev media server over the configured media directories.
//
// The server exposes the same asset trees a deployed backend would:
// /uploads/ for uploaded files and /videos/{marches,music}/ for the curated
// favorites, with Range support for seeking. An fsnotify watcher logs files
// dropped into the directories while the server runs.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := r.config.Server.Host
	if cmd.String("host") != "" {
		host = cmd.String("host")
	}
	port := r.config.Server.Port
	if cmd.Int("port") != 0 {
		port = cmd.Int("port")
	}

	uploadsDir := r.config.Media.UploadsDir
	videosDir := r.config.Media.VideosDir

	watched := []string{uploadsDir}
	for _, category := range []models.Category{models.CategoryMarch, models.CategoryMusic} {
		watched = append(watched, filepath.Join(videosDir, category.AssetDir()))
	}

	watcher, err := server.NewMediaWatcher(r.logger, nil, watched...)
	if err != nil {
		return fmt.Errorf("failed to watch media directories: %w", err)
	}
	watcher.Start()
	defer watcher.Stop()

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))
	router.Handler(server.NewMediaHandler(uploadsDir, videosDir))

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	r.logger.Info("serving media", "addr", addr, "uploads", uploadsDir, "videos", videosDir)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	interrupt, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-interrupt.Done():
	}

	r.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
