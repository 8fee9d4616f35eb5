package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/envint-labs/envint-cli/internal/logger"
)

var ingestWatch bool

// watchUploadInterval throttles watch-mode uploads so a burst of file events
// (editors write temp files, then rename) does not hammer the backend.
const watchUploadInterval = 2 // seconds between uploads

// ingestExtensions are the file types picked up in watch mode.
var ingestExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
	".csv": true,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [path...]",
	Short: "Upload documents to the backend index",
	Long: `Uploads one or more documents to be parsed, chunked, embedded, and indexed.

With --watch, the given path is treated as a directory and every document
created or modified in it is uploaded automatically until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "watch a directory and upload new documents")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if maintenanceService == nil {
		return errors.New("maintenance service not configured")
	}

	if ingestWatch {
		if len(args) != 1 {
			return errors.New("watch mode takes exactly one directory")
		}
		return watchAndIngest(cmd, args[0])
	}

	for _, path := range args {
		status, err := maintenanceService.Upload(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("upload %s: %w", path, err)
		}
		if !status.Succeeded() {
			return fmt.Errorf("upload %s: %s", path, status.Message)
		}
		cmd.Printf("%s: %s\n", filepath.Base(path), status.Message)
	}
	return nil
}

// watchAndIngest uploads every document written into dir until the context
// is cancelled. Uploads are rate limited to one per couple of seconds.
func watchAndIngest(cmd *cobra.Command, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	limiter := rate.NewLimiter(rate.Limit(1.0/watchUploadInterval), 1)

	cmd.Printf("Watching %s (ctrl+c to stop)\n", dir)
	ctx := cmd.Context()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !ingestExtensions[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			if err := uploadWatched(ctx, cmd, limiter, event.Name); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				// Keep watching; a single bad file should not stop the loop.
				cmd.PrintErrf("upload %s: %v\n", filepath.Base(event.Name), err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// uploadWatched waits for rate-limit headroom and uploads one file.
func uploadWatched(ctx context.Context, cmd *cobra.Command, limiter *rate.Limiter, path string) error {
	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	status, err := maintenanceService.Upload(ctx, path)
	if err != nil {
		return err
	}
	if !status.Succeeded() {
		return errors.New(status.Message)
	}
	cmd.Printf("%s: %s\n", filepath.Base(path), status.Message)
	return nil
}
