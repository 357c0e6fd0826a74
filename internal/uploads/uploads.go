package uploads

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Save writes an uploaded file into dir, creating the directory when needed.
// Only the base name of the upload is used.
func Save(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to ensure upload dir: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return path, nil
}

// Pruner deletes stale files from the upload directory on a daily schedule.
type Pruner struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
}

func NewPruner(dir string, maxAge time.Duration) *Pruner {
	return &Pruner{
		dir:    dir,
		maxAge: maxAge,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules pruning daily at 03:00 UTC.
func (p *Pruner) Start() error {
	_, err := p.cron.AddFunc("0 3 * * *", func() {
		n, err := p.Prune(time.Now())
		if err != nil {
			log.Printf("upload pruning failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("pruned %d stale upload(s) from %s", n, p.dir)
		}
	})
	if err != nil {
		return err
	}
	p.cron.Start()
	log.Printf("upload pruner started for %s (max age %s)", p.dir, p.maxAge)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (p *Pruner) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

// Prune removes regular files older than the retention age and returns how
// many were deleted. A missing directory is a no-op.
func (p *Pruner) Prune(now time.Time) (int, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read upload dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > p.maxAge {
			if err := os.Remove(filepath.Join(p.dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
