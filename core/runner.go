package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"remotefs/config"
	"remotefs/remote"
)

// Runner schedules the configured transfer jobs and runs each one through
// the unified client.
type Runner struct {
	Config    *config.Config
	Endpoints map[string]*remote.Endpoint
	Client    *Client
	Journal   *Journal
	Cron      *cron.Cron
	Log       *zap.Logger
}

func NewRunner(cfg *config.Config, endpoints map[string]*remote.Endpoint, client *Client, journal *Journal, log *zap.Logger) *Runner {
	return &Runner{
		Config:    cfg,
		Endpoints: endpoints,
		Client:    client,
		Journal:   journal,
		Cron:      cron.New(),
		Log:       log,
	}
}

func (r *Runner) Start() {
	for _, job := range r.Config.Jobs {
		job := job // capture loop variable
		_, err := r.Cron.AddFunc(job.Cron, func() {
			if err := r.RunJob(job); err != nil {
				r.Log.Error("job failed", zap.String("job", job.Name), zap.Error(err))
			}
		})
		if err != nil {
			r.Log.Error("failed to schedule job", zap.String("job", job.Name), zap.Error(err))
			continue
		}
		r.Log.Info("scheduled job", zap.String("job", job.Name), zap.String("cron", job.Cron))

		// Run immediately in background
		go func(j config.Job) {
			if err := r.RunJob(j); err != nil {
				r.Log.Error("immediate run failed", zap.String("job", j.Name), zap.Error(err))
			}
		}(job)
	}
	r.Cron.Start()
}

func (r *Runner) Stop() {
	r.Cron.Stop()
}

func (r *Runner) RunJob(job config.Job) error {
	ep, ok := r.Endpoints[job.Endpoint]
	if !ok {
		return fmt.Errorf("no endpoint %q for job %s", job.Endpoint, job.Name)
	}

	pattern := job.Pattern
	if pattern == "" {
		pattern = "."
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	history := r.Journal.Job(job.Name)

	switch job.Action {
	case "upload":
		err = r.uploadJob(job, ep, re, history)
	case "download":
		err = r.downloadJob(job, ep, re, history)
	default:
		return fmt.Errorf("unknown action %q for job %s", job.Action, job.Name)
	}
	if err != nil {
		return err
	}

	if job.RetentionDays > 0 {
		r.cleanup(job, ep, history)
	}
	r.Journal.Save()
	return nil
}

// uploadJob sends every matching local file that the journal has not seen
// yet. Subdirectories are skipped; there is no recursive transfer.
func (r *Runner) uploadJob(job config.Job, ep *remote.Endpoint, re *regexp.Regexp, history *JobHistory) error {
	entries, err := os.ReadDir(job.LocalPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !re.MatchString(name) || history.Has(name) {
			continue
		}
		if err := r.Client.Upload(ep, filepath.Join(job.LocalPath, name), ""); err != nil {
			r.Log.Error("upload failed", zap.String("job", job.Name), zap.String("file", name), zap.Error(err))
			continue
		}
		r.Log.Info("uploaded", zap.String("job", job.Name), zap.String("file", name))
		history.Add(name)
	}
	return nil
}

// downloadJob fetches every matching remote entry the journal has not seen
// yet. Remote directories come back Unsupported from the client and are
// skipped.
func (r *Runner) downloadJob(job config.Job, ep *remote.Endpoint, re *regexp.Regexp, history *JobHistory) error {
	names, err := r.Client.ListDirectory(ep)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !re.MatchString(name) || history.Has(name) {
			continue
		}
		err := r.Client.Download(ep, name, job.LocalPath, "")
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		if err != nil {
			r.Log.Error("download failed", zap.String("job", job.Name), zap.String("file", name), zap.Error(err))
			continue
		}
		r.Log.Info("downloaded", zap.String("job", job.Name), zap.String("file", name))
		history.Add(name)
	}
	return nil
}

// cleanup removes remote files that were transferred longer ago than the
// job's retention window.
func (r *Runner) cleanup(job config.Job, ep *remote.Endpoint, history *JobHistory) {
	cutoff := time.Now().AddDate(0, 0, -job.RetentionDays)
	for _, name := range history.olderThan(cutoff) {
		if err := r.Client.DeleteFile(ep, name); err != nil {
			r.Log.Error("cleanup failed", zap.String("job", job.Name), zap.String("file", name), zap.Error(err))
			continue
		}
		r.Log.Info("cleaned up", zap.String("job", job.Name), zap.String("file", name))
		history.Remove(name)
	}
}
