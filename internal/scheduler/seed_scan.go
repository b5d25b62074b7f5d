package scheduler

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/interlinear/internal/seeding"
	"github.com/mrlokans/interlinear/internal/tasks"
)

// Enqueuer hands work to the background task queue. tasks.Client implements it.
type Enqueuer interface {
	Enqueue(task backlite.Task) (string, error)
}

// DirectorySeeder seeds a directory inline when no task queue is available.
type DirectorySeeder interface {
	SeedDirectory(dir string, force bool) ([]seeding.Report, error)
}

type Config struct {
	Enabled  bool
	Dir      string
	Schedule string

	// PurgeSchedule enables a highlight purge job when set and a queue is
	// available.
	PurgeSchedule string
	RetentionDays int
}

// Status describes the last scan.
type Status struct {
	Running  bool       `json:"running"`
	Schedule string     `json:"schedule,omitempty"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	LastNote string     `json:"last_note,omitempty"`
	NextRun  *time.Time `json:"next_run,omitempty"`
}

// SeedScanScheduler periodically rescans the seed directory and seeds
// documents that changed since the last scan.
type SeedScanScheduler struct {
	cfg      Config
	enqueuer Enqueuer
	seeder   DirectorySeeder

	cron        *cron.Cron
	entryID     cron.EntryID
	mu          sync.RWMutex
	isRunning   bool
	cancelFunc  context.CancelFunc
	fingerprint uint64
	lastRun     *time.Time
	lastNote    string
}

// NewSeedScanScheduler creates a new scheduler instance. enqueuer may be nil,
// in which case scans run inline on the cron goroutine.
func NewSeedScanScheduler(cfg Config, enqueuer Enqueuer, seeder DirectorySeeder) *SeedScanScheduler {
	return &SeedScanScheduler{
		cfg:      cfg,
		enqueuer: enqueuer,
		seeder:   seeder,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start begins the scheduler. The directory scan runs when enabled with a
// directory; the highlight purge runs whenever a purge schedule and a task
// queue are configured, independently of the scan.
func (s *SeedScanScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	scan := s.cfg.Enabled && s.cfg.Dir != ""
	switch {
	case !s.cfg.Enabled:
		log.Printf("[SCHEDULER] Seed scan: disabled")
	case s.cfg.Dir == "":
		log.Printf("[SCHEDULER] Seed scan: seed directory not configured, skipping")
	}
	purge := s.cfg.PurgeSchedule != "" && s.enqueuer != nil

	if !scan && !purge {
		return nil
	}

	if scan {
		if err := ValidateCronSchedule(s.cfg.Schedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Schedule, err)
		}
		entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
			s.runScan()
		})
		if err != nil {
			return fmt.Errorf("failed to schedule seed scan: %w", err)
		}
		s.entryID = entryID
	}

	if purge {
		if err := ValidateCronSchedule(s.cfg.PurgeSchedule); err != nil {
			return fmt.Errorf("invalid purge schedule '%s': %w", s.cfg.PurgeSchedule, err)
		}
		if _, err := s.cron.AddFunc(s.cfg.PurgeSchedule, s.enqueuePurge); err != nil {
			return fmt.Errorf("failed to schedule highlight purge: %w", err)
		}
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	if scan {
		nextRun, _ := GetNextRunTime(s.cfg.Schedule)
		log.Printf("[SCHEDULER] Seed scan: started with schedule '%s' (%s) for %s. Next run: %v",
			s.cfg.Schedule,
			GetCronDescription(s.cfg.Schedule),
			s.cfg.Dir,
			nextRun)
	}
	if purge {
		log.Printf("[SCHEDULER] Highlight purge: scheduled '%s' (%s)",
			s.cfg.PurgeSchedule, GetCronDescription(s.cfg.PurgeSchedule))
	}

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *SeedScanScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	// Running scans take the lock, so wait for them outside it
	ctx := s.cron.Stop()
	<-ctx.Done()

	if cancel != nil {
		cancel()
	}

	log.Printf("[SCHEDULER] Seed scan: stopped")
}

// RunNow triggers an immediate scan, skipping unchanged directories like a
// scheduled run would.
func (s *SeedScanScheduler) RunNow() {
	go s.runScan()
}

// IsRunning returns whether the scheduler is active
func (s *SeedScanScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *SeedScanScheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		Running:  s.isRunning,
		Schedule: s.cfg.Schedule,
		LastRun:  s.lastRun,
		LastNote: s.lastNote,
	}
	if s.isRunning {
		for _, entry := range s.cron.Entries() {
			if entry.ID == s.entryID {
				t := entry.Next
				status.NextRun = &t
			}
		}
	}
	return status
}

func (s *SeedScanScheduler) runScan() {
	note := s.scan()
	log.Printf("[SCHEDULER] Seed scan: %s", note)

	now := time.Now()
	s.mu.Lock()
	s.lastRun = &now
	s.lastNote = note
	s.mu.Unlock()
}

func (s *SeedScanScheduler) scan() string {
	fp, err := directoryFingerprint(s.cfg.Dir)
	if err != nil {
		return fmt.Sprintf("failed to read %s: %v", s.cfg.Dir, err)
	}

	s.mu.RLock()
	unchanged := fp == s.fingerprint
	s.mu.RUnlock()
	if unchanged {
		return "no changes"
	}

	if s.enqueuer != nil {
		id, err := s.enqueuer.Enqueue(tasks.SeedDirectoryTask{Dir: s.cfg.Dir})
		if err != nil {
			return fmt.Sprintf("failed to enqueue: %v", err)
		}
		s.setFingerprint(fp)
		return "enqueued task " + id
	}

	if s.seeder == nil {
		return "no seeder configured"
	}
	reports, err := s.seeder.SeedDirectory(s.cfg.Dir, false)
	if err != nil {
		return fmt.Sprintf("seeded %d documents with errors: %v", len(reports), err)
	}
	s.setFingerprint(fp)
	return fmt.Sprintf("seeded %d documents", len(reports))
}

func (s *SeedScanScheduler) setFingerprint(fp uint64) {
	s.mu.Lock()
	s.fingerprint = fp
	s.mu.Unlock()
}

func (s *SeedScanScheduler) enqueuePurge() {
	id, err := s.enqueuer.Enqueue(tasks.PurgeHighlightsTask{RetentionDays: s.cfg.RetentionDays})
	if err != nil {
		log.Printf("[SCHEDULER] Highlight purge: failed to enqueue: %v", err)
		return
	}
	log.Printf("[SCHEDULER] Highlight purge: enqueued task %s", id)
}

// directoryFingerprint hashes the names, sizes and modification times of the
// seed documents in dir.
func directoryFingerprint(dir string) (uint64, error) {
	paths, err := seeding.DocumentPaths(dir)
	if err != nil {
		return 0, err
	}
	if _, err := os.Stat(dir); err != nil {
		return 0, err
	}

	h := fnv.New64a()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(h, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return h.Sum64(), nil
}
