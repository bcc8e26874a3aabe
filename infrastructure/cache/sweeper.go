package cache

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"tombraider-hub/domain/repository"
	"tombraider-hub/infrastructure/logger"
)

// Sweeper periodically removes expired entries so that keys nobody reads
// again (old cache versions, retired categories) do not accumulate.
type Sweeper struct {
	cache repository.ICache
	cron  *cron.Cron
}

// NewSweeper schedules Cleanup on cache using a robfig/cron spec such as
// "@every 1h".
func NewSweeper(c repository.ICache, schedule string) (*Sweeper, error) {
	cl := cronLogger{entry: logger.GetLogger().WithField("component", "cache-sweeper")}
	s := &Sweeper{
		cache: c,
		cron:  cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep() }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Sweep runs one cleanup pass and returns the number of removed entries.
func (s *Sweeper) Sweep() int {
	removed := s.cache.Cleanup()
	stats := s.cache.Stats()
	logger.GetLogger().WithFields(log.Fields{
		"removed": removed,
		"total":   stats.Total,
	}).Info("Cache sweep finished")
	return removed
}

// Run starts the schedule and blocks until ctx is done. A sweep in progress
// is allowed to finish before Run returns.
func (s *Sweeper) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

type cronLogger struct {
	entry *log.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).WithField("error", err).Error(msg)
}

func fields(keysAndValues []interface{}) log.Fields {
	f := make(log.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}
