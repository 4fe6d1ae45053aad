package workers

import (
	"time"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/service"
)

// defaultSweepInterval is used when no interval is configured. The
// throttle map only grows with failed logins, so an occasional sweep
// is plenty.
const defaultSweepInterval = 5 * time.Minute

// throttleJanitor periodically prunes login-attempt counters whose
// cooldown has fully elapsed, keeping the in-memory throttle map bounded.
type throttleJanitor struct {
	throttle service.ThrottleService
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
	done     chan struct{}
}

func newThrottleJanitor(throttle service.ThrottleService, interval time.Duration, logger *logger.Logger) *throttleJanitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &throttleJanitor{
		throttle: throttle,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (j *throttleJanitor) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("throttle janitor started")
	go j.loop()
}

func (j *throttleJanitor) Stop() {
	close(j.stop)
	<-j.done
}

func (j *throttleJanitor) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			j.logger.Info().Msg("throttle janitor stopped")
			return
		case <-ticker.C:
			if pruned := j.throttle.Sweep(); pruned > 0 {
				j.logger.Debug().Int("pruned", pruned).Msg("swept cooled-down login counters")
			}
		}
	}
}
