// Package telemetry provides Pyroscope continuous profiling integration.
package telemetry

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// ProfilerConfig configures continuous profiling with Pyroscope.
type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string // e.g. "http://pyroscope:4040"
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
	// Tags are attached to every profile, next to hostname
	Tags map[string]string
	// ProfileTypes falls back to DefaultProfileTypes
	ProfileTypes  []pyroscope.ProfileType
	DisableGCRuns bool
}

// DefaultProfileTypes cover CPU time of the rating pipeline plus the
// allocation and goroutine views.
var DefaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

func (c ProfilerConfig) validate() error {
	var errs []error
	if c.ServerAddress == "" {
		errs = append(errs, errors.New("profiler: server address is required"))
	}
	if c.ApplicationName == "" {
		errs = append(errs, errors.New("profiler: application name is required"))
	}
	return errors.Join(errs...)
}

func (c ProfilerConfig) tags() map[string]string {
	tags := maps.Clone(c.Tags)
	if tags == nil {
		tags = make(map[string]string, 1)
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		tags["hostname"] = host
	}
	return tags
}

// Profiler owns a running pyroscope session. The zero session is a no-op.
type Profiler struct {
	session  *pyroscope.Profiler
	logger   *zap.Logger
	stopOnce sync.Once
	stopErr  error
}

// NewProfiler starts profiling when cfg.Enabled; otherwise it returns a
// Profiler whose Stop does nothing.
func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger}
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return p, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	types := cfg.ProfileTypes
	if len(types) == 0 {
		types = DefaultProfileTypes
	}
	session, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:              cfg.tags(),
		ProfileTypes:      types,
		DisableGCRuns:     cfg.DisableGCRuns,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	p.session = session

	logger.Info("Continuous profiling started",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
		zap.Int("profile_types", len(types)),
	)
	return p, nil
}

// Stop flushes pending profiles once. Later calls return the first result.
func (p *Profiler) Stop() error {
	p.stopOnce.Do(func() {
		if p.session == nil {
			return
		}
		if err := p.session.Stop(); err != nil {
			p.stopErr = fmt.Errorf("stop pyroscope: %w", err)
			return
		}
		p.logger.Info("Continuous profiling stopped")
	})
	return p.stopErr
}

func (p *Profiler) IsEnabled() bool {
	return p.session != nil
}

// pyroscopeLogger routes pyroscope's own logging through zap.
type pyroscopeLogger struct {
	*zap.SugaredLogger
}
