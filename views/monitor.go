package views

import "go.uber.org/zap"

// ZipMonitor observes how zip traversals started by All end, directly or through Enumerate.
type ZipMonitor interface {
	// OnExhausted is called when member (0-based, declaration order) reached its end
	// after steps tuples were produced.
	OnExhausted(member int, steps int)
	// OnStopped is called when the consumer stops the traversal after steps tuples.
	OnStopped(steps int)
}

// NoopZipMonitor ignores every event. It is the default monitor.
type NoopZipMonitor struct{}

func (NoopZipMonitor) OnExhausted(member int, steps int) {}
func (NoopZipMonitor) OnStopped(steps int)               {}

// LogMonitor reports zip traversals to a zap logger at debug level.
type LogMonitor struct {
	log *zap.Logger
}

// NewLogMonitor returns a LogMonitor writing to log. A nil logger discards everything.
func NewLogMonitor(log *zap.Logger) *LogMonitor {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogMonitor{log: log}
}

func (m *LogMonitor) OnExhausted(member int, steps int) {
	m.log.Debug("zip exhausted", zap.Int("member", member), zap.Int("steps", steps))
}

func (m *LogMonitor) OnStopped(steps int) {
	m.log.Debug("zip stopped by consumer", zap.Int("steps", steps))
}

type zipConfig struct {
	monitor ZipMonitor
}

// ZipOption configures Zip2, Zip3 and ZipNWith.
type ZipOption func(*zipConfig)

// WithMonitor installs m on the zip. A nil monitor restores the no-op default.
func WithMonitor(m ZipMonitor) ZipOption {
	return func(cfg *zipConfig) {
		if m == nil {
			m = NoopZipMonitor{}
		}
		cfg.monitor = m
	}
}

func newZipConfig(opts []ZipOption) zipConfig {
	cfg := zipConfig{monitor: NoopZipMonitor{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
