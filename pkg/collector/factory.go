package collector

import (
	"time"

	"github.com/odc-tools/odc/pkg/collector/command"
	"github.com/odc-tools/odc/pkg/collector/eventlog"
	"github.com/odc-tools/odc/pkg/collector/file"
	"github.com/odc-tools/odc/pkg/collector/registry"
	"github.com/odc-tools/odc/pkg/manifest"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateFileCollector(tasks []manifest.FileTask) Collector
	CreateRegistryCollector(tasks []manifest.RegistryTask) Collector
	CreateEventLogCollector(tasks []manifest.EventLogTask) Collector
	CreateCommandCollector(tasks []manifest.CommandTask) Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithCommandTimeout sets the per-command execution bound applied by
// command collectors.
func WithCommandTimeout(timeout time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CommandTimeout = timeout
	}
}

// DefaultFactory creates collectors with production dependencies: real
// file copies, reg.exe exports, and interpreter execution.
type DefaultFactory struct {
	CommandTimeout time.Duration
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		CommandTimeout: command.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateFileCollector creates a file collector for the given tasks.
func (f *DefaultFactory) CreateFileCollector(tasks []manifest.FileTask) Collector {
	return &file.Collector{Tasks: tasks}
}

// CreateRegistryCollector creates a registry export collector for the given tasks.
func (f *DefaultFactory) CreateRegistryCollector(tasks []manifest.RegistryTask) Collector {
	return &registry.Collector{Tasks: tasks}
}

// CreateEventLogCollector creates an event log collector for the given tasks.
func (f *DefaultFactory) CreateEventLogCollector(tasks []manifest.EventLogTask) Collector {
	return &eventlog.Collector{Tasks: tasks}
}

// CreateCommandCollector creates a command execution collector for the given tasks.
func (f *DefaultFactory) CreateCommandCollector(tasks []manifest.CommandTask) Collector {
	return &command.Collector{
		Tasks:   tasks,
		Timeout: f.CommandTimeout,
	}
}
