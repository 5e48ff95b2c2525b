package fs

import (
	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	DataPath     string   `json:"data_path"`
	TemplatePath string   `json:"template_path"`
	Formats      []string `json:"formats"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	return SourceState{
		DataPath:     s.DataPath,
		TemplatePath: s.TemplatePath,
		Formats:      Extensions(),
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "source"
}

// SinkState exposes internal state for observability.
type SinkState struct {
	Path string `json:"path"`
}

// State implements introspection.Introspectable.
func (s *Sink) State() any {
	return SinkState{Path: s.Path}
}

// ComponentType implements introspection.Component.
func (s *Sink) ComponentType() string {
	return "sink"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)
var _ introspection.Introspectable = (*Sink)(nil)
var _ introspection.Component = (*Sink)(nil)
