package app

import (
	"context"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs which configuration keys fell back to their defaults.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs a summary of the configuration report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*log.Logger]()
		if err != nil {
			return err
		}
		logger = resolved
	}

	defaults := make([]string, 0, len(r.Configs))
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults = append(defaults, c.Key)
		}
	}
	slices.Sort(defaults)
	logger.Printf("ReportLoggerIntrospector: %d config keys read, %d using defaults", len(r.Configs), len(defaults))
	if len(defaults) > 0 {
		logger.Printf("ReportLoggerIntrospector: defaults used for %s", strings.Join(defaults, ", "))
	}
	return nil
}
