// Package hibou is the one stable import surface of the module: it wraps
// the internal analysis core (internal/core, internal/process) the way
// the teacher's pkg/server wrapped pkg/prolog+pkg/llm, offering Analyze
// and Explore as one entry point. Their signatures use types declared in
// the internal packages, which code outside this module cannot name.
package hibou

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/process/ana"
	"github.com/rfielding/hibou/internal/process/explore"
	"github.com/rfielding/hibou/internal/process/locana"
)

// Analyze runs a multi-trace conformance analysis of interaction against
// mtrace under ctx/colocs, folding terminal local verdicts into a single
// global one. If opts.UseLocalAnalysis is set, locana.Check is wired in
// as the local-analysis short-circuit hook.
func Analyze(ctx *context.Context, colocs context.CoLocalizations, interaction syntax.Interaction, mtrace trace.Analysable, opts ana.Options) (ana.Result, error) {
	if opts.UseLocalAnalysis && opts.LocalAnalysis == nil {
		opts.LocalAnalysis = locana.Check
	}
	return ana.Analyze(ctx, colocs, interaction, mtrace, opts)
}

// Explore runs the degenerate, multi-trace-free state-space walk of
// interaction.
func Explore(ctx *context.Context, interaction syntax.Interaction, opts explore.Options) (explore.Result, error) {
	return explore.Explore(ctx, interaction, opts)
}
