package collab

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/process/ana"
)

// Parser is the contract an interaction/signature/trace parser is
// expected to satisfy: it returns the full five-tuple the core consumes
// by value. No implementation ships here — parsers are out of scope —
// but the interface lets pkg/hibou accept one from a sibling package
// without depending on any concrete syntax.
type Parser interface {
	Parse() (*context.Context, syntax.Interaction, context.CoLocalizations, trace.Analysable, ana.Options, error)
}
