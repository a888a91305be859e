// Package collab holds the external interfaces an analysis run reports
// through and the external interface a spec syntax would be read through,
// per §6: logging is the one boundary the core crosses on every step, so
// it is expressed as an interface (ana.Logger) the core depends on and
// this package implements, rather than a concern the core owns outright.
package collab

import (
	"github.com/sirupsen/logrus"

	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/position"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
	"github.com/rfielding/hibou/internal/process/ana"
)

// LogrusLogger implements ana.Logger by emitting one structured logrus
// entry per callback. It is the one shipped Logger; nil is also a valid
// ana.Logger (no logging) so callers that don't want one simply omit it.
type LogrusLogger struct {
	Log *logrus.Logger
}

// NewLogrusLogger builds a LogrusLogger around a fresh logrus.Logger with
// the given level, matching the teacher's pattern of constructing a
// dedicated logger at startup rather than using the package-level default.
func NewLogrusLogger(level logrus.Level) *LogrusLogger {
	l := logrus.New()
	l.SetLevel(level)
	return &LogrusLogger{Log: l}
}

func (ll *LogrusLogger) Init(i syntax.Interaction, ctx *context.Context) {
	ll.Log.WithFields(logrus.Fields{
		"event":      "init",
		"lifelines":  ctx.LifelineCount(),
		"messages":   ctx.MessageCount(),
		"root_prior": i.Priority(),
	}).Info("analysis started")
}

func (ll *LogrusLogger) NewStep(parentID, childID uint32, step ana.StepKind) {
	ll.Log.WithFields(logrus.Fields{
		"event":    "new_step",
		"parent":   parentID,
		"child":    childID,
		"position": position.String(step.Elt.Position),
		"actions":  len(step.Elt.TargetActions),
		"simu":     len(step.SimMap) > 0,
	}).Debug("step enqueued")
}

func (ll *LogrusLogger) Filtered(parentID, childID uint32, reason abstract.FilterReason) {
	ll.Log.WithFields(logrus.Fields{
		"event":  "filtered",
		"parent": parentID,
		"child":  childID,
		"reason": string(reason),
	}).Debug("step filtered")
}

func (ll *LogrusLogger) Verdict(nodeID uint32, local verdict.Local) {
	ll.Log.WithFields(logrus.Fields{
		"event": "verdict",
		"node":  nodeID,
		"local": local.String(),
	}).Debug("node verdict")
}

func (ll *LogrusLogger) Terminate(global verdict.Global, options []string) {
	ll.Log.WithFields(logrus.Fields{
		"event":   "terminate",
		"global":  global.String(),
		"options": options,
	}).Info("analysis finished")
}
