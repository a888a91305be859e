// Package semantics implements the three operational primitives every
// exploration or analysis driver is built on: avoids, express_empty and
// the frontier/execute rewrite pair.
package semantics

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
)

// Avoids reports whether no action on lf is reachable along any
// execution of i that expresses the empty trace.
func Avoids(i syntax.Interaction, lf context.LfID) bool {
	switch v := i.(type) {
	case *syntax.Empty:
		return true
	case *syntax.Emission:
		_, occupied := v.OccupationAfter()[lf]
		return !occupied
	case *syntax.Reception:
		_, occupied := v.OccupationAfter()[lf]
		return !occupied
	case *syntax.Strict:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.Seq:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.Par:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.And:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.CoReg:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.Sync:
		return Avoids(v.Left, lf) && Avoids(v.Right, lf)
	case *syntax.Alt:
		return Avoids(v.Left, lf) || Avoids(v.Right, lf)
	case *syntax.Loop:
		return true
	default:
		return true
	}
}

// ExpressEmpty reports whether the empty trace belongs to i's denotation.
func ExpressEmpty(i syntax.Interaction) bool {
	switch v := i.(type) {
	case *syntax.Empty:
		return true
	case *syntax.Loop:
		return true
	case *syntax.Emission:
		return v.Emission.ExpressEmpty()
	case *syntax.Reception:
		return v.Reception.ExpressEmpty()
	case *syntax.Strict:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.Seq:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.Par:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.And:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.CoReg:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.Sync:
		return ExpressEmpty(v.Left) && ExpressEmpty(v.Right)
	case *syntax.Alt:
		return ExpressEmpty(v.Left) || ExpressEmpty(v.Right)
	default:
		return false
	}
}
