package syntax

import "github.com/rfielding/hibou/internal/core/context"

// Lifelines collects every lifeline id occurring anywhere in i, be it as
// an emission's origin, an emission target, or a reception's recipient.
func Lifelines(i Interaction) map[context.LfID]struct{} {
	out := map[context.LfID]struct{}{}
	collectLifelines(i, out)
	return out
}

func collectLifelines(i Interaction, out map[context.LfID]struct{}) {
	switch v := i.(type) {
	case *Empty:
	case *Emission:
		for lf := range v.OccupationAfter() {
			out[lf] = struct{}{}
		}
	case *Reception:
		for lf := range v.OccupationAfter() {
			out[lf] = struct{}{}
		}
	case *Strict:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *Seq:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *Par:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *Alt:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *And:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *CoReg:
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *Sync:
		for act := range v.Actions {
			out[act.LfID] = struct{}{}
		}
		collectLifelines(v.Left, out)
		collectLifelines(v.Right, out)
	case *Loop:
		collectLifelines(v.Body, out)
	}
}
