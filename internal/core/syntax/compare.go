package syntax

import (
	"sort"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
)

// Compare imposes a total order over interaction terms: first by variant
// priority, then structurally within a variant. It returns -1, 0 or 1,
// matching sort.Interface conventions.
func Compare(a, b Interaction) int {
	if a.Priority() != b.Priority() {
		if a.Priority() < b.Priority() {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case *Empty:
		return 0
	case *Emission:
		bv := b.(*Emission)
		return compareEmission(av, bv)
	case *Reception:
		bv := b.(*Reception)
		return compareReception(av, bv)
	case *Strict:
		bv := b.(*Strict)
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *Seq:
		bv := b.(*Seq)
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *Par:
		bv := b.(*Par)
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *Alt:
		bv := b.(*Alt)
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *And:
		bv := b.(*And)
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *CoReg:
		bv := b.(*CoReg)
		if c := compareLfSet(av.Lifelines, bv.Lifelines); c != 0 {
			return c
		}
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *Sync:
		bv := b.(*Sync)
		if c := compareActSet(av.Actions, bv.Actions); c != 0 {
			return c
		}
		return compareBinary(av.Left, av.Right, bv.Left, bv.Right)
	case *Loop:
		bv := b.(*Loop)
		if av.Kind != bv.Kind {
			if av.Kind < bv.Kind {
				return -1
			}
			return 1
		}
		return Compare(av.Body, bv.Body)
	default:
		return 0
	}
}

// Equal reports whether two interaction terms are structurally identical.
func Equal(a, b Interaction) bool { return Compare(a, b) == 0 }

func compareBinary(al, ar, bl, br Interaction) int {
	if c := Compare(al, bl); c != 0 {
		return c
	}
	return Compare(ar, br)
}

func compareEmission(a, b *Emission) int {
	if a.Origin != b.Origin {
		return compareLf(a.Origin, b.Origin)
	}
	if a.Message != b.Message {
		return compareMs(a.Message, b.Message)
	}
	return compareTargets(a.Targets, b.Targets)
}

func compareReception(a, b *Reception) int {
	if a.Message != b.Message {
		return compareMs(a.Message, b.Message)
	}
	return compareLfSlice(a.Recipients, b.Recipients)
}

func compareLf(a, b context.LfID) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareMs(a, b context.MsID) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareTargets(a, b []action.Target) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i].TargetKind != b[i].TargetKind {
			if a[i].TargetKind < b[i].TargetKind {
				return -1
			}
			return 1
		}
		if a[i].IsLifeline() {
			if c := compareLf(a[i].LfID, b[i].LfID); c != 0 {
				return c
			}
		} else if a[i].GtID != b[i].GtID {
			if a[i].GtID < b[i].GtID {
				return -1
			}
			return 1
		}
	}
	return 0
}

func compareLfSlice(a, b []context.LfID) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := compareLf(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortedLfIDs(m map[context.LfID]struct{}) []context.LfID {
	out := make([]context.LfID, 0, len(m))
	for lf := range m {
		out = append(out, lf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func compareLfSet(a, b map[context.LfID]struct{}) int {
	return compareLfSlice(sortedLfIDs(a), sortedLfIDs(b))
}

func compareActSet(a, b map[action.TraceAction]struct{}) int {
	as := sortedActions(a)
	bs := sortedActions(b)
	if len(as) != len(bs) {
		if len(as) < len(bs) {
			return -1
		}
		return 1
	}
	for i := range as {
		if as[i].LfID != bs[i].LfID {
			if as[i].LfID < bs[i].LfID {
				return -1
			}
			return 1
		}
		if as[i].Kind != bs[i].Kind {
			if as[i].Kind < bs[i].Kind {
				return -1
			}
			return 1
		}
		if as[i].MsID != bs[i].MsID {
			if as[i].MsID < bs[i].MsID {
				return -1
			}
			return 1
		}
	}
	return 0
}

func sortedActions(m map[action.TraceAction]struct{}) []action.TraceAction {
	out := make([]action.TraceAction, 0, len(m))
	for a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LfID != out[j].LfID {
			return out[i].LfID < out[j].LfID
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].MsID < out[j].MsID
	})
	return out
}
