package verdict

// GlobalKind totally orders the outcome of an entire analysis run, from
// worst (Fail) to best (Pass). Inconc sits strictly between WeakFail and
// WeakPass: a run that could not be fully resolved is never reported as
// an outright failure or pass.
type GlobalKind int

const (
	Fail GlobalKind = iota
	WeakFail
	InconcKind
	WeakPass
	Pass
)

func (k GlobalKind) String() string {
	switch k {
	case Fail:
		return "Fail"
	case WeakFail:
		return "WeakFail"
	case InconcKind:
		return "Inconc"
	case WeakPass:
		return "WeakPass"
	case Pass:
		return "Pass"
	default:
		return "UnknownGlobalKind"
	}
}

// Global is the verdict reported for a whole analysis run.
type Global struct {
	Kind   GlobalKind
	Reason InconcReason // valid iff Kind == InconcKind
}

// NewGlobalInconc builds an Inconc global verdict carrying reason.
func NewGlobalInconc(reason InconcReason) Global {
	return Global{Kind: InconcKind, Reason: reason}
}

func (g Global) String() string {
	if g.Kind == InconcKind {
		return "Inconc " + g.Reason.String()
	}
	return g.Kind.String()
}

// Less reports whether g is strictly worse than o in the Fail < WeakFail <
// Inconc < WeakPass < Pass order.
func (g Global) Less(o Global) bool { return g.Kind < o.Kind }

// InitialGlobal is the starting point of every fold: the worst verdict,
// raised towards Pass as local verdicts are folded in.
func InitialGlobal() Global { return Global{Kind: Fail} }

// Fold combines the running global verdict with a newly observed local
// verdict, following HIBOU's monotone update rule exactly: a Cov anywhere
// always wins outright (Pass); short of that, the rule only ever moves
// the global verdict towards Pass along the Fail < WeakFail < Inconc <
// WeakPass < Pass order, never backwards.
func Fold(glo Global, loc Local) Global {
	switch glo.Kind {
	case Pass:
		return glo

	case WeakPass:
		if loc.Kind == Cov {
			return Global{Kind: Pass}
		}
		return glo

	case InconcKind:
		switch loc.Kind {
		case Cov:
			return Global{Kind: Pass}
		case TooShort, MultiPref, Slice:
			return Global{Kind: WeakPass}
		default:
			return glo
		}

	case WeakFail:
		switch loc.Kind {
		case Cov:
			return Global{Kind: Pass}
		case TooShort, MultiPref, Slice:
			return Global{Kind: WeakPass}
		case Inconc:
			return Global{Kind: InconcKind, Reason: loc.Reason}
		default:
			return glo
		}

	case Fail:
		switch loc.Kind {
		case Cov:
			return Global{Kind: Pass}
		case TooShort, MultiPref, Slice:
			return Global{Kind: WeakPass}
		case Inconc:
			return Global{Kind: InconcKind, Reason: loc.Reason}
		case OutSim:
			return Global{Kind: WeakFail}
		default:
			return glo
		}

	default:
		return glo
	}
}
