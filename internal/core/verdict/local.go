package verdict

// LocalKind enumerates the verdicts a single analysis node can be assigned
// once its frontier is exhausted against a multi-trace.
type LocalKind int

const (
	// Cov: every canal of the multi-trace is fully consumed.
	Cov LocalKind = iota
	// TooShort: every canal is consumed, but the interaction either had to
	// be continued past a canal's recorded end (after-end simulation) or,
	// under the prefix relation, still has actions left to perform.
	TooShort
	// MultiPref: several canals diverge on what remains, none of them a
	// prefix of a single accepted continuation.
	MultiPref
	// Slice: every canal is consumed and the interaction expresses empty,
	// but some canal needed simulated actions before its recorded start.
	Slice
	// OutAccept: every canal is consumed but the interaction does not
	// express_empty — a proper, unfinished prefix judged under the
	// acceptance relation, where stopping short is not permitted.
	OutAccept
	// Out is the plain non-accepting mismatch: no head action of the
	// multi-trace matches any frontier action at this node. ViaLocal
	// records whether this was decided by a local-analysis short-circuit
	// rather than by exhausting the node's own frontier.
	Out
	// OutSim is Out reached only by relaxing with simulation (accepting a
	// gap in the trace to make progress). ViaLocal mirrors Out's.
	OutSim
	// Inconc is an inconclusive verdict, carrying why it could not be
	// resolved further.
	Inconc
)

func (k LocalKind) String() string {
	switch k {
	case Cov:
		return "Cov"
	case TooShort:
		return "TooShort"
	case MultiPref:
		return "MultiPref"
	case Slice:
		return "Slice"
	case OutAccept:
		return "OutAccept"
	case Out:
		return "Out"
	case OutSim:
		return "OutSim"
	case Inconc:
		return "Inconc"
	default:
		return "UnknownLocalKind"
	}
}

// Local is the verdict attached to a single analysis node.
type Local struct {
	Kind     LocalKind
	ViaLocal bool         // valid for Out / OutSim
	Reason   InconcReason // valid for Inconc
}

func (l Local) String() string {
	switch l.Kind {
	case Out, OutSim:
		if l.ViaLocal {
			return l.Kind.String() + "-l"
		}
		return l.Kind.String()
	case Inconc:
		return "Inconc(" + l.Reason.String() + ")"
	default:
		return l.Kind.String()
	}
}

// NewOutAccept builds an OutAccept verdict.
func NewOutAccept(viaLocal bool) Local { return Local{Kind: OutAccept, ViaLocal: viaLocal} }

// NewOut builds a plain Out verdict.
func NewOut(viaLocal bool) Local { return Local{Kind: Out, ViaLocal: viaLocal} }

// NewOutSim builds an OutSim verdict.
func NewOutSim(viaLocal bool) Local { return Local{Kind: OutSim, ViaLocal: viaLocal} }

// NewInconc builds an Inconc verdict carrying reason.
func NewInconc(reason InconcReason) Local { return Local{Kind: Inconc, Reason: reason} }
