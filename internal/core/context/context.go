// Package context holds the name tables shared by every interaction term
// and multi-trace in a single analysis run: lifelines, messages and gates
// are interned into small integer ids the rest of the core operates on.
package context

import "fmt"

// LfID identifies a lifeline within a Context.
type LfID uint32

// MsID identifies a message within a Context.
type MsID uint32

// GtID identifies a gate within a Context.
type GtID uint32

// Context is the push-only name table for one analysis run. Lifelines,
// messages and gates are only ever appended; ids are stable once assigned.
type Context struct {
	lfNames []string
	msNames []string
	gtNames []string
}

// New returns an empty Context.
func New() *Context {
	return &Context{}
}

// AddLifeline interns lf_name, returning its existing id if already present.
func (c *Context) AddLifeline(name string) LfID {
	if id, ok := c.LifelineID(name); ok {
		return id
	}
	c.lfNames = append(c.lfNames, name)
	return LfID(len(c.lfNames) - 1)
}

// AddMessage interns ms_name, returning its existing id if already present.
func (c *Context) AddMessage(name string) MsID {
	if id, ok := c.MessageID(name); ok {
		return id
	}
	c.msNames = append(c.msNames, name)
	return MsID(len(c.msNames) - 1)
}

// AddGate interns gt_name, returning its existing id if already present.
func (c *Context) AddGate(name string) GtID {
	if id, ok := c.GateID(name); ok {
		return id
	}
	c.gtNames = append(c.gtNames, name)
	return GtID(len(c.gtNames) - 1)
}

// LifelineID looks up a lifeline by name.
func (c *Context) LifelineID(name string) (LfID, bool) {
	for i, n := range c.lfNames {
		if n == name {
			return LfID(i), true
		}
	}
	return 0, false
}

// MessageID looks up a message by name.
func (c *Context) MessageID(name string) (MsID, bool) {
	for i, n := range c.msNames {
		if n == name {
			return MsID(i), true
		}
	}
	return 0, false
}

// GateID looks up a gate by name.
func (c *Context) GateID(name string) (GtID, bool) {
	for i, n := range c.gtNames {
		if n == name {
			return GtID(i), true
		}
	}
	return 0, false
}

// LifelineCount returns the number of interned lifelines.
func (c *Context) LifelineCount() int { return len(c.lfNames) }

// MessageCount returns the number of interned messages.
func (c *Context) MessageCount() int { return len(c.msNames) }

// GateCount returns the number of interned gates.
func (c *Context) GateCount() int { return len(c.gtNames) }

// AllLifelineIDs returns every lifeline id known to the context.
func (c *Context) AllLifelineIDs() map[LfID]struct{} {
	out := make(map[LfID]struct{}, len(c.lfNames))
	for i := range c.lfNames {
		out[LfID(i)] = struct{}{}
	}
	return out
}

// LifelineName resolves lf_id back to its name.
func (c *Context) LifelineName(id LfID) (string, error) {
	if int(id) >= len(c.lfNames) {
		return "", fmt.Errorf("context: unknown lifeline id %d", id)
	}
	return c.lfNames[id], nil
}

// MessageName resolves ms_id back to its name.
func (c *Context) MessageName(id MsID) (string, error) {
	if int(id) >= len(c.msNames) {
		return "", fmt.Errorf("context: unknown message id %d", id)
	}
	return c.msNames[id], nil
}

// GateName resolves gt_id back to its name.
func (c *Context) GateName(id GtID) (string, error) {
	if int(id) >= len(c.gtNames) {
		return "", fmt.Errorf("context: unknown gate id %d", id)
	}
	return c.gtNames[id], nil
}
