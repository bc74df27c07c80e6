package catalog

// Coordinator serializes the async traffic around a Store: it issues
// monotonically increasing fetch sequence numbers so completions of
// superseded fetches can be discarded, and it tracks per-record in-flight
// mutations so concurrent star/delete on the same identifier is rejected
// instead of racing.
//
// Like Store it relies on the single update-loop thread for safety.
type Coordinator struct {
	seq      uint64
	inflight map[string]struct{}
}

// NextSeq issues a new fetch sequence number. Each refresh must carry the
// number it was issued and completions must be checked with Latest.
func (c *Coordinator) NextSeq() uint64 {
	c.seq++
	return c.seq
}

// Latest reports whether seq is the most recently issued fetch. Stale
// completions must not touch the Store.
func (c *Coordinator) Latest(seq uint64) bool {
	return seq == c.seq
}

// BeginMutation marks a record mutation in flight. It reports false when a
// mutation for the same identifier is already pending; the caller must
// then reject the operation. Mutations on distinct identifiers are
// independent.
func (c *Coordinator) BeginMutation(id string) bool {
	if c.inflight == nil {
		c.inflight = make(map[string]struct{})
	}
	if _, busy := c.inflight[id]; busy {
		return false
	}
	c.inflight[id] = struct{}{}
	return true
}

// EndMutation clears the in-flight marker. Called on every outcome.
func (c *Coordinator) EndMutation(id string) {
	delete(c.inflight, id)
}

// MutationPending reports whether a mutation for id is in flight.
func (c *Coordinator) MutationPending(id string) bool {
	_, busy := c.inflight[id]
	return busy
}
