package ledger

// history keeps transactions in insertion order. With a positive limit it
// holds at most limit entries and evicts the oldest on append; a limit of
// zero keeps everything and leaves truncation to readers.
type history struct {
	limit   int
	entries []Transaction
}

func newHistory(limit int) *history {
	if limit < 0 {
		limit = 0
	}
	capacity := limit
	if capacity == 0 {
		capacity = 8
	}
	return &history{
		limit:   limit,
		entries: make([]Transaction, 0, capacity),
	}
}

func (h *history) append(tx Transaction) {
	if h.limit > 0 && len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = tx
		return
	}
	h.entries = append(h.entries, tx)
}

// recent returns a fresh slice with the newest count entries, oldest first.
func (h *history) recent(count int) []Transaction {
	if count <= 0 || len(h.entries) == 0 {
		return []Transaction{}
	}
	if count > len(h.entries) {
		count = len(h.entries)
	}

	out := make([]Transaction, count)
	copy(out, h.entries[len(h.entries)-count:])
	return out
}

func (h *history) len() int {
	return len(h.entries)
}
