package record

import "sync"

// ResultSet accumulates deduplicated records across queries. Insertion order
// is preserved. Safe for concurrent use; the dedup-and-insert step is the
// one serialization point a multi-session runner would need.
type ResultSet struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	records []Business
}

// NewResultSet returns an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{seen: make(map[string]struct{})}
}

// Add inserts a record unless an identical identity (see Business.DedupKey)
// is already present. It reports whether the record was kept.
func (s *ResultSet) Add(b Business) bool {
	key := b.DedupKey()

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != "" {
		if _, dup := s.seen[key]; dup {
			return false
		}
		s.seen[key] = struct{}{}
	}
	s.records = append(s.records, b)
	return true
}

// Len returns the number of records held.
func (s *ResultSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a copy of the accumulated records in insertion order.
func (s *ResultSet) Records() []Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Business, len(s.records))
	copy(out, s.records)
	return out
}

// Outcome summarizes how one query fared.
type Outcome struct {
	Query      string
	Discovered int
	Fetched    int
	Failed     int
	Merged     int
	Err        error
}

// Summary aggregates outcomes for end-of-run reporting.
type Summary struct {
	Queries    int
	Discovered int
	Fetched    int
	Failed     int
	Unique     int
}

// Summarize folds per-query outcomes into run totals.
func Summarize(outcomes []Outcome, set *ResultSet) Summary {
	s := Summary{Queries: len(outcomes)}
	for _, o := range outcomes {
		s.Discovered += o.Discovered
		s.Fetched += o.Fetched
		s.Failed += o.Failed
	}
	if set != nil {
		s.Unique = set.Len()
	}
	return s
}
