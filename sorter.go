package matchsort

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/lexkit/matchsort/rank"
)

// Sorter ranks, filters, and orders items of type T against a query. A
// Sorter is configured once and can serve any number of Sort calls; calls
// share no mutable state, so a Sorter is safe for concurrent use.
type Sorter[T any] struct {
	keys           []Key[T]
	threshold      rank.Ranking
	keepDiacritics bool
	baseSort       func(a, b RankedItem[T]) int
	sorter         func([]RankedItem[T]) []RankedItem[T]
	pool           *ants.Pool
	logger         *slog.Logger
}

// Option configures a Sorter.
type Option[T any] func(*Sorter[T]) error

// WithKeys sets the extraction keys. With no keys, items are ranked
// directly through their string view (see MatchTexter).
func WithKeys[T any](keys ...Key[T]) Option[T] {
	return func(s *Sorter[T]) error {
		for _, key := range keys {
			if key.extract == nil {
				return ErrNilKeyExtractor
			}
		}
		s.keys = keys
		return nil
	}
}

// WithThreshold sets the minimum ranking an item must reach to be
// included. Default is rank.Matches(1.0), the lowest valid fuzzy score,
// which admits every matching item. A rank.NoMatch threshold admits
// everything; rank.CaseSensitiveEqual admits only exact matches.
func WithThreshold[T any](r rank.Ranking) Option[T] {
	return func(s *Sorter[T]) error {
		s.threshold = r
		return nil
	}
}

// WithKeepDiacritics preserves combining marks during comparison.
// Default is false: diacritics are stripped, so "cafe" matches "café".
func WithKeepDiacritics[T any](keep bool) Option[T] {
	return func(s *Sorter[T]) error {
		s.keepDiacritics = keep
		return nil
	}
}

// WithBaseSort sets the tiebreak used when two items have identical rank
// and key index. Default is byte-wise comparison of the winning values.
// A nil fn restores the default.
func WithBaseSort[T any](fn func(a, b RankedItem[T]) int) Option[T] {
	return func(s *Sorter[T]) error {
		s.baseSort = fn
		return nil
	}
}

// WithSorter replaces the entire sort phase. The function receives the
// filtered ranked items and its returned order is used verbatim.
func WithSorter[T any](fn func([]RankedItem[T]) []RankedItem[T]) Option[T] {
	return func(s *Sorter[T]) error {
		s.sorter = fn
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Sorter[T]) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithParallelism runs the rank-and-filter phase on a worker pool of the
// given size. Sizes below 2 keep the sequential path. Output order is
// identical to the sequential path; only throughput changes. Call Release
// when the Sorter is no longer needed.
func WithParallelism[T any](size int) Option[T] {
	return func(s *Sorter[T]) error {
		if s.pool != nil {
			s.pool.Release()
			s.pool = nil
		}
		if size < 2 {
			return nil
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// New creates a Sorter with the given options.
func New[T any](opts ...Option[T]) (*Sorter[T], error) {
	s := newDefault[T]()
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}
	return s, nil
}

func newDefault[T any]() *Sorter[T] {
	return &Sorter[T]{
		threshold: rank.Matches(1.0),
		logger:    slog.Default(),
	}
}

// Release frees the worker pool, if any. Safe to call more than once.
func (s *Sorter[T]) Release() {
	if s.pool != nil {
		s.pool.Release()
		s.pool = nil
	}
}

// Sort ranks every item against query, drops items below their effective
// threshold, and returns the rest best match first. Items tied on rank,
// key index, and tiebreak keep their input order. The input slice is not
// modified, and no item appears in the output more than once.
func (s *Sorter[T]) Sort(items []T, query string) []T {
	ranked := s.rankAndFilter(items, query)

	if s.sorter != nil {
		ranked = s.sorter(ranked)
	} else {
		tiebreak := s.baseSort
		if tiebreak == nil {
			tiebreak = ByRankedValue[T]
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return CompareRanked(ranked[i], ranked[j], tiebreak) < 0
		})
	}

	out := make([]T, len(ranked))
	for i, r := range ranked {
		out[i] = r.Item
	}
	return out
}

func (s *Sorter[T]) rankAndFilter(items []T, query string) []RankedItem[T] {
	q := rank.NewQuery(query, s.keepDiacritics)

	if s.pool != nil {
		return s.rankParallel(q, items)
	}

	ranked := make([]RankedItem[T], 0, len(items))
	for i, item := range items {
		if ri, ok := s.rankItem(q, item, i); ok {
			ranked = append(ranked, ri)
		}
	}
	return ranked
}

// rankParallel ranks items concurrently into index-addressed slots, then
// compacts them in input order so stability and keyIndex tie-breaking are
// unaffected by scheduling.
func (s *Sorter[T]) rankParallel(q *rank.Query, items []T) []RankedItem[T] {
	results := make([]RankedItem[T], len(items))
	keep := make([]bool, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			if ri, ok := s.rankItem(q, items[i], i); ok {
				results[i] = ri
				keep[i] = true
			}
		})
		if err != nil {
			// Pool unavailable: rank this item inline.
			if ri, ok := s.rankItem(q, items[i], i); ok {
				results[i] = ri
				keep[i] = true
			}
			wg.Done()
		}
	}
	wg.Wait()

	ranked := make([]RankedItem[T], 0, len(items))
	for i := range items {
		if keep[i] {
			ranked = append(ranked, results[i])
		}
	}
	return ranked
}

// rankItem scores one item and applies its effective threshold: the
// winning key's override when set, else the global threshold.
func (s *Sorter[T]) rankItem(q *rank.Query, item T, index int) (RankedItem[T], bool) {
	var info RankingInfo
	if len(s.keys) == 0 {
		text, ok := matchText(item)
		if !ok {
			s.logger.Debug("item provides no matchable text",
				"index", index, "type", fmt.Sprintf("%T", item))
			info = RankingInfo{Rank: rank.NoMatch}
		} else {
			info = RankingInfo{Rank: q.Rank(text), RankedValue: text}
		}
	} else {
		info = highestRanking(item, s.keys, q)
	}

	threshold := s.threshold
	if info.KeyThreshold != nil {
		threshold = *info.KeyThreshold
	}
	if info.Rank.Compare(threshold) < 0 {
		return RankedItem[T]{}, false
	}

	return RankedItem[T]{
		Item:         item,
		Index:        index,
		Rank:         info.Rank,
		RankedValue:  info.RankedValue,
		KeyIndex:     info.KeyIndex,
		KeyThreshold: info.KeyThreshold,
	}, true
}

// Strings filters and orders a list of plain strings with default
// options, the common autocomplete case.
func Strings(items []string, query string) []string {
	return newDefault[string]().Sort(items, query)
}
