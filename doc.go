// Copyright 2026 Lexkit Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package matchsort filters and orders in-memory candidate lists by how
// well each candidate matches a search query, for autocomplete, command
// palettes, and other search-as-you-type interfaces.
//
// Every candidate is classified into one of the eight ranking tiers of the
// rank package, candidates below a threshold are dropped, and the rest are
// returned best match first. Items are either string-like (no-keys mode)
// or arbitrary values paired with Key extractors that pull one or more
// matchable strings out of each item.
//
// Basic usage:
//
//	matchsort.Strings([]string{"apple", "banana", "grape"}, "ap")
//	// -> ["apple", "grape"]
//
// Struct items with keys:
//
//	s, err := matchsort.New(
//		matchsort.WithKeys(
//			matchsort.KeyFunc(func(u User) string { return u.Name }),
//			matchsort.KeyFunc(func(u User) string { return u.Email }),
//		),
//	)
//	...
//	hits := s.Sort(users, "alice")
//
// Ranking a large list can run on a worker pool via WithParallelism; the
// output order is identical to the sequential path.
package matchsort
