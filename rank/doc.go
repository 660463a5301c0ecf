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


// Package rank classifies how well a candidate string matches a search
// query using an eight-tier ranking system.
//
// Tiers, best to worst:
//   - CaseSensitiveEqual: exact byte-for-byte match
//   - Equal: case-insensitive full match
//   - StartsWith: candidate starts with the query
//   - WordStartsWith: a space-delimited word starts with the query
//   - Contains: query appears as a substring
//   - Acronym: query matches the candidate's word initials
//   - Matches(score): fuzzy in-order character match, score in (1.0, 2.0]
//   - NoMatch: no match at all
//
// Match performs a single classification. When ranking many candidates
// against one query, build a Query once and call its Rank method to avoid
// repeating query preparation per candidate.
package rank
