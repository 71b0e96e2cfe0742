// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package prefixtrie

import (
	"slices"
	"strings"
)

// Trie is a compressed prefix tree mapping registered prefixes to the identifiers
// they have been registered with. Identifiers are unique across the whole trie.
//
// A Trie is not safe for concurrent use. Add and Remove must be serialized with
// each other and with Match by the caller.
type Trie[ID comparable] struct {
	root  *node[ID]
	index map[ID]*node[ID]

	compact bool
}

func New[ID comparable](opts ...Option[ID]) *Trie[ID] {
	trie := &Trie[ID]{
		root:    &node[ID]{},
		index:   make(map[ID]*node[ID]),
		compact: true,
	}

	for _, opt := range opts {
		opt(trie)
	}

	return trie
}

// Add registers prefix under id. It returns false and leaves the trie untouched
// if id is already registered, regardless of the prefix it has been registered for.
func (t *Trie[ID]) Add(prefix string, id ID) bool {
	if _, known := t.index[id]; known {
		return false
	}

	insertionPoint := t.root
	remainder := prefix

	for len(remainder) != 0 {
		idx := insertionPoint.childIndex(remainder[0])
		if idx == -1 {
			break
		}

		child := insertionPoint.children[idx]

		// at least 1, as the first bytes are equal
		common := commonPrefixLen(remainder, child.label)
		if common < len(child.label) {
			insertionPoint = insertionPoint.split(idx, common)
			remainder = remainder[common:]

			break
		}

		insertionPoint = child
		remainder = remainder[common:]
	}

	if len(remainder) != 0 {
		insertionPoint = insertionPoint.addChild(remainder)
	}

	insertionPoint.ids = append(insertionPoint.ids, id)
	t.index[id] = insertionPoint

	return true
}

// Match returns the identifiers of all registered prefixes, query starts with.
// The order of the returned identifiers carries no meaning. Match returns nil if
// nothing matches.
func (t *Trie[ID]) Match(query string) []ID {
	var matches []ID

	for current := t.root; current != nil; {
		if !strings.HasPrefix(query, current.label) {
			break
		}

		matches = append(matches, current.ids...)
		query = query[len(current.label):]

		if len(query) == 0 {
			break
		}

		current = current.child(query[0])
	}

	return matches
}

// Remove unregisters id. It returns false if id is not registered.
func (t *Trie[ID]) Remove(id ID) bool {
	owner, known := t.index[id]
	if !known {
		return false
	}

	pos := slices.Index(owner.ids, id)
	if pos == -1 {
		return false
	}

	owner.ids = slices.Delete(owner.ids, pos, pos+1)
	delete(t.index, id)

	if t.compact {
		t.compactFrom(owner)
	}

	return true
}

// Contains reports whether id is registered.
func (t *Trie[ID]) Contains(id ID) bool {
	_, known := t.index[id]

	return known
}

// Prefix returns the prefix id has been registered with.
func (t *Trie[ID]) Prefix(id ID) (string, bool) {
	owner, known := t.index[id]
	if !known {
		return "", false
	}

	var labels []string
	for current := owner; current != nil; current = current.parent {
		labels = append(labels, current.label)
	}

	slices.Reverse(labels)

	return strings.Join(labels, ""), true
}

// Len returns the number of registered identifiers.
func (t *Trie[ID]) Len() int { return len(t.index) }

// compactFrom removes nodes which neither terminate a prefix nor have children,
// walking up from n, and merges a node left with a single child and no ids into
// that child.
func (t *Trie[ID]) compactFrom(n *node[ID]) {
	for n != t.root && len(n.ids) == 0 {
		switch len(n.children) {
		case 0:
			parent := n.parent
			parent.deleteChild(n)
			n = parent
		case 1:
			n.collapse()

			return
		default:
			return
		}
	}
}
