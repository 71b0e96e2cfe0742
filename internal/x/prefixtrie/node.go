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

type node[ID comparable] struct {
	label string

	// not owning, nil for the root
	parent *node[ID]

	// indices[i] is the first byte of children[i].label
	indices  []byte
	children []*node[ID]

	// identifiers of the prefixes terminating exactly at this node
	ids []ID
}

func (n *node[ID]) childIndex(first byte) int {
	for i, index := range n.indices {
		if index == first {
			return i
		}
	}

	return -1
}

func (n *node[ID]) child(first byte) *node[ID] {
	if i := n.childIndex(first); i != -1 {
		return n.children[i]
	}

	return nil
}

func (n *node[ID]) addChild(label string) *node[ID] {
	child := &node[ID]{label: label, parent: n}

	n.indices = append(n.indices, label[0])
	n.children = append(n.children, child)

	return child
}

func (n *node[ID]) deleteChild(child *node[ID]) {
	i := n.childIndex(child.label[0])
	if i == -1 || n.children[i] != child {
		return
	}

	n.children = append(n.children[:i], n.children[i+1:]...)
	n.indices = append(n.indices[:i], n.indices[i+1:]...)
	child.parent = nil
}

// split inserts a new node labeled with the first pos bytes of the i-th child
// between n and that child and returns it.
func (n *node[ID]) split(i, pos int) *node[ID] {
	child := n.children[i]

	intermediate := &node[ID]{
		label:    child.label[:pos],
		parent:   n,
		indices:  []byte{child.label[pos]},
		children: []*node[ID]{child},
	}

	child.label = child.label[pos:]
	child.parent = intermediate
	n.children[i] = intermediate

	return intermediate
}

// collapse replaces n by its only child, prepending n's label to the child's one.
// n must neither be the root, nor carry ids.
func (n *node[ID]) collapse() {
	child := n.children[0]
	parent := n.parent

	child.label = n.label + child.label
	child.parent = parent
	parent.children[parent.childIndex(n.label[0])] = child

	n.parent = nil
	n.children = nil
	n.indices = nil
}
