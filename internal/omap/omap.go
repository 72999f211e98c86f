// Package omap implements a generic in-memory ordered map over a red-black
// tree, giving O(log n) predecessor/successor navigation (floor, ceiling,
// lower, higher) plus bounded ascending and descending traversal.
//
// It is the navigable index the range-set package stores its coalesced
// ranges in, keyed first by lower cut and, via a re-keyed view, by upper
// cut. The tree mechanics (rotation, insert/delete fixup) are those of a
// plain pointer-based red-black tree over a generic key ordered by an
// injected [Comparator], with no subtree augmentation.
package omap

// Comparator reports the sign of a-b: negative if a<b, zero if equal,
// positive if a>b.
type Comparator[K any] func(a, b K) int

// color is the red-black tree node color.
type color bool

const (
	red   color = false
	black color = true
)

// node is a red-black tree node holding one key/value pair.
type node[K, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
	parent      *node[K, V]
	color       color
}

// Entry is a key/value pair returned by navigation and traversal methods.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Map is a red-black tree ordered map. The zero value is not usable; build
// one with [New].
type Map[K, V any] struct {
	root *node[K, V]
	size int
	cmp  Comparator[K]
}

// New creates an empty Map ordered by cmp.
func New[K, V any](cmp Comparator[K]) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.findNode(key)
	if n == nil {
		var zero V

		return zero, false
	}

	return n.val, true
}

// findNode returns the node with the given key, or nil.
func (m *Map[K, V]) findNode(key K) *node[K, V] {
	cur := m.root
	for cur != nil {
		c := m.cmp(key, cur.key)

		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil
}

// Put inserts or overwrites the value stored under key, returning the
// previous value if the key already existed.
func (m *Map[K, V]) Put(key K, val V) (V, bool) {
	if m.root == nil {
		m.root = &node[K, V]{key: key, val: val, color: black}
		m.size++

		var zero V

		return zero, false
	}

	cur := m.root
	for {
		c := m.cmp(key, cur.key)

		switch {
		case c == 0:
			old := cur.val
			cur.val = val

			return old, true
		case c < 0:
			if cur.left == nil {
				cur.left = &node[K, V]{key: key, val: val, color: red, parent: cur}
				m.insertFixup(cur.left)
				m.size++

				var zero V

				return zero, false
			}

			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &node[K, V]{key: key, val: val, color: red, parent: cur}
				m.insertFixup(cur.right)
				m.size++

				var zero V

				return zero, false
			}

			cur = cur.right
		}
	}
}

// Delete removes the entry stored under key, returning the removed value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	n := m.findNode(key)
	if n == nil {
		var zero V

		return zero, false
	}

	val := n.val
	m.deleteNode(n)
	m.size--

	return val, true
}

// Clone returns a shallow copy of m: keys and values are not deep-copied,
// but mutating the clone never affects m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{cmp: m.cmp, size: m.size}
	clone.root = cloneSubtree[K, V](m.root, nil)

	return clone
}

func cloneSubtree[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	c := &node[K, V]{key: n.key, val: n.val, color: n.color, parent: parent}
	c.left = cloneSubtree(n.left, c)
	c.right = cloneSubtree(n.right, c)

	return c
}
