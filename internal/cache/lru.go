package cache

// node is an entry in a shard's LRU list. It carries the value so that a
// shard needs a single map from key to node.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// lru is a doubly-linked list ordered from most (head) to least (tail)
// recently used. It is not thread-safe; the owning shard locks around it.
type lru[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *lru[K, V]) Len() int {
	return l.len
}

// push inserts a new node at the front and returns it.
func (l *lru[K, V]) push(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	l.linkFront(n)
	return n
}

// touch moves n to the front.
func (l *lru[K, V]) touch(n *node[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// pop removes and returns the least recently used node, or nil.
func (l *lru[K, V]) pop() *node[K, V] {
	n := l.tail
	if n != nil {
		l.unlink(n)
	}
	return n
}

func (l *lru[K, V]) linkFront(n *node[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lru[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}
