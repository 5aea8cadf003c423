package mines

// celltodo is a FIFO of grid indices linked through next. An index may be
// queued at most once.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(n int) *celltodo {
	return &celltodo{next: make([]int, n), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (i int, ok bool) {
	if std.head < 0 {
		return -1, false
	}
	i = std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}
