package store

// listeners runs change callbacks in subscription order.
type listeners struct {
	next  int
	order []int
	funcs map[int]func()
}

func (l *listeners) add(fn func()) func() {
	if l.funcs == nil {
		l.funcs = make(map[int]func())
	}
	id := l.next
	l.next++
	l.funcs[id] = fn
	l.order = append(l.order, id)

	return func() {
		delete(l.funcs, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners) notify() {
	for _, id := range append([]int(nil), l.order...) {
		if fn, ok := l.funcs[id]; ok {
			fn()
		}
	}
}
