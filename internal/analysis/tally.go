package analysis

import "sort"

// ValueCount pairs a value with its frequency.
type ValueCount struct {
	Value string
	Count int
}

// tally counts string keys and remembers the order in which keys first
// appeared so that count ties sort deterministically.
type tally struct {
	index map[string]int
	items []ValueCount
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(key string) {
	if i, ok := t.index[key]; ok {
		t.items[i].Count++
		return
	}
	t.index[key] = len(t.items)
	t.items = append(t.items, ValueCount{Value: key, Count: 1})
}

func (t *tally) len() int { return len(t.items) }

// sorted returns entries by descending count, ties by first occurrence.
func (t *tally) sorted() []ValueCount {
	out := make([]ValueCount, len(t.items))
	copy(out, t.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
