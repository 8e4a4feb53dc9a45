package services

// frontierItem is a discovered location with its tentative distance at push time.
// The same location may be queued several times; stale entries are skipped on pop.
type frontierItem struct {
	location string
	distance float64
}

// frontier is a binary min-heap ordered by tentative distance (container/heap).
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
