package aggregate

// Counter counts labels and remembers the order in which each label was
// first added.
type Counter struct {
	index  map[string]int
	labels []string
	counts []int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add increments label by one.
func (c *Counter) Add(label string) {
	i, ok := c.index[label]
	if !ok {
		i = len(c.labels)
		c.index[label] = i
		c.labels = append(c.labels, label)
		c.counts = append(c.counts, 0)
	}
	c.counts[i]++
}

// Count returns the count for label, zero when unseen.
func (c *Counter) Count(label string) int {
	if i, ok := c.index[label]; ok {
		return c.counts[i]
	}
	return 0
}

// Len reports the number of distinct labels.
func (c *Counter) Len() int {
	return len(c.labels)
}

// Distribution copies the counts out as parallel sequences.
func (c *Counter) Distribution() Distribution {
	d := Distribution{
		Labels: make([]string, len(c.labels)),
		Counts: make([]int, len(c.counts)),
	}
	copy(d.Labels, c.labels)
	copy(d.Counts, c.counts)
	return d
}
