package engine

const (
	DefaultDepth = 6
	MaxDepth     = 32
)

type Options struct {
	// Depth is the search depth in plies. Read once at the start of each search.
	Depth int
}

func NewOptions() Options {
	return Options{
		Depth: DefaultDepth,
	}
}

func (o Options) depth(override int) int {
	var d = o.Depth
	if override > 0 {
		d = override
	}
	return max(1, min(d, MaxDepth))
}
