package steiner

// pool is an arena of candidates. Slots are never reused; removal only
// clears the live flag, so indices stay valid for the whole call.
type pool[T any] struct {
	items []T
	live  []bool
	size  int
}

func (p *pool[T]) add(x T) int {
	p.items = append(p.items, x)
	p.live = append(p.live, true)
	p.size++

	return len(p.items) - 1
}

func (p *pool[T]) remove(i int) {
	if !p.live[i] {
		panic("steiner: pool: remove of a dead slot")
	}
	p.live[i] = false
	p.size--
}

func (p *pool[T]) len() int { return p.size }

func (p *pool[T]) get(i int) *T { return &p.items[i] }

// alive returns the live slot indices in insertion order.
func (p *pool[T]) alive() []int {
	out := make([]int, 0, p.size)
	for i, ok := range p.live {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
