package steiner

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
)

// NextTuple and FirstTuple expose the subset enumerator.
var (
	NextTuple  = nextTuple
	FirstTuple = firstTuple
)

// Oracle exposes the restricted distance oracle over vertex IDs.
type Oracle struct {
	p  *problem
	dm *distanceMatrix
}

// NewOracle runs the oracle for g with the given terminals.
func NewOracle(g *core.Graph, terminals []string) (*Oracle, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.DiscardHandler)
	dm := computeAllPairs(p.inst, p.isTerm, newBudget(time.Hour, log), log)

	return &Oracle{p: p, dm: dm}, nil
}

// Dist returns the restricted distance of u and v.
func (o *Oracle) Dist(u, v string) int64 {
	return o.dm.d(o.p.inst.index[u], o.p.inst.index[v])
}

// Path returns the edge IDs and the vertex sequence of the u–v path.
func (o *Oracle) Path(u, v string) (edges, vertices []string) {
	hops := o.dm.path(o.p.inst.index[u], o.p.inst.index[v])
	for i, h := range hops {
		if i == 0 {
			vertices = append(vertices, o.p.inst.ids[h.u])
		}
		vertices = append(vertices, o.p.inst.ids[h.v])
		edges = append(edges, h.edge)
	}

	return edges, vertices
}

// SaveNames lists the save structures compared by SaveWeights.
var SaveNames = []string{"staticTree", "staticLCATree", "dynamicLCATree"}

// SaveWeights builds every save structure over the terminal spanning tree
// of g, then applies the contractions one by one (each a triple of terminal
// IDs). For each structure it returns, per step, the save weight of every
// terminal pair in caller order and the gain of every terminal triple.
func SaveWeights(g *core.Graph, terminals []string, contractions [][3]string) (map[string][][]int64, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return nil, err
	}
	rows := newRowCache(p.inst)
	tree, err := newTerminalGraph(p.inst, p.terminals, rows.d).spanningTree()
	if err != nil {
		return nil, err
	}
	savers := []saver{
		newStaticTree(tree.clone()),
		newStaticLCATree(tree.clone()),
		newDynamicLCATree(tree.clone()),
	}

	snapshot := func(s saver) []int64 {
		var out []int64
		ts := p.terminals
		for i := range ts {
			for j := i + 1; j < len(ts); j++ {
				_, w := s.query(ts[i], ts[j])
				out = append(out, w)
			}
		}
		for i := range ts {
			for j := i + 1; j < len(ts); j++ {
				for k := j + 1; k < len(ts); k++ {
					out = append(out, s.gain(ts[i], ts[j], ts[k]))
				}
			}
		}

		return out
	}

	res := make(map[string][][]int64, len(savers))
	for i, s := range savers {
		name := SaveNames[i]
		res[name] = append(res[name], snapshot(s))
		for _, c := range contractions {
			s.update(triple{s0: p.inst.index[c[0]], s1: p.inst.index[c[1]], s2: p.inst.index[c[2]]})
			res[name] = append(res[name], snapshot(s))
		}
	}

	return res, nil
}

// AlreadyContracted reports, for the dynamic structure after applying
// contractions, whether query counts as contracted.
func AlreadyContracted(g *core.Graph, terminals []string, contractions [][3]string, query [3]string) (bool, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return false, err
	}
	rows := newRowCache(p.inst)
	tree, err := newTerminalGraph(p.inst, p.terminals, rows.d).spanningTree()
	if err != nil {
		return false, err
	}
	s := newDynamicLCATree(tree)
	id := func(c [3]string) triple {
		return triple{s0: p.inst.index[c[0]], s1: p.inst.index[c[1]], s2: p.inst.index[c[2]]}
	}
	for _, c := range contractions {
		s.update(id(c))
	}

	return s.alreadyContracted(id(query)), nil
}

// stepClock is a clock that stands still for the budget start and the
// first checks calls, then jumps past any deadline.
func stepClock(checks int) func() time.Time {
	t0 := time.Unix(0, 0)
	calls := -1

	return func() time.Time {
		calls++
		if calls <= checks {
			return t0
		}

		return t0.Add(24 * time.Hour)
	}
}

// GenerateComponents runs full-component generation up to size k with a
// budget that expires after the given number of checks, and returns how
// many components were kept.
func GenerateComponents(g *core.Graph, terminals []string, k, checks int) (int64, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return 0, err
	}
	log := slog.New(slog.DiscardHandler)
	dm := computeAllPairs(p.inst, p.isTerm, newBudget(time.Hour, log), log)
	tree, err := newTerminalGraph(p.inst, p.terminals, dm.d).spanningTree()
	if err != nil {
		return 0, err
	}
	var st Stats
	b := newBudgetClock(time.Hour, log, stepClock(checks))
	newComponentBuilder(p, dm, newStaticTree(tree)).generate(k, b, &pool[fullComponent]{}, &st, log)

	return st.Generated, nil
}

// GenerateTriples runs triple generation with default options and the given
// strategy under a budget that expires after the given number of checks,
// and returns how many triples were kept.
func GenerateTriples(g *core.Graph, terminals []string, gen TripleGeneration, checks int) (int64, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return 0, err
	}
	log := slog.New(slog.DiscardHandler)
	opts := DefaultOptions()
	opts.TripleGeneration = gen
	rows := newRowCache(p.inst)
	tg := newTerminalGraph(p.inst, p.terminals, rows.d)
	tree, err := tg.spanningTree()
	if err != nil {
		return 0, err
	}
	genSave, conSave := newSavers(opts.SaveCalculation, tree)
	var st Stats
	e := &tripleEngine{
		p:     p,
		rows:  rows,
		tg:    tg,
		gen:   genSave,
		con:   conSave,
		opts:  opts,
		b:     newBudgetClock(time.Hour, log, stepClock(checks)),
		log:   log,
		stats: &st,
	}
	e.generate()

	return st.Generated, nil
}
