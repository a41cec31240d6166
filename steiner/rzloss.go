package steiner

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
)

// RZLoss is the loss-contracting full-component approximation of Robins and
// Zelikovsky. Components of up to MaxComponentSize terminals are generated
// once; each round contracts the component with the best ratio of net gain
// to loss until no component improves the working tree.
//
// A value is not safe for concurrent calls.
type RZLoss struct {
	opts  Options
	stats Stats
}

// NewRZLoss returns a solver configured by opts over DefaultOptions.
func NewRZLoss(opts ...Option) *RZLoss {
	return &RZLoss{opts: newOptions(opts)}
}

// Stats returns the diagnostics of the most recent Call.
func (a *RZLoss) Stats() Stats { return a.stats }

// Call approximates a minimum Steiner tree of g spanning terminals.
// isTerminal may be nil; when set it must flag exactly the terminals.
//
// Returns the tree weight and the tree as a new graph whose edges keep
// their IDs in g.
//
// Errors: ErrBadOption, ErrComponentSize (MaxComponentSize exceeds the
// number of terminals), and the validation errors of the input.
func (a *RZLoss) Call(g *core.Graph, terminals []string, isTerminal map[string]bool) (int64, *core.Graph, error) {
	start := time.Now()
	a.stats = Stats{}
	defer func() { a.stats.Elapsed = time.Since(start) }()

	// 1) Validate
	if err := a.opts.validate(); err != nil {
		return 0, nil, err
	}
	if k := a.opts.MaxComponentSize; k > len(terminals) {
		return 0, nil, fmt.Errorf("%w: k=%d, terminals=%d", ErrComponentSize, k, len(terminals))
	}
	p, err := newProblem(g, terminals, isTerminal)
	if err != nil {
		return 0, nil, err
	}
	log := a.opts.logger()
	b := newBudget(a.opts.TimeLimit, log)

	// 2) Oracle and initial tree
	dm := computeAllPairs(p.inst, p.isTerm, b, log)
	tg := newTerminalGraph(p.inst, p.terminals, dm.d)
	tree, err := tg.spanningTree()
	switch {
	case err == nil:
		a.contract(p, dm, tg, tree, b, log)
	case isDisconnected(err):
		log.Warn("terminal tree incomplete, skipping contraction", slog.String("reason", err.Error()))
	default:
		return 0, nil, err
	}
	a.stats.CoreTime = time.Since(start)

	// 3) Reconstruct
	fallback := time.Now()
	w, out, err := reconstruct(p, tg, newRowCache(p.inst), log)
	a.stats.FallbackTime = time.Since(fallback)
	if err != nil {
		return 0, nil, err
	}

	return w, out, nil
}

func (a *RZLoss) contract(p *problem, dm *distanceMatrix, tg *terminalGraph, tree *workingTree, b *budget, log *slog.Logger) {
	log.Debug("terminal tree", slog.Int64("tree", tree.weight()))
	save := newStaticTree(tree)
	components := &pool[fullComponent]{}
	newComponentBuilder(p, dm, save).generate(a.opts.MaxComponentSize, b, components, &a.stats, log)

	for components.len() > 0 {
		if b.expired("contraction") {
			return
		}
		i, r := a.findMaxComponent(components, save)
		if i < 0 || r <= 0 {
			return
		}
		c := components.get(i)
		if err := contractComponent(c, tg, tree); err != nil {
			panic(fmt.Sprintf("steiner: contraction: %v", err))
		}
		a.stats.Contracted++
		log.Debug("contraction",
			slog.Int("terminals", len(c.terminals)),
			slog.Int64("cost", c.cost),
			slog.Int64("loss", c.lossW),
			slog.Float64("ratio", r),
			slog.Int64("tree", tree.weight()))
	}
}

// findMaxComponent rebuilds the save table and returns the live component
// with the largest ratio of net gain to loss, removing it from the pool.
// Components without net gain are removed during the scan. It returns -1
// when nothing is left.
func (a *RZLoss) findMaxComponent(components *pool[fullComponent], save *staticTree) (int, float64) {
	save.rebuild()
	best, bestR := -1, 0.0
	var net int64
	var r float64
	for _, i := range components.alive() {
		a.stats.LookUps++
		c := components.get(i)
		if net = componentGain(c, save) - c.cost; net <= 0 {
			components.remove(i)
			continue
		}
		if c.lossW == 0 {
			r = math.Inf(1)
		} else {
			r = float64(net) / float64(c.lossW)
		}
		if best < 0 || r > bestR {
			best, bestR = i, r
		}
	}
	if best >= 0 {
		components.remove(best)
	}

	return best, bestR
}

// contractComponent promotes the nodes of c and merges its non-loss edges,
// mapped onto the paired terminals, into the working tree.
func contractComponent(c *fullComponent, tg *terminalGraph, tree *workingTree) error {
	for _, v := range c.nodes {
		tg.promote(v)
	}
	var pu, pv int
	for i, h := range c.edges {
		if c.loss[i] {
			continue
		}
		pu, pv = c.paired[h.u], c.paired[h.v]
		tree.mergeMin(pu, pv, h.w)
		tg.merge(pu, pv, h.w)
	}

	return tree.minimize()
}
