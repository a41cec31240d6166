package steiner

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
)

// Zelikovsky is the 11/6 triple-contraction approximation. Triples of
// terminals with a common center are contracted into the terminal spanning
// tree while they pay for themselves; the centers become Steiner points of
// the final reconstruction.
//
// Generation, reducing, scoring, save structure and pass are chosen through
// Options. A value is not safe for concurrent calls.
type Zelikovsky struct {
	opts  Options
	stats Stats
}

// NewZelikovsky returns a solver configured by opts over DefaultOptions.
func NewZelikovsky(opts ...Option) *Zelikovsky {
	return &Zelikovsky{opts: newOptions(opts)}
}

// Stats returns the diagnostics of the most recent Call.
func (a *Zelikovsky) Stats() Stats { return a.stats }

// Call approximates a minimum Steiner tree of g spanning terminals; see
// RZLoss.Call for the contract. With fewer than three terminals nothing is
// contracted and the result comes from the reconstruction alone.
func (a *Zelikovsky) Call(g *core.Graph, terminals []string, isTerminal map[string]bool) (int64, *core.Graph, error) {
	start := time.Now()
	a.stats = Stats{}
	defer func() { a.stats.Elapsed = time.Since(start) }()

	if err := a.opts.validate(); err != nil {
		return 0, nil, err
	}
	p, err := newProblem(g, terminals, isTerminal)
	if err != nil {
		return 0, nil, err
	}
	log := a.opts.logger()
	b := newBudget(a.opts.TimeLimit, log)
	rows := newRowCache(p.inst)
	tg := newTerminalGraph(p.inst, p.terminals, rows.d)

	if len(p.terminals) >= 3 {
		tree, err := tg.spanningTree()
		if err != nil {
			return 0, nil, fmt.Errorf("zelikovsky: %w", err)
		}
		gen, con := newSavers(a.opts.SaveCalculation, tree)
		e := &tripleEngine{
			p:     p,
			rows:  rows,
			tg:    tg,
			gen:   gen,
			con:   con,
			opts:  a.opts,
			b:     b,
			log:   log,
			stats: &a.stats,

			weight: tree.weight(),
		}
		e.run()
	}
	a.stats.CoreTime = time.Since(start)

	fallback := time.Now()
	w, out, err := reconstruct(p, tg, rows, log)
	a.stats.FallbackTime = time.Since(fallback)
	if err != nil {
		return 0, nil, err
	}

	return w, out, nil
}
