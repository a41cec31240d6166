package steiner

import (
	"log/slog"
	"math"
	"sort"
)

// tripleEngine runs triple generation and contraction for one call.
type tripleEngine struct {
	p     *problem
	rows  *rowCache
	tg    *terminalGraph
	gen   saver // generation gains
	con   saver // contraction state
	opts  Options
	b     *budget
	log   *slog.Logger
	stats *Stats

	weight int64 // working tree weight, lowered by every contraction
}

func (e *tripleEngine) reducing() bool { return e.opts.TripleReducing == ReducingOn }

// win scores a gain against a cost. Relative scoring maps 0/0 to 0 and a
// positive gain at zero cost to +Inf.
func (e *tripleEngine) win(gain, cost int64) float64 {
	if e.opts.WinCalculation == WinRelative {
		switch {
		case cost == 0 && gain == 0:
			return 0
		case cost == 0:
			return math.Inf(1)
		}

		return float64(gain) / float64(cost)
	}

	return float64(gain - cost)
}

func (e *tripleEngine) run() {
	e.log.Debug("terminal tree", slog.Int64("tree", e.weight))
	if e.opts.TripleGeneration == GenerationOnDemand {
		e.onDemand()
		return
	}
	triples, maxIdx := e.generate()
	e.log.Debug("generation done", slog.Int("pool", triples.len()), slog.Int64("generated", e.stats.Generated))
	if maxIdx >= 0 {
		e.contractTriple(*triples.get(maxIdx))
		triples.remove(maxIdx)
	}
	if e.opts.Pass == PassOne {
		e.onePass(triples)
	} else {
		e.multiPass(triples)
	}
}

// generate enumerates every terminal triple in rank order and returns the
// kept triples with the index of the one with the largest positive win.
// The budget is checked for every pair (i, j).
func (e *tripleEngine) generate() (*pool[triple], int) {
	terms := e.p.terminals
	var regions [][]int
	if e.opts.TripleGeneration == GenerationVoronoi {
		regions = voronoiRegions(e.p.inst.n(), terms, e.rows)
	}

	triples := &pool[triple]{}
	maxIdx, maxWin := -1, 0.0
	var i, j, l, center int
	var gain, cost int64
	var w float64
outer:
	for i = 0; i < len(terms); i++ {
		for j = i + 1; j < len(terms); j++ {
			if e.b.expired("triple generation") {
				break outer
			}
			for l = j + 1; l < len(terms); l++ {
				gain = e.gen.gain(terms[i], terms[j], terms[l])
				if regions != nil {
					if e.reducing() && gain <= 0 {
						continue
					}
					center, cost = e.center(terms[i], terms[j], terms[l], regions[i], regions[j], regions[l])
				} else {
					center, cost = e.center(terms[i], terms[j], terms[l])
				}
				if center < 0 {
					continue
				}
				if w = e.win(gain, cost); e.reducing() && w <= 0 {
					continue
				}
				idx := triples.add(triple{s0: terms[i], s1: terms[j], s2: terms[l], center: center, cost: cost, gain: gain})
				e.stats.Generated++
				if w > maxWin {
					maxIdx, maxWin = idx, w
				}
			}
		}
	}

	return triples, maxIdx
}

// center returns the vertex minimizing the summed distance to s0, s1 and
// s2 and that sum. Without candidate lists every vertex is searched. It
// returns -1 if no candidate reaches all three.
func (e *tripleEngine) center(s0, s1, s2 int, candidates ...[]int) (int, int64) {
	d0, d1, d2 := e.rows.get(s0).dist, e.rows.get(s1).dist, e.rows.get(s2).dist
	best, bestC := -1, Inf
	try := func(v int) {
		if c := addSat(addSat(d0[v], d1[v]), d2[v]); c < bestC {
			best, bestC = v, c
		}
	}
	if len(candidates) == 0 {
		for v := 0; v < e.p.inst.n(); v++ {
			try(v)
		}
	}
	for _, region := range candidates {
		for _, v := range region {
			try(v)
		}
	}

	return best, bestC
}

// multiPass re-scores the whole pool every round and contracts the best
// triple while it has a positive win.
func (e *tripleEngine) multiPass(triples *pool[triple]) {
	var best int
	var win, tmp float64
	for triples.len() > 0 {
		if e.b.expired("contraction") {
			return
		}
		best, win = -1, 0
		for _, i := range triples.alive() {
			e.stats.LookUps++
			t := triples.get(i)
			if e.reducing() && e.con.alreadyContracted(*t) {
				triples.remove(i)
				continue
			}
			tmp = e.win(e.con.gain(t.s0, t.s1, t.s2), t.cost)
			switch {
			case win < tmp:
				best, win = i, tmp
			case e.reducing() && tmp <= 0:
				triples.remove(i)
			}
		}
		if win <= 0 {
			return
		}
		e.contractTriple(*triples.get(best))
		if e.reducing() {
			triples.remove(best)
		}
	}
}

// onePass sorts the pool once by descending generation gain, then by
// ascending cost, and contracts every triple whose current win is positive.
func (e *tripleEngine) onePass(triples *pool[triple]) {
	order := triples.alive()
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := triples.get(order[a]), triples.get(order[b])
		if ta.gain != tb.gain {
			return ta.gain > tb.gain
		}

		return ta.cost < tb.cost
	})
	for _, i := range order {
		if e.b.expired("contraction") {
			return
		}
		e.stats.LookUps++
		t := triples.get(i)
		if e.win(e.con.gain(t.s0, t.s1, t.s2), t.cost) > 0 {
			e.contractTriple(*t)
		}
		triples.remove(i)
	}
}

// onDemand builds one triple per non-terminal each round: the nearest
// terminal s0, the terminal s1 with the largest save to s0 net of its
// distance, and the third terminal with the best win. The best positive
// triple of the round is contracted.
func (e *tripleEngine) onDemand() {
	terms := e.p.terminals
	n := e.p.inst.n()
	var u, s0, s1 int
	var d0, d1, dv, sw, net, bestNet, w0, save1W, save2W, gain, cost int64
	var w float64
	var save1, e0 treeEdge
	for {
		if e.b.expired("contraction") {
			return
		}
		var best triple
		found, bestWin := false, 0.0
		for u = 0; u < n; u++ {
			if e.p.isTerm[u] {
				continue
			}
			e.stats.LookUps++
			s0, d0 = -1, Inf
			for _, t := range terms {
				if dv = e.rows.d(t, u); dv < d0 {
					s0, d0 = t, dv
				}
			}
			if s0 < 0 {
				continue
			}
			s1, bestNet = -1, 0
			for _, v := range terms {
				if v == s0 {
					continue
				}
				if dv = e.rows.d(v, u); dv == Inf {
					continue
				}
				_, sw = e.con.query(v, s0)
				if net = sw - dv; s1 < 0 || net > bestNet {
					s1, bestNet = v, net
				}
			}
			if s1 < 0 {
				continue
			}
			save1, save1W = e.con.query(s0, s1)
			d1 = e.rows.d(s1, u)
			for _, v := range terms {
				if v == s0 || v == s1 {
					continue
				}
				if dv = e.rows.d(v, u); dv == Inf {
					continue
				}
				if e0, w0 = e.con.query(s0, v); e0.id == save1.id {
					_, save2W = e.con.query(s1, v)
				} else {
					save2W = w0
				}
				gain = save1W + save2W
				cost = addSat(addSat(d0, d1), dv)
				if w = e.win(gain, cost); w > bestWin {
					best = triple{s0: s0, s1: s1, s2: v, center: u, cost: cost, gain: gain}
					found, bestWin = true, w
				}
			}
		}
		if !found {
			return
		}
		e.contractTriple(best)
		e.stats.Generated++
	}
}

func (e *tripleEngine) contractTriple(t triple) {
	e.stats.Contracted++
	e.weight -= e.con.gain(t.s0, t.s1, t.s2)
	e.con.update(t)
	if !e.p.isTerm[t.center] {
		e.tg.promote(t.center)
	}
	e.log.Debug("contraction",
		slog.Int("center", t.center),
		slog.Int64("cost", t.cost),
		slog.Int64("gain", t.gain),
		slog.Int64("tree", e.weight))
}
