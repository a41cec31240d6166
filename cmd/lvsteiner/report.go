package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// report is the outcome of one solve run.
type report struct {
	RunID     string           `yaml:"run_id"`
	Algorithm string           `yaml:"algorithm"`
	Graph     graphReport      `yaml:"graph"`
	Terminals []string         `yaml:"terminals"`
	Weight    int64            `yaml:"weight"`
	TreeEdges int              `yaml:"tree_edges"`
	Steiner   []string         `yaml:"steiner_points"`
	Valid     bool             `yaml:"valid"`
	Stats     *statsReport     `yaml:"stats,omitempty"`
	Options   *steiner.Options `yaml:"options,omitempty"`
}

type graphReport struct {
	Vertices int   `yaml:"vertices"`
	Edges    int   `yaml:"edges"`
	Weight   int64 `yaml:"weight"`
}

type statsReport struct {
	Generated    int64         `yaml:"generated"`
	Contracted   int64         `yaml:"contracted"`
	LookUps      int64         `yaml:"lookups"`
	CoreTime     time.Duration `yaml:"core_time"`
	FallbackTime time.Duration `yaml:"fallback_time"`
	Elapsed      time.Duration `yaml:"elapsed"`
}

func newReport(runID, algorithm string, g *core.Graph, terms []string, w int64, tree *core.Graph) *report {
	isTerm := make(map[string]bool, len(terms))
	for _, v := range terms {
		isTerm[v] = true
	}
	r := &report{
		RunID:     runID,
		Algorithm: algorithm,
		Graph:     graphReport{Vertices: g.VertexCount(), Edges: g.EdgeCount(), Weight: g.TotalWeight()},
		Terminals: terms,
		Weight:    w,
		TreeEdges: tree.EdgeCount(),
		Steiner:   []string{},
		Valid:     steiner.IsSteinerTree(tree, terms),
	}
	for _, v := range tree.Vertices() {
		if !isTerm[v] {
			r.Steiner = append(r.Steiner, v)
		}
	}

	return r
}

func (r *report) withStats(st steiner.Stats, opts steiner.Options) {
	r.Stats = &statsReport{
		Generated:    st.Generated,
		Contracted:   st.Contracted,
		LookUps:      st.LookUps,
		CoreTime:     st.CoreTime,
		FallbackTime: st.FallbackTime,
		Elapsed:      st.Elapsed,
	}
	r.Options = &opts
}

func (r *report) write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case "text":
		r.writeText(w)

		return nil
	default:
		return fmt.Errorf("%w: format %q (want text or yaml)", errBadFlag, format)
	}
}

func (r *report) writeText(w io.Writer) {
	fmt.Fprintf(w, "run        %s\n", r.RunID)
	fmt.Fprintf(w, "algorithm  %s\n", r.Algorithm)
	fmt.Fprintf(w, "graph      %d vertices, %d edges\n", r.Graph.Vertices, r.Graph.Edges)
	fmt.Fprintf(w, "terminals  %s\n", strings.Join(r.Terminals, " "))
	fmt.Fprintf(w, "weight     %d (%d edges, valid=%t)\n", r.Weight, r.TreeEdges, r.Valid)
	fmt.Fprintf(w, "steiner    %s\n", strings.Join(r.Steiner, " "))
	if s := r.Stats; s != nil {
		fmt.Fprintf(w, "stats      generated=%d contracted=%d lookups=%d\n", s.Generated, s.Contracted, s.LookUps)
		fmt.Fprintf(w, "timing     core=%s fallback=%s elapsed=%s\n", s.CoreTime, s.FallbackTime, s.Elapsed)
	}
}
