package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/asad/ReactionDecoder-sub000/config"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/internal/graphfile"
	"github.com/asad/ReactionDecoder-sub000/mcs"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type searchOpts struct {
	config  string
	timeout time.Duration
	format  string
}

func newSearchCmd() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "search <g1.yaml> <g2.yaml>",
		Short: "Find the maximum common subgraph of two graphs",
		Long: `Search maps as many nodes of the first graph as possible onto the second.
Results keep only the largest mappings; each is listed with the number of
connected fragments it covers in the first graph.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return errors.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatJSON)
			}
			th, err := loadThresholds(opts.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				if opts.timeout < 0 {
					return errors.Errorf("negative timeout %s", opts.timeout)
				}
				th.Timeout = config.Duration(opts.timeout)
			}
			g1, g2, err := loadPair(args)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			res, err := mcs.Search(cmd.Context(), g1, g2,
				mcs.WithThresholds(th), mcs.WithLogger(logger))
			if err != nil {
				return errors.Wrap(err, "search")
			}
			prog.done("search finished")

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), g1, g2, res)
			}
			writeText(cmd.OutOrStdout(), g1, g2, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "thresholds TOML file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "soft time limit for the whole search (0 disables)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text or json")

	return cmd
}

func loadThresholds(path string) (config.Thresholds, error) {
	if path == "" {
		return config.Default(), nil
	}
	th, err := config.Load(path)
	if err != nil {
		return config.Thresholds{}, errors.Wrap(err, "thresholds")
	}
	return th, nil
}

func loadPair(args []string) (*graph.Labeled, *graph.Labeled, error) {
	g1, err := graphfile.Load(args[0])
	if err != nil {
		return nil, nil, err
	}
	g2, err := graphfile.Load(args[1])
	if err != nil {
		return nil, nil, err
	}
	return g1, g2, nil
}

func writeText(w io.Writer, g1, g2 *graph.Labeled, res mcs.Result) {
	printTitle(w, "%s %s %s", g1.Name(), iconArrow, g2.Name())
	if res.Size() == 0 {
		printWarning(w, "no common substructure")
	} else {
		printSuccess(w, "%d common node(s) in %d mapping(s)", res.Size(), len(res.Mappings))
	}
	if res.TimedOut {
		printWarning(w, "search budget exhausted; results are best effort")
	}
	for k, m := range res.Mappings {
		printMapping(w, k+1, m, mcs.Fragments(g1, m))
	}

	st := res.Stats
	printKeyValue(w, "strategy", st.Strategy.String())
	printStats(w,
		"nodes", st.Nodes,
		"c-edges", st.CEdges,
		"d-edges", st.DEdges,
		"clique", st.CliqueSize,
		"cliques", st.Cliques)
	printStats(w,
		"attempts", st.Attempts,
		"budget", st.BudgetLimit,
		"elapsed", st.Elapsed.Round(time.Microsecond))
}

type jsonPair struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

type jsonMapping struct {
	Pairs     []jsonPair `json:"pairs"`
	Fragments int        `json:"fragments"`
}

type jsonResult struct {
	Graph1   string        `json:"graph1"`
	Graph2   string        `json:"graph2"`
	Size     int           `json:"size"`
	TimedOut bool          `json:"timed_out"`
	Mappings []jsonMapping `json:"mappings"`
	Stats    jsonStats     `json:"stats"`
}

type jsonStats struct {
	SearchID      string `json:"search_id"`
	Strategy      string `json:"strategy"`
	Fallback      bool   `json:"fallback"`
	Nodes         int    `json:"nodes"`
	CEdges        int    `json:"c_edges"`
	DEdges        int    `json:"d_edges"`
	CliqueSize    int    `json:"clique_size"`
	Cliques       int    `json:"cliques"`
	Attempts      int    `json:"attempts"`
	BudgetLimit   int    `json:"budget_limit"`
	LabelFailures int    `json:"label_failures"`
	ElapsedMicros int64  `json:"elapsed_us"`
}

func writeJSON(w io.Writer, g1, g2 *graph.Labeled, res mcs.Result) error {
	st := res.Stats
	out := jsonResult{
		Graph1:   g1.Name(),
		Graph2:   g2.Name(),
		Size:     res.Size(),
		TimedOut: res.TimedOut,
		Mappings: make([]jsonMapping, 0, len(res.Mappings)),
		Stats: jsonStats{
			SearchID:      st.SearchID,
			Strategy:      st.Strategy.String(),
			Fallback:      st.Fallback,
			Nodes:         st.Nodes,
			CEdges:        st.CEdges,
			DEdges:        st.DEdges,
			CliqueSize:    st.CliqueSize,
			Cliques:       st.Cliques,
			Attempts:      st.Attempts,
			BudgetLimit:   st.BudgetLimit,
			LabelFailures: st.LabelFailures,
			ElapsedMicros: st.Elapsed.Microseconds(),
		},
	}
	for _, m := range res.Mappings {
		jm := jsonMapping{Fragments: mcs.Fragments(g1, m)}
		for _, p := range m {
			jm.Pairs = append(jm.Pairs, jsonPair{Source: p.Source, Target: p.Target})
		}
		out.Mappings = append(out.Mappings, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encode json")
}
