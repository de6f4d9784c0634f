package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asad/ReactionDecoder-sub000/clique"
	"github.com/asad/ReactionDecoder-sub000/compat"
	"github.com/asad/ReactionDecoder-sub000/match"
)

func newCompatCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "compat <g1.yaml> <g2.yaml>",
		Short: "Print compatibility-graph statistics for two graphs",
		Long: `Compat builds the signature-filtered and the fallback compatibility graphs
and reports their node and edge counts with the maximum clique size of each.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := loadThresholds(cfgPath)
			if err != nil {
				return err
			}
			g1, g2, err := loadPair(args)
			if err != nil {
				return err
			}

			nm, em := match.Defaults(g1, g2)
			o := match.New(g1, g2, nm, em)
			opts := []compat.Option{
				compat.WithSignatureWidth(th.SignatureWidth),
				compat.WithDEdgeCap(th.FallbackDEdgeCap),
			}

			w := cmd.OutOrStdout()
			printTitle(w, "%s %s %s", g1.Name(), iconArrow, g2.Name())
			if o.Failures() > 0 {
				printWarning(w, "%d node label(s) could not be resolved", o.Failures())
			}
			for _, cg := range []*compat.Graph{compat.Build(o, opts...), compat.BuildFallback(o, opts...)} {
				if err := cg.Validate(o); err != nil {
					return err
				}
				st := cg.Stats()
				cr := clique.Maximum(cg, clique.WithLimit(th.MaxCliques))
				printKeyValue(w, st.Strategy.String(), fmt.Sprintf("%d node(s)", st.Nodes))
				printStats(w,
					"c-edges", st.CEdges,
					"d-edges", st.DEdges,
					"clique", cr.Size,
					"cliques", len(cr.Cliques))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "thresholds TOML file")

	return cmd
}
