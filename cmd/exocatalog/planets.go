// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exocatalog/internal/store"
	"github.com/pdiddy/exocatalog/pkg/types"
)

var planetsCmd = &cobra.Command{
	Use:   "planets [name]",
	Short: "Query planets saved by cleanse --store",
	Long: `Planets lists stored planets in catalog order, nearest and most complete
first. Filter by host star, habitability (habitable, not-habitable,
unknown), or composition (gas, rocky, iron-dense). Pass a planet name to
show a single record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlanets,
}

func init() {
	planetsCmd.Flags().String("host", "", "filter by host star name")
	planetsCmd.Flags().String("habitability", "", "filter by habitability: habitable, not-habitable, unknown")
	planetsCmd.Flags().String("composition", "", "filter by composition: gas, rocky, iron-dense")
	planetsCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	planetsCmd.Flags().Bool("json", false, "output results as JSON")

	bindFlags(planetsCmd, map[string]string{"limit": "store.max_results"})

	rootCmd.AddCommand(planetsCmd)
}

func runPlanets(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		rec, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, rec)
	}

	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}
	results, err := s.Query(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(out, results)
	}
	formatPlanets(out, results)
	return nil
}

func formatPlanets(w io.Writer, results []types.CanonicalPlanetRecord) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No planets found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-18s  %10s  %-10s  %-13s  %s\n",
		"Rank", "Planet", "Host", "Dist (ly)", "Comp", "Habitability", "g/g_earth")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i := range results {
		r := &results[i]
		comp := string(r.Metrics.Composition)
		if comp == "" {
			comp = "-"
		}
		fmt.Fprintf(w, "%-4d  %-24s  %-18s  %10s  %-10s  %-13s  %s\n",
			i+1,
			truncate(r.Name(), 24),
			truncate(r.Observation.HostName, 18),
			formatFloat(r.Metrics.DistanceLightYears, "%.2f"),
			comp,
			r.Metrics.Habitability,
			formatFloat(r.Metrics.GravityRelativeToEarth, "%.2f"),
		)
	}

	fmt.Fprintf(w, "\n%d planets\n", len(results))
}

func queryOptsFromFlags(cmd *cobra.Command) (store.QueryOptions, error) {
	host, _ := cmd.Flags().GetString("host")
	hab, _ := cmd.Flags().GetString("habitability")
	comp, _ := cmd.Flags().GetString("composition")

	opts := store.QueryOptions{
		Host:         host,
		Habitability: types.Habitability(hab),
		Composition:  types.Composition(comp),
	}
	switch opts.Habitability {
	case "", types.Habitable, types.NotHabitable, types.HabitabilityUnknown:
	default:
		return opts, fmt.Errorf("unknown habitability %q: use habitable, not-habitable, or unknown", hab)
	}
	switch opts.Composition {
	case "", types.CompositionGas, types.CompositionRocky, types.CompositionIron:
	default:
		return opts, fmt.Errorf("unknown composition %q: use gas, rocky, or iron-dense", comp)
	}
	return opts, nil
}

// openStore opens the planet database named by the merged configuration.
func openStore() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.NewStore(cfg.Store)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v types.NullFloat, format string) string {
	f, ok := v.Get()
	if !ok {
		return "-"
	}
	return fmt.Sprintf(format, f)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
