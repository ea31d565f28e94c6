package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/board"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <scene-file>",
		Short: "Summarize the entities in a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
}

// sceneStats aggregates per-kind counts, endpoint bindings and the union
// bounds of a scene.
type sceneStats struct {
	counts   map[board.Kind]int
	bindings int
	bounds   board.Rect
	hasAny   bool
}

func collectStats(eng *board.Engine) sceneStats {
	st := sceneStats{counts: make(map[board.Kind]int)}
	for _, e := range eng.Store().All() {
		st.counts[e.Type]++
		b := eng.Registry().Bounds(e)
		if !st.hasAny {
			st.bounds = b
			st.hasAny = true
		} else {
			st.bounds = st.bounds.Union(b)
		}
		if p, ok := e.Props.(board.ConnectorProps); ok {
			if p.StartConnectedID != "" {
				st.bindings++
			}
			if p.EndConnectedID != "" {
				st.bindings++
			}
		}
	}
	return st
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, err := openScene(args[0], 1280, 800)
	if err != nil {
		return err
	}
	defer eng.Close()
	st := collectStats(eng)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entities: %d\n", eng.Store().Len())
	for _, k := range board.Kinds() {
		if n := st.counts[k]; n > 0 {
			fmt.Fprintf(out, "  %-12s %d\n", k, n)
		}
	}
	if st.hasAny {
		fmt.Fprintf(out, "Bounds:   (%.1f, %.1f) %.1f x %.1f\n", st.bounds.X, st.bounds.Y, st.bounds.W, st.bounds.H)
	}
	fmt.Fprintf(out, "Bindings: %d\n", st.bindings)
	return nil
}
