package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	benchFrames  int
	benchProfile string
	benchWidth   int
	benchHeight  int
)

func benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <scene-file>",
		Short: "Measure render throughput for a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}
	cmd.Flags().IntVar(&benchFrames, "frames", 100, "Number of frames to render")
	cmd.Flags().StringVar(&benchProfile, "profile", "", "Write a profile: cpu or mem")
	cmd.Flags().IntVar(&benchWidth, "width", 1280, "Viewport width in pixels")
	cmd.Flags().IntVar(&benchHeight, "height", 800, "Viewport height in pixels")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive")
	}
	eng, err := openScene(args[0], benchWidth, benchHeight)
	if err != nil {
		return err
	}
	defer eng.Close()
	fitCamera(eng, 40)

	switch benchProfile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", benchProfile)
	}

	start := time.Now()
	for i := 0; i < benchFrames; i++ {
		eng.RequestRepaint()
		eng.Tick()
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "%d frames in %v (%.2f ms/frame, %.1f fps)\n",
		benchFrames,
		elapsed.Round(time.Millisecond),
		float64(elapsed.Microseconds())/float64(benchFrames)/1000,
		float64(benchFrames)/elapsed.Seconds(),
	)
	return nil
}
