package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorepozo/skn/core"
	"github.com/lorepozo/skn/mechanism"
	"github.com/lorepozo/skn/synthesis"
)

var (
	curriculumDir   string
	iterations      uint64
	dotPath         string
	includePrograms bool
	seed            int64
	contextMinSize  int
	maxSize         int
	withStochastic  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Integration Loop against a curriculum directory",
	Example: `  # Run 20 iterations against ./curriculum, dumping the final graph
  skn run --curriculum ./curriculum --iterations 20 --dot ./out.dot`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&curriculumDir, "curriculum", "", "Curriculum directory (embryo.json, course_NN.json); defaults to $EC_CURRICULUM")
	runCmd.Flags().Uint64Var(&iterations, "iterations", 1, "Number of Integration Loop iterations (T)")
	runCmd.Flags().StringVar(&dotPath, "dot", "", "Write a Graphviz dump of the final network to this path")
	runCmd.Flags().BoolVar(&includePrograms, "include-programs", true, "Fold successful synthesis programs into the learned set")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 seeds from the current time)")
	runCmd.Flags().IntVar(&contextMinSize, "context-min-size", 5, "Minimum context size floor")
	runCmd.Flags().IntVar(&maxSize, "max-size", 128, "Maximum artifact count")
	runCmd.Flags().BoolVar(&withStochastic, "with-stochastic", false, "Also register the demonstration stochastic mechanism")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := synthesis.NewConfig()
	if curriculumDir != "" {
		cfg.CurriculumDir = curriculumDir
	}
	cfg.IncludeProgs = includePrograms

	embryo, err := synthesis.LoadEmbryo(cfg)
	if err != nil {
		return fmt.Errorf("skn run: %w", err)
	}

	effectiveSeed := seed
	if effectiveSeed == 0 {
		effectiveSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(effectiveSeed))
	opts := []core.NetworkOption{
		core.WithContextMinSize(contextMinSize),
		core.WithMaxSize(maxSize),
		core.WithSeed(effectiveSeed),
	}

	net, err := core.NewNetwork(embryo, opts...)
	if err != nil {
		return fmt.Errorf("skn run: %w", err)
	}

	registry := mechanism.NewRegistry()
	synth := synthesis.NewMechanism(cfg, logger)
	registry.Register(synthesis.MechanismTag, synth.Run)
	if withStochastic {
		registry.Register("stochastic", mechanism.NewStochastic(rng))
	}

	loop := mechanism.NewLoop(net, registry, mechanism.WithLogger(logger))
	if err := loop.Run(iterations); err != nil {
		return fmt.Errorf("skn run: %w", err)
	}

	if dotPath != "" {
		f, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("skn run: creating dot file: %w", err)
		}
		defer f.Close()
		if err := net.WriteDot(f); err != nil {
			return fmt.Errorf("skn run: writing dot file: %w", err)
		}
	}

	logger.Infow("run complete", "iterations", iterations, "artifacts", net.Len(), "epochs", net.EpochCount())
	return nil
}
