package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/config"
	"github.com/arkveil/cellgrow/growth"
	"github.com/arkveil/cellgrow/icosphere"
	"github.com/arkveil/cellgrow/stl"
	"github.com/arkveil/cellgrow/vecutil"
)

var (
	runDetail     int
	runIterations int
	runSeedIters  int
	runWorkers    int
	runSeed       uint64
	runOutputSTL  string
	runSnapEvery  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed an icosphere and grow it through force steps and division",
	RunE:  runGrow,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runDetail, "detail", -1, "icosphere subdivision level (overrides config)")
	runCmd.Flags().IntVar(&runIterations, "iterations", -1, "total iterations to run (overrides config)")
	runCmd.Flags().IntVar(&runSeedIters, "seed-iterations", -1, "iterations run with division disabled before growth begins (overrides config)")
	runCmd.Flags().IntVar(&runWorkers, "workers", -1, "worker goroutines for the force step (overrides config)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 1, "deterministic RNG seed for food accrual")
	runCmd.Flags().StringVar(&runOutputSTL, "out", "", "write the final mesh as binary STL to this path (skipped if empty)")
	runCmd.Flags().IntVar(&runSnapEvery, "snapshot-every", 0, "log a snapshot line every N iterations (0 logs one after the last iteration)")
}

func runGrow(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	runID := uuid.New().String()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg)

	log.WithField("run_id", runID).Info("starting run: detail=%d iterations=%d seed_iterations=%d workers=%d",
		cfg.Detail, cfg.Iterations, cfg.SeedIterations, cfg.WorkerCount)

	mesh, err := cellmesh.NewFromIcosphere(icosphere.Generate(cfg.Detail))
	if err != nil {
		return fmt.Errorf("seeding mesh: %w", err)
	}

	driver, err := growth.New(mesh, cfg.CellParams(), cfg.WorkerCount, vecutil.NewRNG(runSeed))
	if err != nil {
		return fmt.Errorf("building driver: %w", err)
	}

	runner := growth.NewRunner(driver, log)
	runner.SnapshotEvery = runSnapEvery
	runner.Snapshot = func(iteration int, m *cellmesh.Mesh) {
		log.Info("snapshot at iteration %d: cells=%d", iteration, m.AliveCount())
	}

	if err := runner.Run(cmd.Context(), cfg.Iterations, cfg.SeedIterations); err != nil {
		return fmt.Errorf("running growth: %w", err)
	}

	log.Info("run complete: cells=%d", mesh.AliveCount())

	if runOutputSTL == "" {
		return nil
	}

	f, err := os.Create(runOutputSTL)
	if err != nil {
		return fmt.Errorf("creating STL output: %w", err)
	}
	defer f.Close()

	header := fmt.Sprintf("cellgrow run=%s cells=%d", runID, mesh.AliveCount())
	if err := stl.Write(f, header, mesh.Triangulate()); err != nil {
		return fmt.Errorf("writing STL: %w", err)
	}
	log.Info("wrote STL to %s", runOutputSTL)
	return nil
}

func applyOverrides(cfg *config.Params) {
	if runDetail >= 0 {
		cfg.Detail = runDetail
	}
	if runIterations >= 0 {
		cfg.Iterations = runIterations
	}
	if runSeedIters >= 0 {
		cfg.SeedIterations = runSeedIters
	}
	if runWorkers >= 0 {
		cfg.WorkerCount = runWorkers
	}
}
