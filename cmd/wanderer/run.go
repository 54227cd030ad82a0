package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/san-kum/wanderer/internal/experiment"
	"github.com/san-kum/wanderer/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

func experimentConfig(cmd *cobra.Command, seed int64) (experiment.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return experiment.Config{}, err
	}
	setup := experiment.DefaultConfig()
	setup.Preset = preset
	setup.Mover = cfg
	setup.Seed = seed
	setup.Ticks = ticks
	setup.Width, setup.Height = width, height
	setup.MoverSize = moverSize
	setup.Pointer = pointer
	setup.Logger = log
	return setup, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	setup, err := experimentConfig(cmd, runSeed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := experiment.Run(ctx, setup)
	if err != nil {
		return err
	}

	fmt.Printf("preset: %s  seed: %d  pointer: %s\n", setup.Preset, setup.Seed, setup.Pointer)
	fmt.Printf("samples: %d  duration: %.2fs\n", res.Summary.Samples, res.Summary.Duration)
	fmt.Printf("distance: %.1f px  speed: %.2f ± %.2f px/tick\n",
		res.Summary.Distance, res.Summary.MeanSpeed, res.Summary.StdSpeed)
	fmt.Printf("walls: %d  escapes: %d\n", res.Summary.Walls, res.Summary.Escapes)
	fmt.Printf("final: (%.1f, %.1f)\n", res.Final.Position.X, res.Final.Position.Y)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(storage.RunMetadata{
		Preset:    setup.Preset,
		Seed:      setup.Seed,
		Ticks:     setup.Ticks,
		FrameRate: setup.Mover.Advanced.FrameRate,
		Width:     setup.Width,
		Height:    setup.Height,
		MoverSize: setup.MoverSize,
		Pointer:   setup.Pointer,
		Counts:    res.Counts,
		Metrics:   res.Metrics,
		Summary:   res.Summary,
	}, setup.Mover, res.Trace)
	if err != nil {
		return err
	}
	log.Info("run saved", zap.String("id", id), zap.String("dir", dataDir))
	fmt.Printf("saved: %s\n", id)
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	setup, err := experimentConfig(cmd, firstSeed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := experiment.Ensemble(ctx, setup, ensembleN, firstSeed)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tDISTANCE\tSPEED\tWALLS\tESCAPES\tSPREAD")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%.2f\t%d\t%d\t%.1f\n",
			r.Seed, r.Summary.Distance, r.Summary.MeanSpeed, r.Summary.Walls, r.Summary.Escapes, r.Summary.Spread)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	columns := map[string][]float64{}
	for _, r := range results {
		for name, v := range r.Metrics {
			columns[name] = append(columns[name], v)
		}
		columns["walls"] = append(columns["walls"], float64(r.Summary.Walls))
	}
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTD")
	for _, name := range names {
		mean, std := stat.MeanStdDev(columns[name], nil)
		if len(columns[name]) < 2 {
			std = 0
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\n", name, mean, std)
	}
	return w.Flush()
}
