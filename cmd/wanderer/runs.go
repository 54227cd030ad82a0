package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wanderer/internal/export"
	"github.com/san-kum/wanderer/internal/metrics"
	"github.com/san-kum/wanderer/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSEED\tTICKS\tPOINTER\tDISTANCE\tWALLS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%.1f\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Ticks,
			run.Pointer,
			run.Summary.Distance,
			run.Summary.Walls,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(trace))

	for _, field := range fields {
		data, ok := metrics.Series(trace, field)
		if !ok {
			return fmt.Errorf("unknown trace column: %s", field)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(field+" vs tick"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func statsRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	// recomputed from the trace rather than trusting the metadata
	s := metrics.Summarize(trace)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "preset\t%s\n", meta.Preset)
	fmt.Fprintf(w, "seed\t%d\n", meta.Seed)
	fmt.Fprintf(w, "container\t%.0fx%.0f\n", meta.Width, meta.Height)
	fmt.Fprintf(w, "samples\t%d\n", s.Samples)
	fmt.Fprintf(w, "duration\t%.2fs\n", s.Duration)
	fmt.Fprintf(w, "distance\t%.1f\n", s.Distance)
	fmt.Fprintf(w, "speed\t%.3f ± %.3f [%.3f, %.3f]\n", s.MeanSpeed, s.StdSpeed, s.MinSpeed, s.MaxSpeed)
	fmt.Fprintf(w, "median spin\t%.2f\n", s.MedianSpin)
	fmt.Fprintf(w, "spread\t%.1f\n", s.Spread)
	fmt.Fprintf(w, "walls\t%d\n", s.Walls)
	fmt.Fprintf(w, "escapes\t%d\n", s.Escapes)

	names := make([]string, 0, len(meta.Metrics))
	for name := range meta.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, meta.Metrics[name])
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath == "" {
		return st.Export(os.Stdout, args[0])
	}
	if err := st.ExportFile(outPath, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	opts := export.DefaultSVGOptions()
	opts.Width, opts.Height = meta.Width, meta.Height
	opts.MoverSize = meta.MoverSize
	svg := export.TrajectoryToSVG(trace, opts)

	path := outPath
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", path)
	return nil
}
