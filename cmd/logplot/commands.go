package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/logplot/internal/config"
	"github.com/san-kum/logplot/internal/limits"
	"github.com/san-kum/logplot/internal/logsafe"
	"github.com/san-kum/logplot/internal/render"
	"github.com/san-kum/logplot/internal/storage"
)

// floorFactor keeps epsilon-floored points off rendered plots.
const floorFactor = 10

func runLimits(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := storage.OpenDataset(args[0])
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	slog.Debug("dataset loaded", "path", args[0], "points", ds.Len(), "asymmetric", ds.Asymmetric)

	res, err := limits.Classify(ds.X, ds.Y, ds.ErrDown, cfg.LimitOptions())
	if err != nil {
		return err
	}
	slog.Info("classified", "points", res.Len(), "limits", res.Limits(), "sigma", cfg.Sigma)

	if saveName != "" {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(saveName, res)
		if err != nil {
			return err
		}
		slog.Info("report saved", "id", id, "dir", filepath.Join(dataDir, id))
	}

	return withOutput(func(w io.Writer) error {
		th := render.GetTheme(cfg.Plot.Theme)
		switch cfg.Plot.Format {
		case "json":
			return storage.ExportJSON(w, res)
		case "ascii":
			plot := render.NewASCII(cfg.Plot.Width, cfg.Plot.Height, th)
			plot.Floor = cfg.Epsilon * floorFactor
			plot.Caption = fmt.Sprintf("%s: log10(y), %d upper limits", filepath.Base(args[0]), res.Limits())
			render.DrawLimits(plot, res)
			return writePlot(w, plot.String())
		case "svg":
			svg := render.NewSVG(cfg.Plot.Width*10, cfg.Plot.Height*30, th)
			svg.Floor = cfg.Epsilon * floorFactor
			render.DrawLimits(svg, res)
			return writePlot(w, svg.String())
		default:
			return printLimitsTable(w, th, res)
		}
	})
}

func runRange(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	eps, err := cfg.RangeEpsilon()
	if err != nil {
		return err
	}

	ds, err := storage.OpenDataset(args[0])
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	rng, err := logsafe.Compute(ds.Y, ds.Errors(), eps)
	if err != nil {
		return err
	}
	if idx := logsafe.Unresolved(ds.Y, eps); len(idx) > 0 {
		slog.Warn("epsilon below float64 resolution of the data; bounds may coincide",
			"epsilon", eps, "points", len(idx), "first", idx[0])
	}
	slog.Info("log-safe range computed", "points", rng.Len(), "epsilon", eps)

	return withOutput(func(w io.Writer) error {
		th := render.GetTheme(cfg.Plot.Theme)
		switch cfg.Plot.Format {
		case "json":
			return storage.ExportRangeJSON(w, ds.X, eps, rng)
		case "ascii":
			plot := render.NewASCII(cfg.Plot.Width, cfg.Plot.Height, th)
			plot.Floor = eps * floorFactor
			plot.Caption = fmt.Sprintf("%s: log10(center)", filepath.Base(args[0]))
			if _, err := render.DrawRange(plot, ds.X, rng); err != nil {
				return err
			}
			return writePlot(w, plot.String())
		case "svg":
			svg := render.NewSVG(cfg.Plot.Width*10, cfg.Plot.Height*30, th)
			svg.Floor = eps * floorFactor
			if _, err := render.DrawRange(svg, ds.X, rng); err != nil {
				return err
			}
			return writePlot(w, svg.String())
		default:
			return printRangeTable(w, th, ds.X, rng)
		}
	})
}

func listReports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tPOINTS\tLIMITS\tSIGMA")

	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%g\n",
			r.ID,
			r.Name,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Points,
			r.Limits,
			r.Options.Sigma,
		)
	}

	return w.Flush()
}

func showReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	th := render.GetTheme(config.DefaultTheme)
	fmt.Println(th.Header().Render(fmt.Sprintf("report %s", meta.ID)))
	fmt.Printf("saved:   %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("options: sigma=%g epsilon=%g head_width=%g arrow_length=%g\n\n",
		meta.Options.Sigma, meta.Options.Epsilon, meta.Options.HeadWidth, meta.Options.ArrowLength)

	return printPoints(os.Stdout, th, points)
}

func printLimitsTable(w io.Writer, th render.Theme, res *limits.Result) error {
	fmt.Fprintln(w, th.Header().Render(fmt.Sprintf("%d points, %d upper limits (sigma=%g)",
		res.Len(), res.Limits(), res.Options.Sigma)))
	return printPoints(w, th, res.Points)
}

func printPoints(w io.Writer, th render.Theme, points []limits.Point) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tX\tY\tERR\tUPPER\tKIND")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			p.Index, p.X, p.Y, p.Err, p.UpperLimit,
			th.KindLabel(p.Kind == limits.Limit).Render(p.Kind.String()))
	}
	return tw.Flush()
}

func printRangeTable(w io.Writer, th render.Theme, xs []float64, rng *logsafe.Range) error {
	fmt.Fprintln(w, th.Header().Render(fmt.Sprintf("%d log-safe points", rng.Len())))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tX\tLOW\tCENTER\tHIGH")
	for i := 0; i < rng.Len(); i++ {
		lo, mid, hi := rng.Bounds(i)
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t%.4g\t%.4g\n", i, xs[i], lo, mid, hi)
	}
	return tw.Flush()
}

func writePlot(w io.Writer, plot string) error {
	if strings.TrimSpace(plot) == "" {
		return fmt.Errorf("nothing to plot above the epsilon floor")
	}
	_, err := fmt.Fprintln(w, plot)
	return err
}

// withOutput runs fn against --out, or stdout when unset.
func withOutput(fn func(io.Writer) error) error {
	if outPath == "" {
		return fn(os.Stdout)
	}
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := fn(file); err != nil {
		return err
	}
	slog.Info("output written", "path", outPath)
	return nil
}
