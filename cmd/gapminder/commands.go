package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gapminder/internal/config"
	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/export"
	"github.com/san-kum/gapminder/internal/frames"
	"github.com/san-kum/gapminder/internal/gapminder"
	"github.com/san-kum/gapminder/internal/logging"
	"github.com/san-kum/gapminder/internal/tui"
	"github.com/san-kum/gapminder/internal/viz"
)

// settings loads the config file, applies the preset and then any flag set on
// the command line. csv, when not empty, replaces the data path.
func settings(cmd *cobra.Command, csv string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = dataPath
	}
	if csv != "" {
		cfg.Data = csv
	}
	if flags.Changed("interval") {
		cfg.Playback.IntervalMs = intervalMs
	}
	if flags.Changed("theme") {
		cfg.Plot.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = logDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func options(cfg *config.Config, log *logging.Logger) gapminder.Options {
	return gapminder.Options{
		Interval: cfg.Interval(),
		Title:    cfg.Plot.Title,
		Width:    cfg.Plot.Width,
		Height:   cfg.Plot.Height,
		Cmap:     cfg.Plot.Cmap,
		Logger:   log,
	}
}

func loadDataset(cfg *config.Config, log *logging.Logger) (*dataset.Dataset, error) {
	table, err := dataset.LoadFile(cfg.Data)
	if err != nil {
		log.Error("load failed", "path", cfg.Data, "error", err.Error())
		return nil, err
	}
	log.Debug("dataset loaded", "path", cfg.Data, "rows", table.Len())
	return dataset.New(table), nil
}

// mount loads the data and mounts the chart into a fresh document.
func mount(cfg *config.Config, log *logging.Logger) (*gapminder.Session, error) {
	ds, err := loadDataset(cfg, log)
	if err != nil {
		return nil, err
	}
	s, err := gapminder.Plot(document.New(), ds, options(cfg, log))
	if err != nil {
		log.Error("plot failed", "error", err.Error())
		return nil, err
	}
	s.Plot.SetTheme(viz.GetTheme(cfg.Plot.Theme))
	return s, nil
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func parseYear(args []string) (int, bool, error) {
	if len(args) == 0 {
		return 0, false, nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	return year, true, nil
}

// seek moves the chart to year. A year outside the data is clamped and logged.
func seek(s *gapminder.Session, year int, log *logging.Logger) {
	if years, err := s.Dataset.Range(dataset.ColYear); err == nil && !years.Contains(float64(year)) {
		log.Warn("year outside the data, clamped", "year", year, "first", years.Min, "last", years.Max)
	}
	s.Controller.Seek(year)
	if !s.Plot.Visible() {
		log.Warn("no frame for year", "year", s.Controller.Slider.Value)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd, firstArg(args))
	if err != nil {
		return err
	}

	// The chart owns the terminal, so logs always go to a file.
	dir := cfg.Log.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "gapminder")
	}
	log, err := logging.NewLogger(dir, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	s, err := mount(cfg, log)
	if err != nil {
		return err
	}
	if err := tui.Run(s,
		tui.WithTheme(cfg.Plot.Theme),
		tui.WithAutoplay(cfg.Playback.Autoplay),
		tui.WithLogger(log)); err != nil {
		log.Error("tui exited", "error", err.Error())
		return err
	}
	return nil
}

// stderrLogger is the logger of the one-shot commands. It writes to stderr
// unless a log directory is configured.
func stderrLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger(cfg.Log.Dir, cfg.Log.Level)
}

func listFrames(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd, firstArg(args))
	if err != nil {
		return err
	}
	log, err := stderrLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ds, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}
	s, err := gapminder.Build(ds, options(cfg, log))
	if err != nil {
		log.Error("build failed", "error", err.Error())
		return err
	}
	return writeFrames(os.Stdout, s.Frames)
}

func writeFrames(out io.Writer, c *frames.Collection) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tPOINTS\tMEAN FERTILITY\tMEAN LIFE EXP\tPOPULATION")
	for _, sum := range c.Trend() {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\n",
			sum.Key,
			sum.Points,
			decimal(sum.MeanFertility),
			decimal(sum.MeanLife),
			sum.TotalPopulation,
		)
	}
	return w.Flush()
}

func decimal(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func plotFrame(cmd *cobra.Command, args []string) error {
	year, ok, err := parseYear(args)
	if err != nil {
		return err
	}
	cfg, err := settings(cmd, "")
	if err != nil {
		return err
	}
	log, err := stderrLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	s, err := mount(cfg, log)
	if err != nil {
		return err
	}
	if ok {
		seek(s, year, log)
	}
	if err := s.Controller.Err(); err != nil {
		return err
	}
	fmt.Println(s.Plot.Render())
	return nil
}

func plotTrend(cmd *cobra.Command, args []string) error {
	country := args[0]
	cfg, err := settings(cmd, "")
	if err != nil {
		return err
	}
	log, err := stderrLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ds, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}
	s, err := gapminder.Build(ds, options(cfg, log))
	if err != nil {
		return err
	}

	name, data := countryTrend(s.Frames, country)
	if len(data) == 0 {
		return fmt.Errorf("no life expectancy data for country: %s", country)
	}

	fmt.Printf("country: %s\n", name)
	fmt.Printf("samples: %d\n\n", len(data))
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("life expectancy at birth (years)")))
	return nil
}

// countryTrend collects a country's life expectancy in year order. Matching
// ignores case; years with a missing value are skipped.
func countryTrend(c *frames.Collection, country string) (string, []float64) {
	name := country
	var data []float64
	c.Each(func(f *frames.Frame) {
		for _, p := range f.Points {
			if !strings.EqualFold(p.Obs.Country, country) {
				continue
			}
			name = p.Obs.Country
			if !math.IsNaN(p.Obs.LifeExpectancy) {
				data = append(data, p.Obs.LifeExpectancy)
			}
		}
	})
	return name, data
}

func exportChart(cmd *cobra.Command, format string, args []string) error {
	year, ok, err := parseYear(args)
	if err != nil {
		return err
	}
	cfg, err := settings(cmd, "")
	if err != nil {
		return err
	}
	log, err := stderrLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	s, err := mount(cfg, log)
	if err != nil {
		return err
	}
	if ok {
		seek(s, year, log)
	}

	err = export.WriteFile(output, func(w io.Writer) error {
		switch format {
		case "png":
			return export.PlotToPNG(w, s.Plot)
		case "svg":
			if canvasSVG {
				_, err := io.WriteString(w, export.CanvasToSVG(s.Plot.Canvas(), canvasScale))
				return err
			}
			return export.PlotToSVG(w, s.Plot)
		case "gif":
			return export.AnimateGIF(w, s.Plot, cfg.Interval())
		case "json":
			if ok {
				return export.ExportJSON(w, s.Overlay, s.Controller.Slider.Value)
			}
			return export.ExportJSON(w, s.Overlay)
		}
		return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
	})
	if err != nil {
		log.Error("export failed", "format", format, "path", output, "error", err.Error())
		return err
	}
	log.Info("exported", "format", format, "path", output, "year", s.Plot.Key())
	fmt.Printf("exported %s to %s\n", format, output)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTERVAL\tSIZE\tTHEME\tAUTOPLAY\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		size := "-"
		if p.Width > 0 && p.Height > 0 {
			size = fmt.Sprintf("%dx%d", p.Width, p.Height)
		}
		th := p.Theme
		if th == "" {
			th = "-"
		}
		autoplay := "-"
		if p.Autoplay != nil {
			autoplay = strconv.FormatBool(*p.Autoplay)
		}
		fmt.Fprintf(w, "%s\t%dms\t%s\t%s\t%s\t%s\n", name, p.IntervalMs, size, th, autoplay, p.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := firstArg(args)
	if path == "" {
		path = "gapminder.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
