package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/gapminder/internal/export"
	"github.com/san-kum/gapminder/internal/viz"
)

var (
	configFile string
	dataPath   string
	logLevel   string
	logDir     string
	// Playback
	intervalMs int
	preset     string
	theme      string
	// Export
	output    string
	canvasSVG bool
)

// canvasScale is the size in SVG pixels of one canvas sub-pixel.
const canvasScale = 4

// main registers the commands and flags and runs the interactive chart when
// no subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "gapminder [csv]",
		Short:        "animated gapminder bubble chart",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runPlay,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "gapminder csv file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "log directory")
	playbackFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [csv]",
		Short: "play the animated chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playbackFlags(playCmd)

	framesCmd := &cobra.Command{
		Use:   "frames [csv]",
		Short: "list yearly frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listFrames,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [year]",
		Short: "print one frame of the chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotFrame,
	}
	plotCmd.Flags().StringVar(&theme, "theme", "", themeUsage())

	trendCmd := &cobra.Command{
		Use:   "trend [country]",
		Short: "plot a country's life expectancy over the years",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrend,
	}

	exportCmd := &cobra.Command{
		Use:   "export [year]",
		Short: "export the chart, format taken from the output extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.FormatFromPath(output)
			if err != nil {
				return err
			}
			return exportChart(cmd, format, args)
		},
	}
	exportCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file")
	exportCmd.PersistentFlags().BoolVar(&canvasSVG, "canvas", false, "svg: draw the terminal canvas instead of vector markers")
	for _, format := range export.Formats {
		exportCmd.AddCommand(exportFormatCmd(format))
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list playback presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, framesCmd, plotCmd, trendCmd, exportCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func playbackFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&intervalMs, "interval", 0, "milliseconds between frames")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&theme, "theme", "", themeUsage())
}

func themeUsage() string {
	return "color theme (" + strings.Join(viz.ThemeNames(), ", ") + ")"
}

func exportFormatCmd(format string) *cobra.Command {
	use := format + " [year]"
	posArgs := cobra.MaximumNArgs(1)
	if format == "gif" {
		use, posArgs = format, cobra.NoArgs
	}
	return &cobra.Command{
		Use:   use,
		Short: "export the chart as " + format,
		Args:  posArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = "gapminder." + format
			}
			return exportChart(cmd, format, args)
		},
	}
}
