package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avehn/tracefield/internal/config"
	"github.com/avehn/tracefield/internal/export"
	"github.com/avehn/tracefield/internal/field"
	"github.com/avehn/tracefield/internal/scene"
	"github.com/avehn/tracefield/internal/viz"
)

var (
	configFile string
	width      int
	height     int
	noLegend   bool
	braided    bool
	// watch
	fps int
	// profile
	steps   int
	originX int
	originY int
	stride  int
	// export
	svgScale float64
)

// main registers commands and flags; a bare invocation draws the
// reference composition and always exits 0.
func main() {
	rootCmd := &cobra.Command{
		Use:   "tracefield",
		Short: "deterministic ascii inscription compositor",
		Run: func(cmd *cobra.Command, args []string) {
			drawScene(config.GetPreset("dialogue"))
		},
	}

	drawCmd := &cobra.Command{
		Use:   "draw [scene]",
		Short: "draw a composition",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDraw,
	}
	drawCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	drawCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width")
	drawCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height")
	drawCmd.Flags().BoolVar(&noLegend, "no-legend", false, "omit the legend line")
	drawCmd.Flags().BoolVar(&braided, "braided", false, "merge all strokes into one layer before depositing")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(viz.SceneList(config.ListPresets()))
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [scene]",
		Short: "step through a composition stroke by stroke",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	watchCmd.Flags().IntVar(&fps, "fps", 2, "strokes per second")

	profileCmd := &cobra.Command{
		Use:   "profile [tag]",
		Short: "plot the drift of one tag's path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.Profile(field.Tag(args[0]), originX, originY, steps, stride))
			return nil
		},
	}
	profileCmd.Flags().IntVar(&steps, "steps", 22, "path length")
	profileCmd.Flags().IntVar(&originX, "x", 0, "origin x")
	profileCmd.Flags().IntVar(&originY, "y", 0, "origin y")
	profileCmd.Flags().IntVar(&stride, "stride", 1, "horizontal stride")

	exportCmd := &cobra.Command{
		Use:   "export [scene]",
		Short: "write the composited field as SVG to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	exportCmd.Flags().Float64Var(&svgScale, "scale", 10.0, "pixels per cell")

	legendCmd := &cobra.Command{
		Use:   "legend",
		Short: "show the symbol table",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(viz.StyledLegend())
		},
	}

	rootCmd.AddCommand(drawCmd, scenesCmd, watchCmd, profileCmd, exportCmd, legendCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScene picks the scene for a command: a named preset argument,
// a --config file, or the default composition.
func resolveScene(args []string) (*config.Scene, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	name := "dialogue"
	if len(args) > 0 {
		name = args[0]
	}
	sc := config.GetPreset(name)
	if sc == nil {
		return nil, fmt.Errorf("unknown scene: %s (available: %v)", name, config.ListPresets())
	}
	return sc, nil
}

func runDraw(cmd *cobra.Command, args []string) error {
	sc, err := resolveScene(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		sc.Width = width
	}
	if cmd.Flags().Changed("height") {
		sc.Height = height
	}
	if cmd.Flags().Changed("no-legend") {
		sc.Legend = !noLegend
	}
	if cmd.Flags().Changed("braided") {
		sc.Braided = braided
	}
	drawScene(sc)
	return nil
}

// drawScene plays and prints a scene. A discontinuity is reported on
// stderr, but whatever was deposited before it still gets rendered.
func drawScene(sc *config.Scene) {
	f := field.New(sc.Width, sc.Height)
	if err := scene.Play(f, sc); err != nil {
		var disc scene.Discontinuity
		if errors.As(err, &disc) {
			fmt.Fprintln(os.Stderr, disc.Error())
		}
	}
	fmt.Print(scene.Compose(f, sc))
}

func runWatch(cmd *cobra.Command, args []string) error {
	sc, err := resolveScene(args)
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewModel(sc, fps))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	sc, err := resolveScene(args)
	if err != nil {
		return err
	}
	f := field.New(sc.Width, sc.Height)
	if err := scene.Play(f, sc); err != nil {
		return fmt.Errorf("scene playback: %w", err)
	}
	fmt.Print(export.FieldSVG(f, svgScale))
	return nil
}
