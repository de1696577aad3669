package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mjdavy/mandelbrot/internal/encode"
	"github.com/mjdavy/mandelbrot/internal/render"
	"github.com/mjdavy/mandelbrot/pkg/palette"
	"github.com/mjdavy/mandelbrot/pkg/plane"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mandelbrot",
	Short: "Render the Mandelbrot set to an image file",
	Long: `mandelbrot renders the Mandelbrot set as a raster image.

Every pixel is mapped onto the complex plane, iterated through z = z*z + c
until it escapes or the iteration cap is reached, and colored by the chosen
palette. Rows are rendered as parallel bands. The output format follows the
file extension (PNG, JPEG, GIF, TIFF or BMP); without an output file the
image is written as PNG to stdout so it can be piped.

Examples:
  # Render the default overview to a PNG file
  mandelbrot -o mandel.png

  # The classic frame at print resolution
  mandelbrot -o mandel.png -s 4000x3000 -u=-1.20,0.35 -l=-1,0.20

  # A named region with the smooth palette and a deeper iteration cap
  mandelbrot -o seahorse.png -r seahorse -p smooth -i 1000

  # Single-threaded grayscale render piped to a file
  mandelbrot -s 640x480 -m single -p gray > small.png

  # Also write the plane mapping sidecar next to the image
  mandelbrot -o poster.png -r elephant --plane-file`,
	Version: "1.0.0",
	Args:    cobra.NoArgs,
	RunE:    runRender,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mandelbrot.yaml)")

	// Output options
	rootCmd.Flags().StringP("output", "o", "", "output file (default: PNG to stdout)")
	rootCmd.Flags().Bool("plane-file", false, "write the plane mapping sidecar next to the output")

	// Raster options
	rootCmd.Flags().StringP("size", "s", "1200x800", "image size as WIDTHxHEIGHT")

	// Viewport options
	rootCmd.Flags().StringP("upper-left", "u", "-2,1", "viewport upper-left corner as RE,IM")
	rootCmd.Flags().StringP("lower-right", "l", "1,-1", "viewport lower-right corner as RE,IM")
	rootCmd.Flags().StringP("region", "r", "", "named region preset, overrides the corner flags")

	// Escape iteration options
	rootCmd.Flags().IntP("iterations", "i", 255, "iteration cap per pixel")
	rootCmd.Flags().Float64("radius", 2, "escape radius")

	// Coloring options
	rootCmd.Flags().StringP("palette", "p", "rainbow", "palette (gray|rainbow|smooth)")

	// Concurrency options
	rootCmd.Flags().StringP("mode", "m", "multi", "rendering mode (single|multi)")
	rootCmd.Flags().IntP("workers", "w", 0, "row bands rendered concurrently (default: number of CPUs)")

	// Bind flags to viper for root command
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("plane-file", rootCmd.Flags().Lookup("plane-file"))
	viper.BindPFlag("size", rootCmd.Flags().Lookup("size"))
	viper.BindPFlag("upper-left", rootCmd.Flags().Lookup("upper-left"))
	viper.BindPFlag("lower-right", rootCmd.Flags().Lookup("lower-right"))
	viper.BindPFlag("region", rootCmd.Flags().Lookup("region"))
	viper.BindPFlag("iterations", rootCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("radius", rootCmd.Flags().Lookup("radius"))
	viper.BindPFlag("palette", rootCmd.Flags().Lookup("palette"))
	viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mandelbrot" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mandelbrot")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(viper.GetString("size"))
	if err != nil {
		return err
	}

	view, err := viewportFromFlags()
	if err != nil {
		return err
	}

	iterations := viper.GetInt("iterations")
	if iterations <= 0 {
		return fmt.Errorf("iteration cap must be positive, got %d", iterations)
	}

	radius := viper.GetFloat64("radius")
	if radius <= 0 {
		return fmt.Errorf("escape radius must be positive, got %g", radius)
	}

	colorizer, err := colorizerFor(viper.GetString("palette"), iterations)
	if err != nil {
		return err
	}

	workers, err := workersFromFlags()
	if err != nil {
		return err
	}

	// Catch a missing output file before any pixel work happens.
	output := viper.GetString("output")
	if output == "" && encode.StdoutIsTerminal() {
		return fmt.Errorf("didn't specify output file and standard output is a terminal (use --output)")
	}

	px, py := view.PixelSize(width, height)
	fmt.Fprintf(os.Stderr, "==Viewport: %v to %v\n", view.UpperLeft, view.LowerRight)
	fmt.Fprintf(os.Stderr, "==Raster Size: %dx%d\n", width, height)
	fmt.Fprintf(os.Stderr, "==Pixel Size: x:%.17g y:%.17g\n", px, py)
	fmt.Fprintf(os.Stderr, "==Iteration Cap: %d\n", iterations)
	fmt.Fprintf(os.Stderr, "==Palette: %s\n", viper.GetString("palette"))
	fmt.Fprintf(os.Stderr, "==Workers: %d\n", workers)

	start := time.Now()
	buf, err := render.Render(render.Options{
		Width:     width,
		Height:    height,
		View:      view,
		Limit:     iterations,
		Radius:    radius,
		Workers:   workers,
		Colorizer: colorizer,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Rendered in %v\n", time.Since(start).Round(time.Millisecond))

	if err := encode.Write(buf, output); err != nil {
		return err
	}

	if viper.GetBool("plane-file") {
		if err := encode.WritePlaneFile(output, view, width, height); err != nil {
			return fmt.Errorf("failed to write plane file: %w", err)
		}
	}

	return nil
}

// viewportFromFlags resolves the plane region to render: a named preset when
// --region is given, the corner flags otherwise.
func viewportFromFlags() (plane.Viewport, error) {
	if name := viper.GetString("region"); name != "" {
		region, ok := plane.LookupRegion(name)
		if !ok {
			return plane.Viewport{}, fmt.Errorf("unknown region %q (run 'mandelbrot regions' to list them)", name)
		}
		return region.View, nil
	}

	ul, err := parseComplex(viper.GetString("upper-left"))
	if err != nil {
		return plane.Viewport{}, fmt.Errorf("invalid upper-left: %v", err)
	}
	lr, err := parseComplex(viper.GetString("lower-right"))
	if err != nil {
		return plane.Viewport{}, fmt.Errorf("invalid lower-right: %v", err)
	}
	return plane.Viewport{UpperLeft: ul, LowerRight: lr}, nil
}

// workersFromFlags turns the mode and workers flags into a band count:
// single mode always renders one band on the calling goroutine, multi mode
// uses the workers flag and falls back to the CPU count.
func workersFromFlags() (int, error) {
	switch mode := viper.GetString("mode"); mode {
	case "single":
		return 1, nil
	case "multi":
		workers := viper.GetInt("workers")
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		return workers, nil
	default:
		return 0, fmt.Errorf("unknown mode: %s (want single or multi)", mode)
	}
}

func colorizerFor(name string, limit int) (palette.Colorizer, error) {
	switch name {
	case "gray":
		return palette.NewGrayscale(limit), nil
	case "rainbow":
		return palette.NewRainbow(limit), nil
	case "smooth":
		return palette.NewSmooth(limit), nil
	default:
		return nil, fmt.Errorf("unknown palette: %s (want gray, rainbow or smooth)", name)
	}
}

// parseSize parses an image size given as "WIDTHxHEIGHT", e.g. "1200x800".
func parseSize(s string) (width, height int, err error) {
	lhs, rhs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q must be WIDTHxHEIGHT", s)
	}

	width, err = strconv.Atoi(strings.TrimSpace(lhs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in size %q: %v", s, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(rhs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in size %q: %v", s, err)
	}
	return width, height, nil
}

// parseComplex parses a complex number given as "RE,IM", e.g. "-1.20,0.35".
func parseComplex(s string) (complex128, error) {
	lhs, rhs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("complex number %q must be RE,IM", s)
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(lhs), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid real part in %q: %v", s, err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(rhs), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid imaginary part in %q: %v", s, err)
	}
	return complex(re, im), nil
}
