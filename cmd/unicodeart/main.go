package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nebbyJammin/unicodeart/unicodeart"
)

var rootCmd = &cobra.Command{
	Use:               "unicodeart [flags] <path-or-url>",
	Short:             "Tool for converting images to Unicode art",
	Args:              cobra.ExactArgs(1),
	Version:           "1.0.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: setup,
	RunE:              run,
}

var (
	outputPath        string
	outputWidth       int
	symbolAspectRatio float64
	charset           string
	invert            bool
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: standard output)")
	rootCmd.Flags().IntVarP(&outputWidth, "width", "w", 0, "output width in symbols (default: source image width)")
	rootCmd.Flags().Float64VarP(&symbolAspectRatio, "symbol-aspect-ratio", "s", unicodeart.DefaultSymbolAspectRatio, "height/width ratio of one terminal symbol")
	rootCmd.Flags().StringVarP(&charset, "charset", "c", unicodeart.DefaultCharset, "symbols to use, darkest to brightest")
	rootCmd.Flags().BoolVar(&invert, "invert", false, "reverse the charset, for light backgrounds")

	rootCmd.PersistentFlags().String("log-level", "warn", "verbosity of logging output")
	rootCmd.PersistentFlags().Bool("log-as-json", false, "change logging format to JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// One diagnostic line, no usage dump, no stack trace.
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup configures the process-wide logger from the persistent flags.
func setup(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("get log-level flag: %w", err)
	}

	logAsJSON, err := cmd.Flags().GetBool("log-as-json")
	if err != nil {
		return fmt.Errorf("get log-as-json flag: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var handler slog.Handler
	if logAsJSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func run(_ *cobra.Command, args []string) error {
	input := args[0]

	conv := unicodeart.New(
		unicodeart.WithWidth(outputWidth),
		unicodeart.WithSymbolAspectRatio(symbolAspectRatio),
		unicodeart.WithCharset(charset),
		unicodeart.WithInvert(invert),
	)

	img, err := conv.LoadImage(input)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	slog.Debug("image loaded",
		slog.String("source", input),
		slog.Int("width", bounds.Dx()),
		slog.Int("height", bounds.Dy()))

	start := time.Now()
	art := conv.Convert(img)
	slog.Debug("conversion finished", slog.Duration("took", time.Since(start)))

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(art), 0o644); err != nil {
			return &unicodeart.Error{Kind: unicodeart.FailedToWriteToOutput, Locator: outputPath}
		}
		return nil
	}

	fmt.Print(art)
	return nil
}
