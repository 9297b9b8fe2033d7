// Package cli is the command-line driver: it resolves input sources, runs
// the sampling-and-decision pipeline per source and prints one line per
// successfully processed source to stdout. Diagnostics go to stderr only.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/classifier/lingua"
	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/classifier/whatlang"
	configfile "github.com/custodia-labs/whatlang-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/names"
	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/sniffer"
	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whatlang-cli/internal/core/services"
	"github.com/custodia-labs/whatlang-cli/internal/format"
	"github.com/custodia-labs/whatlang-cli/internal/logger"
	"github.com/custodia-labs/whatlang-cli/internal/sample"
)

const version = "1.0.0"

var (
	sampleSize   int
	languageSet  string
	fallbackCode string
	fallbackName string
	outputFormat string
	engineName   string
	verbose      bool
)

// stdinIsTerminal is swapped out in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "whatlang [files...]",
	Short: "Detect the language of text files or stdin",
	Long: `Identifies the natural language of text content from files or standard
input, reporting a language code, full name and confidence score.

Each file argument is processed independently; a failing file is reported
on stderr and skipped without aborting the rest. With no file arguments,
text piped or redirected to stdin is processed instead.`,
	Example: `  whatlang notes.txt
  cat notes.txt | whatlang --format json
  whatlang -L en,fr,es -n 1024 *.txt`,
	Args:          cobra.ArbitraryArgs,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDetect,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&sampleSize, "sample-size", "n", domain.DefaultSampleBytes,
		fmt.Sprintf("number of bytes to examine (min: %d, max: %d)", domain.MinSampleBytes, domain.MaxSampleBytes))
	flags.StringVarP(&languageSet, "language-set", "L", "",
		`comma-separated language codes to restrict detection to (e.g. "en,fr,es")`)
	flags.StringVarP(&fallbackCode, "fallback-langcode", "f", domain.DefaultFallbackCode,
		"language code to report when detection fails")
	flags.StringVarP(&fallbackName, "fallback-langname", "F", domain.DefaultFallbackName,
		"language name to report when detection fails")
	flags.StringVar(&outputFormat, "format", string(format.Text),
		"output format: text, json, csv or bash")
	flags.StringVar(&engineName, "engine", "lingua",
		"detection engine: lingua or whatlang")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"show processing details on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runDetect(cmd *cobra.Command, args []string) error {
	// Direct CLI invocation: diagnostics on.
	logger.SetWarnings(true)
	logger.SetVerbose(verbose)

	applyConfig(cmd)

	outFormat, err := format.Parse(outputFormat)
	if err != nil {
		return err
	}

	classifier, err := newClassifier(engineName)
	if err != nil {
		return err
	}
	detector := services.NewDetectionService(classifier, names.NewDisplay())
	reader := sample.NewReader(sniffer.NewChardet())

	size := domain.ClampSampleSize(sampleSize)
	if size != sampleSize {
		logger.Debug("sample size adjusted to %d bytes", size)
	}

	allowed := splitLanguageSet(languageSet)
	if len(allowed) > 0 {
		logger.Debug("restricting to languages: %s", strings.Join(allowed, ", "))
	}

	if len(args) > 0 {
		for _, path := range args {
			processFile(cmd.OutOrStdout(), reader, detector, path, size, allowed, outFormat)
		}
		return nil
	}

	if !stdinIsTerminal() {
		return processStdin(cmd.OutOrStdout(), cmd.InOrStdin(), reader, detector, size, allowed, outFormat)
	}

	// No files and nothing piped in.
	_ = cmd.Help()
	return domain.ErrNoInput
}

// processFile runs the pipeline for one file. Failures are reported on the
// diagnostic channel and produce no output line; subsequent files still run.
func processFile(
	out io.Writer, reader *sample.Reader, detector driving.LanguageDetector,
	path string, size int, allowed []string, outFormat format.Format,
) {
	logger.Debug("processing %s (min %d, max %d bytes)...", path, domain.MinSampleBytes, size)

	smp, err := reader.ReadFile(path, size)
	if err != nil {
		logger.Warn("error processing %s: %v", path, err)
		return
	}

	res := detector.Detect(domain.Request{
		Text:             smp.Text,
		AllowedLanguages: allowed,
		FallbackCode:     fallbackCode,
		FallbackName:     fallbackName,
	})
	logger.Debug("detection result: %s (%s) with %.2f confidence", res.Code, res.Name, res.Confidence)

	line, err := format.Render(smp.SourceLabel, res, outFormat)
	if err != nil {
		logger.Warn("error formatting result for %s: %v", path, err)
		return
	}
	fmt.Fprintln(out, line)
}

func processStdin(
	out io.Writer, in io.Reader, reader *sample.Reader, detector driving.LanguageDetector,
	size int, allowed []string, outFormat format.Format,
) error {
	logger.Debug("reading from stdin (min %d, max %d bytes)...", domain.MinSampleBytes, size)

	smp, err := reader.ReadStdin(in, size)
	if err != nil {
		return err
	}

	res := detector.Detect(domain.Request{
		Text:             smp.Text,
		AllowedLanguages: allowed,
		FallbackCode:     fallbackCode,
		FallbackName:     fallbackName,
	})
	logger.Debug("detection result: %s (%s) with %.2f confidence", res.Code, res.Name, res.Confidence)

	line, err := format.Render("", res, outFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, line)
	return nil
}

func newClassifier(engine string) (driven.Classifier, error) {
	switch engine {
	case "", "lingua":
		return lingua.New(), nil
	case "whatlang":
		return whatlang.New(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (expected lingua or whatlang)", engine)
	}
}

// applyConfig fills in defaults from the optional config file for every flag
// the user did not set explicitly.
func applyConfig(cmd *cobra.Command) {
	settings, err := configfile.Load("")
	if err != nil {
		logger.Debug("config load failed: %v", err)
		return
	}

	flags := cmd.Flags()
	if !flags.Changed("engine") && settings.Engine != "" {
		engineName = settings.Engine
	}
	if !flags.Changed("format") && settings.Format != "" {
		outputFormat = settings.Format
	}
	if !flags.Changed("sample-size") && settings.SampleSize > 0 {
		sampleSize = settings.SampleSize
	}
	if !flags.Changed("fallback-langcode") && settings.FallbackCode != "" {
		fallbackCode = settings.FallbackCode
	}
	if !flags.Changed("fallback-langname") && settings.FallbackName != "" {
		fallbackName = settings.FallbackName
	}
}

func splitLanguageSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	codes := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}
