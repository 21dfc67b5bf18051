package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/acrotex"
	"pkt.systems/acrotex/internal/logging"
	"pkt.systems/version"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func init() {
	version.SetDefaultModule("pkt.systems/acrotex")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath  string
	output      string
	escape      bool
	themeName   string
	listThemes  bool
	width       int
	color       string
	osc8        string
	quiet       bool
	delimiter   string
	mkdir       bool
	jobs        int
	missing     []string
	logLevel    string
	logFormat   string
	timeout     time.Duration
	showVersion bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("acrotex", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default ./"+acrotex.ConfigFileName+" if present)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default: input name with .tex extension)")
	flags.BoolVar(&opts.escape, "escape", false, "Escape LaTeX reserved characters in every field")
	flags.StringVarP(&opts.themeName, "theme", "t", "default", "Preview theme")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview wrap width (0 uses terminal width if available)")
	flags.StringVar(&opts.color, "color", "auto", "Colorize preview: auto|always|never")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlink to the written file: auto|on|off")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the preview")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", ",", `CSV field separator (use "tab" for TSV)`)
	flags.BoolVar(&opts.mkdir, "mkdir", false, "Create missing directories for the output file")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "Format entries on up to N goroutines")
	flags.StringSliceVar(&opts.missing, "missing", nil, "Cell values treated as absent (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for http(s) inputs (0 disables)")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: acrotex [flags] [input.csv]\n")
		fmt.Fprintln(stderr, "\nConverts a CSV acronym list into LaTeX \\DeclareAcronym blocks.")
		fmt.Fprintln(stderr, "If no input is provided, acroList.csv in the working directory is used.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}
	if opts.listThemes {
		printThemes(stdout)
		return exitOK
	}

	logger := logging.Setup(stderr, opts.logLevel, opts.logFormat)

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg, flags, opts)
	if rest := flags.Args(); len(rest) > 1 {
		fmt.Fprintf(stderr, "expected at most one input, got %d\n\n", len(rest))
		flags.Usage()
		return exitUsage
	} else if len(rest) == 1 {
		cfg.Input = rest[0]
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid settings: %v\n", err)
		return exitUsage
	}

	colorize, err := resolveAutoFlag(opts.color, isTerminal(stdout), "always", "never")
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", opts.color, err)
		return exitUsage
	}
	osc8, err := resolveAutoFlag(opts.osc8, isTerminal(stdout) && acrotex.DetectOSC8Support(), "on", "off")
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return exitUsage
	}
	theme := acrotex.PlainTheme()
	if colorize {
		theme, _ = acrotex.ThemeByName(cfg.Theme)
	}
	view := acrotex.PreviewOptions{
		Theme: theme,
		Width: resolveWidth(cfg.Width, stdout),
		OSC8:  osc8,
	}

	output := resolveOutput(cfg.Input, cfg.Output)
	logger.Debug("converting", slog.String("input", cfg.Input), slog.String("output", output))

	req := acrotex.ConvertRequest{
		PreviewOptions: view,
		Load:           cfg.LoadOptions(),
		Format:         cfg.FormatOptions(),
		Logger:         logger,
		Client:         &http.Client{Timeout: opts.timeout},
	}
	if !opts.quiet {
		req.Preview = stdout
	}
	res, err := acrotex.ConvertFile(ctx, cfg.Input, output, req, acrotex.WithMkdir(opts.mkdir))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", errorKind(err), err)
		return exitFailure
	}
	if err := acrotex.WriteSummary(stdout, res.Count, output, view); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	return exitOK
}

func loadConfig(path string, logger *slog.Logger) (*acrotex.Config, error) {
	if path != "" {
		return acrotex.LoadConfigFile(acrotex.NormalizePath(path))
	}
	cfg, err := acrotex.LoadConfigFile(acrotex.ConfigFileName)
	if err == nil {
		logger.Debug("loaded project config", slog.String("path", acrotex.ConfigFileName))
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return acrotex.DefaultConfig(), nil
	}
	return nil, err
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cfg *acrotex.Config, flags *pflag.FlagSet, opts options) {
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("escape") {
		cfg.Escape = opts.escape
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.themeName
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("missing") {
		cfg.Missing = opts.missing
	}
}

// resolveOutput returns the .tex path for input unless output is set. A
// leading ~ is expanded in both, since config values never see a shell.
func resolveOutput(input, output string) string {
	if strings.TrimSpace(output) == "" {
		output = acrotex.OutputPath(input)
	}
	return acrotex.NormalizePath(output)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, acrotex.ErrInputNotFound):
		return "input not found"
	case errors.Is(err, acrotex.ErrMalformedInput):
		return "malformed input"
	case errors.Is(err, acrotex.ErrOutputWrite):
		return "output write error"
	default:
		return "error"
	}
}

func printThemes(w io.Writer) {
	for _, name := range acrotex.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
			return tw
		}
	}
	return 0
}

func resolveAutoFlag(mode string, auto bool, on, off string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return auto, nil
	case on, "true", "1", "yes":
		return true, nil
	case off, "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|%s|%s", on, off)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
