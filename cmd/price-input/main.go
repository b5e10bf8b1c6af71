package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	priceinput "github.com/goliatone/go-price-input"
	"github.com/goliatone/go-price-input/tui"
)

type cliConfig struct {
	currency     string
	placeholder  string
	errorMessage string
	hintsPath    string
	format       string
	formatSet    bool
	logFile      string
	width        int
}

func main() {
	cfg := parseFlags()

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "price-input: %v\n", err)
	os.Exit(1)
}

func parseFlags() cliConfig {
	var cfg cliConfig

	flag.StringVar(&cfg.currency, "currency", priceinput.DefaultCurrency, "currency tag used to pick the placeholder (IRR, EUR, ...)")
	flag.StringVar(&cfg.placeholder, "placeholder", "", "placeholder override")
	flag.StringVar(&cfg.errorMessage, "error-message", "", "message shown for rejected input")
	flag.StringVar(&cfg.hintsPath, "hints", "", "path to a JSON or YAML hint catalog")
	flag.StringVar(&cfg.format, "format", "", "format the given amount and exit")
	flag.StringVar(&cfg.logFile, "log-file", "", "write debug logs to this file")
	flag.IntVar(&cfg.width, "width", 24, "input width")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			cfg.formatSet = true
		}
	})

	return cfg
}

func run(cfg cliConfig) error {
	if cfg.formatSet {
		fmt.Println(priceinput.FormatAmount(cfg.format))
		return nil
	}

	logger, err := newLogger(cfg.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	field, err := priceinput.NewField(
		priceinput.WithCurrency(cfg.currency),
		priceinput.WithPlaceholder(cfg.placeholder),
		priceinput.WithErrorMessage(cfg.errorMessage),
		priceinput.WithHintData(cfg.hintsPath),
		priceinput.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	input := tui.New(field,
		tui.WithFieldStyle(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)),
		tui.WithInputAttributes(tui.Width(cfg.width)),
	)

	final, err := tea.NewProgram(app{input: input}).Run()
	if err != nil {
		return fmt.Errorf("run input: %w", err)
	}

	result, ok := final.(app)
	if !ok {
		return errors.New("unexpected program model")
	}
	if result.cancelled {
		return nil
	}

	if value, ok := result.input.Field().Value(); ok {
		fmt.Println(value)
	}
	return nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

type app struct {
	input     tui.Model
	cancelled bool
}

func (a app) Init() tea.Cmd {
	return a.input.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return a, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			a.cancelled = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.input.View() + "\n\n(enter to accept, esc to cancel)\n"
}
