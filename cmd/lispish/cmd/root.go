package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/lispish/internal/config"
)

// errInvalidInput is returned once the "invalid input" message was printed.
var errInvalidInput = errors.New("invalid input")

type options struct {
	cfgFile  string
	verbose  bool
	tokens   bool
	tree     bool
	maxDepth int
	column   int
}

// NewRootCommand creates the lispish command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lispish [file]",
		Short: "Tokenize and parse s-expression programs",
		Long: `lispish reads a program written in a minimal s-expression syntax,
prints its tokens and its parse tree.

The program is read from the given file, or from standard input when no file
or "-" is given. Invalid programs are reported and make lispish exit with
status 1.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().BoolVar(&opts.tokens, "tokens", true, "Print the tokens")
	rootCmd.Flags().BoolVar(&opts.tree, "tree", true, "Print the parse tree")
	rootCmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum list nesting depth, 0 means unlimited")
	rootCmd.Flags().IntVar(&opts.column, "column", 0, "Column where lexemes start in the parse tree")

	return rootCmd
}

// Execute runs the lispish command.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, errInvalidInput) {
		printError(err)
	}
	return err
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logger := log.New(io.Discard, "lispish: ", log.LstdFlags)
	if opts.verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	src, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if err := check(cmd.OutOrStdout(), logger, cfg, src); err != nil {
		logger.Printf("%v", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Threw an exception on invalid input.")
		return errInvalidInput
	}

	return nil
}

// loadConfig applies the config file on top of the defaults, then the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tokens") {
		cfg.Output.Tokens = opts.tokens
	}
	if flags.Changed("tree") {
		cfg.Output.Tree = opts.tree
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = opts.maxDepth
	}
	if flags.Changed("column") {
		cfg.Printer.Column = opts.column
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return src, nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return src, nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
