// Package main provides the CLI entrypoint for resource-assembler.
//
// resource-assembler reads records (JSON or YAML) and prints the assembled
// document:
//   - resources typed by a registry configuration or inferred from the records
//   - relationship references wrapped as {"data": ...}
//   - related resources side-loaded under "included"
//
// With -check it validates the registry configuration instead.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"resource-assembler/internal/extract"
	"resource-assembler/internal/resource"
	"resource-assembler/internal/spec"
)

const usage = `Assemble records into a resource document

USAGE:
    resource-assembler -type <type> [-config <file>] [-input <file>] [flags]
    resource-assembler -check -config <file>

FLAGS:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "resource-assembler: %v\n", err)
		}

		os.Exit(1)
	}
}

// includeFlag tracks whether -include was given at all, since an empty
// value disables side-loading while an absent flag keeps the default.
type includeFlag struct {
	set   bool
	paths []string
}

func (f *includeFlag) String() string {
	return strings.Join(f.paths, ",")
}

func (f *includeFlag) Set(value string) error {
	f.set = true
	f.paths = f.paths[:0]

	for path := range strings.SplitSeq(value, ",") {
		if path = strings.TrimSpace(path); path != "" {
			f.paths = append(f.paths, path)
		}
	}

	return nil
}

type cliOptions struct {
	config   string
	typ      string
	input    string
	include  includeFlag
	check    bool
	dump     bool
	fallback bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("resource-assembler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "registry configuration `file` (YAML)")
	fs.StringVar(&opts.typ, "type", "", "resource `type` of the input records")
	fs.StringVar(&opts.input, "input", "-", "records `file` (JSON or YAML); - reads stdin")
	fs.Var(&opts.include, "include", "comma-separated included `paths`; empty disables side-loading")
	fs.BoolVar(&opts.check, "check", false, "validate the configuration and print diagnostics")
	fs.BoolVar(&opts.dump, "dump", false, "dump the document structure instead of JSON")
	fs.BoolVar(&opts.fallback, "fallback", false, "infer relationship types missing from the registry")
	fs.BoolVar(&opts.verbose, "v", false, "log debug records to stderr")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose)

	var cfg *spec.Config

	if opts.config != "" {
		if cfg, err = spec.LoadFile(opts.config); err != nil {
			return err
		}

		logger.Debug("configuration loaded", "path", opts.config, "types", cfg.TypeNames())
	}

	if opts.check {
		if cfg == nil {
			return errors.New("-check requires -config")
		}

		return check(cfg, stdout)
	}

	if opts.typ == "" {
		return errors.New("-type is required")
	}

	builder, err := newBuilder(cfg, opts)
	if err != nil {
		return err
	}

	records, err := readRecords(opts.input, stdin)
	if err != nil {
		return err
	}

	policy := extract.StoreUnset
	if opts.fallback {
		policy = extract.StoreFallback
	}

	doc, err := builder.Serialize(records, extract.WithLogger(logger), extract.WithStorePolicy(policy))
	if err != nil {
		return err
	}

	logger.Debug("document assembled", "type", opts.typ, "included", len(doc.Included))

	if opts.dump {
		spew.Fdump(stdout, doc)
		return nil
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// newBuilder returns the registered builder for the type when there is one,
// otherwise a builder inferring everything and resolving relationship types
// through the registry.
func newBuilder(cfg *spec.Config, opts *cliOptions) (resource.Builder, error) {
	builder := resource.New(opts.typ)

	if cfg != nil {
		registry, err := resource.NewRegistryFromConfig(cfg)
		if err != nil {
			return resource.Builder{}, err
		}

		if registry.Has(opts.typ) {
			if builder, err = registry.CreateResource(opts.typ); err != nil {
				return resource.Builder{}, err
			}
		} else {
			builder = builder.WithRegistry(registry)
		}
	}

	if opts.include.set {
		builder = builder.WithIncluded(opts.include.paths...)
	}

	return builder, nil
}

func check(cfg *spec.Config, w io.Writer) error {
	res := spec.Validate(cfg)

	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		return fmt.Errorf("configuration has %d error(s)", len(res.Errors))
	}

	if len(res.All()) == 0 {
		fmt.Fprintln(w, "configuration is valid")
	}

	return nil
}

// readRecords decodes a record or a sequence of records. JSON input is
// decoded by the YAML parser as well.
func readRecords(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	return records, nil
}
