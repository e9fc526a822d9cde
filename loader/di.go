package loader

import (
	"errors"
	"fmt"
	"os"

	krona "github.com/0xalexb/krona-config"
	"github.com/0xalexb/krona-config/loader/file"
	"github.com/0xalexb/krona-config/logging"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ModuleOption configures an Fx configuration module.
type ModuleOption func(*moduleOptions)

type moduleOptions struct {
	sourcePath   string
	logLevel     string
	validateOpts []krona.ValidateOption
}

// WithFile makes the module read its configuration from the given file,
// selecting the parser from the file extension. Without it, Fetcher and
// Parser must be provided externally.
func WithFile(path string) ModuleOption {
	return func(opts *moduleOptions) {
		opts.sourcePath = path
	}
}

// WithLogLevel sets the log level for the module's own logging.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) ModuleOption {
	return func(opts *moduleOptions) {
		opts.logLevel = level
	}
}

// WithValidateOptions passes options through to the Validate call.
func WithValidateOptions(validateOpts ...krona.ValidateOption) ModuleOption {
	return func(opts *moduleOptions) {
		opts.validateOpts = append(opts.validateOpts, validateOpts...)
	}
}

// NewModule creates an Fx module that loads a configuration source,
// validates it against schema, and supplies the normalized tree to DI
// under the given name tag. Call multiple times with different names to
// supply several independent configuration trees.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, schema krona.Schema, opts ...ModuleOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options moduleOptions

	for _, apply := range opts {
		apply(&options)
	}

	var moduleOpts []fx.Option

	if options.sourcePath != "" {
		moduleOpts = append(moduleOpts, fx.Provide(
			func() (Fetcher, error) {
				fetcher, err := file.New(options.sourcePath)
				if err != nil {
					return nil, err
				}

				return fetcher, nil
			},
			func() (Parser, error) {
				return ParserFor(options.sourcePath)
			},
		))
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: options.logLevel}, os.Stderr)

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(parser Parser, fetcher Fetcher) (krona.Tree, error) {
				tree, err := Provider(schema, options.validateOpts...)(parser, fetcher)
				if err != nil {
					logger.Error("configuration rejected", "name", name, "error", err)

					return nil, err
				}

				logger.Debug("configuration supplied", "name", name)

				return tree, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))

	return fx.Module(name, moduleOpts...)
}
