package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tschijnmo/ccpoviz/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCommand builds the ccpoviz command. The heavy lifting happens
// in the app package; the command only turns flags into an app.Config.
func NewRootCommand(outW io.Writer) *cobra.Command {
	var (
		reader         string
		output         string
		keep           bool
		projectOption  string
		moleculeOption string
		logFormat      string
		logLevel       string
	)

	cmd := &cobra.Command{
		Use:   "ccpoviz FILE",
		Short: "Render a molecule from an input file with POV-Ray",
		Long: `ccpoviz reads a molecular structure from an input file, resolves the
plotting options from the built-in defaults and the project and molecule
level configuration, and renders the picture with POV-Ray.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFormat = strings.ToLower(logFormat)
			if logFormat != "text" && logFormat != "json" {
				return &ExitError{
					Code:    2,
					Message: "invalid log-format: must be 'text' or 'json'",
				}
			}

			logLevel = strings.ToLower(logLevel)
			switch logLevel {
			case "debug", "info", "warn", "error":
			default:
				return &ExitError{
					Code:    2,
					Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'",
				}
			}

			cfg, err := app.NewConfig(app.Config{
				InputFile:      args[0],
				Reader:         reader,
				OutputFile:     output,
				KeepScene:      keep,
				ProjectOption:  projectOption,
				MoleculeOption: moleculeOption,
				LogFormat:      logFormat,
				LogLevel:       logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			return app.NewApp(outW, cfg).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&reader, "reader", "r", "gjf",
		"The reader for the input file.")
	flags.StringVarP(&output, "output", "o", "",
		"The output file, default to the input file name with the extension changed to png.")
	flags.BoolVarP(&keep, "keep", "k", false,
		"Keep the POV-Ray input file after rendering.")
	flags.StringVarP(&projectOption, "project-option", "p", "",
		"The project level JSON/YAML/HCL configuration file.")
	flags.StringVarP(&moleculeOption, "molecule-option", "m", "",
		fmt.Sprintf(
			"The molecule level configuration file, can be set to %q to use the title of the input file.",
			app.TitleSentinel,
		))
	flags.StringVar(&logFormat, "log-format", "text",
		"Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", "info",
		"Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	cmd.SetOut(outW)
	return cmd
}

// Execute runs the command on the given arguments.
func Execute(args []string, outW io.Writer) error {
	cmd := NewRootCommand(outW)
	cmd.SetArgs(args)
	return cmd.Execute()
}
