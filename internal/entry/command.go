package entry

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jsdraven/FFI_Tools_GoLang/internal/config"
	"github.com/jsdraven/FFI_Tools_GoLang/internal/invocation"
)

// NewCommand builds the ffilog root command. The marker goes to stdout;
// cobra's own error and usage output, and the console mirror, go to the
// command's error writer.
func NewCommand(cfg *config.Config, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffilog",
		Short: "Print the harness marker and append a debug line to the log file",
		Long: "ffilog is called from a contract test harness. It prints a fixed 0x-prefixed\n" +
			"32-byte hex value with no trailing newline and appends\n" +
			"\"<text> <total> <p0> <p1> <p2> <p3>\" to the log file.",
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags parsed; from here on failures are not usage errors.
			cmd.SilenceUsage = true
			return Run(cmd.Context(), cfg, recordFrom(cmd.Flags()), stdout, cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.String("text", "", "free-form label")
	fs.String("total", "", "total value")
	fs.String("p0", "", "parameter 0")
	fs.String("p1", "", "parameter 1")
	fs.String("p2", "", "parameter 2")
	fs.String("p3", "", "parameter 3")
	fs.Int("i", 0, "call index")
	return cmd
}

// recordFrom keeps only the flags that were actually passed.
func recordFrom(fs *pflag.FlagSet) invocation.Record {
	str := func(name string) *string {
		if !fs.Changed(name) {
			return nil
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil
		}
		return &v
	}

	rec := invocation.Record{
		Text:  str("text"),
		Total: str("total"),
		P0:    str("p0"),
		P1:    str("p1"),
		P2:    str("p2"),
		P3:    str("p3"),
	}
	if fs.Changed("i") {
		if v, err := fs.GetInt("i"); err == nil {
			rec.Index = &v
		}
	}
	return rec
}
