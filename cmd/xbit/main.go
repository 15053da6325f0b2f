// xbit - custom bit-manipulation instruction demonstrator
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colorfulnotion/xbit/common"
	"github.com/colorfulnotion/xbit/demo"
	log "github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/vectors"
	"github.com/colorfulnotion/xbit/xbiterrors"
	"github.com/colorfulnotion/xbit/xcore"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error(log.CLIMonitoring, "command failed", "code", xbiterrors.GetErrorCodeWithName(err), "desc", xbiterrors.GetErrorDesc(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	cfg := demo.DefaultConfig()
	var (
		logLevel     string
		debugModules string
		trace        bool
		minimal      bool
	)

	var rootCmd = &cobra.Command{
		Use:   "xbit",
		Short: "Custom bit-manipulation instruction demonstrator",
		Long: `Runs bit reversal, rotate-right and rotate-left against fixed inputs,
either in software or on an emulated core executing the custom-1 instructions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				xcore.Trace = true
				debugModules += "," + log.XCoreMonitoring
				if logLevel == "info" {
					logLevel = "debug"
				}
			}
			if err := log.InitLoggerTo(errOut, logLevel, errOut == os.Stderr); err != nil {
				return err
			}
			log.EnableModules(debugModules)
			log.Debug(log.CLIMonitoring, "starting", "cmd", cmd.Name(), "version", Version)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if minimal {
				cfg.Variant = demo.VariantMinimal
			}
			return demo.Run(out, cfg)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, crit)")
	rootCmd.PersistentFlags().StringVar(&debugModules, "debug", "", "Comma separated log modules to enable (xcore_mod, demo_mod, vec_mod, cli_mod, all)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Trace every instruction executed on the emulated core")
	rootCmd.Flags().BoolVar(&minimal, "minimal", false, "Print only the bit reversal result")
	rootCmd.Flags().StringVar(&cfg.Engine, "engine", demo.EngineSoftware, "Evaluation engine (soft, xcore)")

	rootCmd.AddCommand(newEvalCmd(out), newISACmd(out), newVerifyCmd(out), newConsoleCmd(out), newVersionCmd(out))
	return rootCmd
}

func newEvalCmd(out io.Writer) *cobra.Command {
	var showBin bool
	var evalCmd = &cobra.Command{
		Use:   "eval <op> <value> [shift]",
		Short: "Evaluate one primitive (bitrev|rev, rotr|right, rotl|left)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := demo.Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
			if showBin {
				v, err := common.ParseUint32(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, common.FormatBin32(v))
			}
			return nil
		},
	}
	evalCmd.Flags().BoolVar(&showBin, "bin", false, "Also print the result in binary")
	return evalCmd
}

func newISACmd(out io.Writer) *cobra.Command {
	var decode []string
	var isaCmd = &cobra.Command{
		Use:   "isa",
		Short: "List the custom-1 bit-manipulation instructions or decode words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(decode) == 0 {
				fmt.Fprint(out, xcore.ISATree().String())
				return nil
			}
			for _, s := range decode {
				word, err := common.ParseUint32(s)
				if err != nil {
					return fmt.Errorf("%w: %q", xbiterrors.ErrEBadNumber, s)
				}
				inst, err := xcore.Decode(word)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "0x%08X  %s\n", word, inst)
			}
			return nil
		},
	}
	isaCmd.Flags().StringSliceVar(&decode, "decode", nil, "Instruction words to decode")
	return isaCmd
}

func newVerifyCmd(out io.Writer) *cobra.Command {
	var color bool
	var verifyCmd = &cobra.Command{
		Use:   "verify <vectors.json>",
		Short: "Check the primitives against a JSON test vector file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := vectors.Load(args[0])
			if err != nil {
				return err
			}
			results := vectors.Evaluate(vs)
			for _, r := range results {
				status := common.Colorize(color, common.ColorGreen, "PASS")
				if !r.Pass {
					status = common.Colorize(color, common.ColorRed, "FAIL")
				}
				fmt.Fprintf(out, "%s %s: %s\n", status, r.Name, describe(r))
			}
			failed := vectors.Failed(results)
			summary := fmt.Sprintf("%d/%d vectors passed", len(results)-len(failed), len(results))
			if len(failed) == 0 {
				fmt.Fprintln(out, common.Colorize(color, common.ColorGreen, summary))
				log.Info(log.CLIMonitoring, "vectors verified", "file", args[0], "count", len(results))
				return nil
			}
			fmt.Fprintln(out, common.Colorize(color, common.ColorYellow, summary))
			var errs []error
			for _, r := range failed {
				if r.Err != nil {
					errs = append(errs, r.Err)
				}
			}
			log.Warn(log.CLIMonitoring, "vectors failed", "file", args[0], "failed", len(failed), "errors", xbiterrors.GetErrorNames(errs))
			diff, _, err := vectors.Diff(results, color)
			if err != nil {
				return err
			}
			fmt.Fprint(out, diff)
			return fmt.Errorf("%d vector(s) failed: %w", len(failed), xbiterrors.ErrVMismatch)
		},
	}
	verifyCmd.Flags().BoolVar(&color, "color", false, "Colour PASS/FAIL, the summary and the diff")
	return verifyCmd
}

func describe(r vectors.Result) string {
	var call string
	if r.Op == demo.OpBitReverse {
		call = fmt.Sprintf("%s(%s)", r.Op, common.FormatHex32(r.Input))
	} else {
		call = fmt.Sprintf("%s(%s, %d)", r.Op, common.FormatHex32(r.Input), r.Shift)
	}
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", call, r.Err)
	}
	if r.Pass {
		return fmt.Sprintf("%s = %s", call, common.FormatHex32(r.Actual))
	}
	return fmt.Sprintf("%s = %s, expected %s", call, common.FormatHex32(r.Actual), common.FormatHex32(r.Expected))
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if commit == "none" {
				commit = common.GetCommitHash()
			}
			fmt.Fprintf(out, "xbit %s (commit %s, built %s)\n", Version, commit, BuildTime)
		},
	}
}
