package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/colorfulnotion/xbit/bitops"
	"github.com/colorfulnotion/xbit/common"
	"github.com/colorfulnotion/xbit/demo"
	"github.com/dop251/goja"
	"github.com/spf13/cobra"
)

func newConsoleCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive console (expressions like 'rotr 0xC0002003 4' or JavaScript)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(out)
		},
	}
}

func runConsole(out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "xbit> ",
		HistoryFile: filepath.Join(os.TempDir(), "xbit_console_history.txt"),
		Stdout:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	vm := newConsoleVM()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// io.EOF on ctrl-d
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return nil
		}
		result, err := evalConsoleLine(vm, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

// newConsoleVM returns a JavaScript runtime with the primitives bound as
// bitrev(v), rotr(v, s), rotl(v, s), hex(v) and bin(v).
func newConsoleVM() *goja.Runtime {
	vm := goja.New()
	vm.Set("bitrev", func(v int64) int64 {
		return int64(bitops.BitReverse32(uint32(v)))
	})
	vm.Set("rotr", func(v, s int64) int64 {
		return int64(bitops.RotateRight32(uint32(v), uint32(s)))
	})
	vm.Set("rotl", func(v, s int64) int64 {
		return int64(bitops.RotateLeft32(uint32(v), uint32(s)))
	})
	vm.Set("hex", func(v int64) string {
		return common.FormatHex32(uint32(v))
	})
	vm.Set("bin", func(v int64) string {
		return common.FormatBin32(uint32(v))
	})
	return vm
}

// evalConsoleLine evaluates "<op> <value> [shift]" expressions directly and
// hands anything else to the JavaScript runtime.
func evalConsoleLine(vm *goja.Runtime, line string) (string, error) {
	if line == "" {
		return "", nil
	}
	if fields := strings.Fields(line); len(fields) > 1 {
		if _, ok := demo.CanonicalOp(fields[0]); ok {
			return demo.Eval(line)
		}
	}
	v, err := vm.RunString(line)
	if err != nil {
		return "", err
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return "", nil
	}
	return fmt.Sprint(v.Export()), nil
}
