/*
Command sigmac is the Sigma compiler driver.

Grounded on the teacher's main/main.go: the same REPL-by-default /
file-mode dispatch, the same --help/--version banner convention
(showHelp/showVersion), and the same panic-recovering execute step
(executeFileWithRecovery). Flag/subcommand parsing is rebuilt on
github.com/spf13/cobra instead of the teacher's hand-rolled os.Args
scanning, per SPEC_FULL.md's domain stack. Turning generated IR into a
native executable shells out to clang, mirroring main.go's
exec.Command("gcc", ...) / stdin-pipe pattern.
*/
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sigma-lang/sigmac/codegen"
	"github.com/sigma-lang/sigmac/diagnostics"
	"github.com/sigma-lang/sigmac/lexer"
	"github.com/sigma-lang/sigmac/parser"
	"github.com/sigma-lang/sigmac/repl"
	"github.com/sigma-lang/sigmac/sourcefile"
)

const (
	version = "v0.1.0"
	author  = "sigma-lang"
	license = "MIT"
	prompt  = "sigma >>> "
	banner  = `
   _____ _
  / ____(_)
 | (___  _  __ _ _ __ ___   __ _
  \___ \| |/ _' | '_ ' _ \ / _' |
  ____) | | (_| | | | | | | (_| |
 |_____/|_|\__, |_| |_| |_|\__,_|
            __/ |
           |___/
`
	line = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

var (
	flagRun    bool
	flagOutput string
	flagEmitIR bool
	flagTokens bool
	flagAST    bool
)

func main() {
	root := &cobra.Command{
		Use:     "sigmac [source file]",
		Short:   "Sigma — a whole-program AOT compiler for a small imperative language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRoot,
	}
	root.Flags().BoolVar(&flagRun, "run", false, "compile and immediately execute the program")
	root.Flags().StringVarP(&flagOutput, "output", "o", "", "write the compiled native executable to this path")
	root.Flags().BoolVar(&flagEmitIR, "emit-ir", false, "print the generated textual IR instead of compiling it further")
	root.Flags().BoolVar(&flagTokens, "tokens", false, "print the token stream and exit")
	root.Flags().BoolVar(&flagAST, "ast", false, "print the parsed AST and exit")

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		startRepl()
		return nil
	}
	return compileFile(args[0])
}

func startRepl() {
	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}

// compileFile drives the full pipeline over one source file, recovering
// from internal panics the way main/main.go:executeFileWithRecovery does,
// and rendering them as a Runtime Error diagnostic instead of a raw panic.
func compileFile(path string) (err error) {
	report := diagnostics.New()
	report.SetCurrentFile(path)

	defer func() {
		if recovered := recover(); recovered != nil {
			report.RuntimeError(fmt.Sprintf("%v", recovered))
			report.PrintErrors(os.Stderr, true)
			os.Exit(1)
		}
	}()

	src, readErr := sourcefile.Read(path)
	if readErr != nil {
		return readErr
	}

	lx := lexer.New(src, path, report)
	tokens := lx.Tokens()

	if flagTokens {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
		return nil
	}

	ps := parser.New(tokens, report)
	program := ps.Parse()

	if flagAST {
		if report.HadError() {
			report.PrintErrors(os.Stderr, true)
			os.Exit(1)
		}
		dumpAST(os.Stdout, program)
		return nil
	}

	if report.HadError() {
		report.PrintErrors(os.Stderr, true)
		os.Exit(1)
	}

	gen := codegen.New(report)
	module, ok := gen.Generate(program)
	if !ok {
		report.PrintErrors(os.Stderr, true)
		os.Exit(1)
	}

	ir := module.String()

	if flagEmitIR {
		fmt.Println(ir)
		return nil
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = "a.out"
	}
	if err := compileIRToExecutable(ir, outPath); err != nil {
		return err
	}

	if flagRun {
		return runExecutable(outPath)
	}
	cyanColor.Fprintf(os.Stdout, "wrote %s\n", outPath)
	return nil
}

// compileIRToExecutable invokes clang on the generated textual IR via
// stdin, exactly mirroring main.go's `exec.Command("gcc", ...)` /
// stdin-pipe pattern, just targeting `clang -x ir -` instead of
// `gcc -x assembler -`.
func compileIRToExecutable(ir, outPath string) error {
	cmd := exec.Command("clang", "-x", "ir", "-", "-o", outPath)
	cmd.Stdin = strings.NewReader(ir)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clang invocation failed: %w", err)
	}
	return nil
}

func runExecutable(path string) error {
	abs := path
	if len(abs) == 0 || abs[0] != '/' {
		abs = "./" + abs
	}
	cmd := exec.Command(abs)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		yellowColor.Fprintf(os.Stderr, "program exited with error: %v\n", err)
		return err
	}
	return nil
}
