// Command cssdecl parses CSS declarations from the command line or
// stdin and prints the resulting longhand assignments, one per line.
//
//	cssdecl "margin: 1px 2px" "flex: 2"
//	echo "background: url(a.png) 10px 20px / cover no-repeat, red" | cssdecl
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LadybirdBrowser/ladybird-sub002/css/validation"
)

var (
	propColor  = color.New(color.FgCyan)
	errColor   = color.New(color.FgRed, color.Bold)
	valueColor = color.New(color.FgGreen)
)

func main() {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "cssdecl [declaration...]",
		Short: "parse CSS declarations and print their longhand expansion",
		Long: "cssdecl validates 'property: value' declarations, expands shorthands\n" +
			"and prints one longhand assignment per line. Declarations are read\n" +
			"from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			decls := args
			if len(decls) == 0 {
				var err error
				decls, err = readStdin()
				if err != nil {
					return err
				}
			}
			failed := 0
			for _, decl := range decls {
				if !run(decl) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d invalid declaration(s)", failed)
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readStdin() ([]string, error) {
	var decls []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		for _, chunk := range strings.Split(scanner.Text(), ";") {
			if strings.TrimSpace(chunk) != "" {
				decls = append(decls, chunk)
			}
		}
	}
	return decls, scanner.Err()
}

func run(decl string) bool {
	out, err := validation.ParseDeclarationString(decl)
	if err != nil {
		errColor.Fprintf(os.Stderr, "error: %s\n", err)
		return false
	}
	for _, d := range out {
		propColor.Printf("%s", d.Name)
		fmt.Print(": ")
		valueColor.Printf("%v\n", d.Value)
	}
	return true
}
