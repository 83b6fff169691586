package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	spec "github.com/nihei9/earley/spec/grammar"
	"github.com/spf13/cobra"
)

var describeFlags = struct {
	json *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe [<grammar file path>]",
		Short:   "Print a grammar in readable format",
		Example: `  earley describe grammar.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDescribe,
	}
	describeFlags.json = cmd.Flags().Bool("json", false, "print the description in JSON format")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	gram, _, err := readSession(path)
	if err != nil {
		return err
	}

	report := gram.Describe()
	if *describeFlags.json {
		b, err := json.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%v\n", string(b))
		return nil
	}

	return writeDescription(os.Stdout, report)
}

const descTemplate = `# Start Symbol

{{ .Start }}

# Non-terminals

{{ range .NonTerminals -}}
{{ printNonTerminal . }}
{{ end }}
# Terminals

{{ range .Terminals -}}
{{ .Name }}
{{ end }}
# Productions

{{ range .Productions -}}
{{ printProduction . }}
{{ end }}`

func writeDescription(w io.Writer, report *spec.Report) error {
	fns := template.FuncMap{
		"printNonTerminal": func(nonTerm *spec.NonTerminal) string {
			if nonTerm.Nullable {
				return fmt.Sprintf("%v (nullable)", nonTerm.Name)
			}
			return nonTerm.Name
		},
		"printProduction": func(prod *spec.Production) string {
			if prod.RHS == "" {
				return fmt.Sprintf("%4v %v → ε", prod.Number, prod.LHS)
			}
			return fmt.Sprintf("%4v %v → %v", prod.Number, prod.LHS, prod.RHS)
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, report)
}
