package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var rootFlags = struct {
	verbose *int
}{}

var rootCmd = &cobra.Command{
	Use:   "earley",
	Short: "Recognize words of a context-free grammar using the Earley algorithm",
	Long: `earley provides the following features:
- Decides whether a grammar derives each word of a session.
- Prints the chart built while recognizing a word.
  This feature is primarily aimed at debugging the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(*rootFlags.verbose, nil)
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().CountP("verbose", "v", "increase the verbosity of the log written to stderr (repeatable)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
