package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/earley/driver"
	"github.com/nihei9/earley/spec/grammar/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var recognizeFlags = struct {
	maxPasses *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "recognize [<session file path>]",
		Short: "Decide whether a grammar derives words",
		Long: `recognize reads a session consisting of a grammar and words, and prints Yes or No for each word.
When the session file path is omitted, the session is read from stdin.`,
		Example: `  cat session.txt | earley recognize`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRecognize,
	}
	recognizeFlags.maxPasses = cmd.Flags().Int("max-passes", 0, "the maximum number of passes per layer (0 means no limit)")
	rootCmd.AddCommand(cmd)
}

func runRecognize(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	gram, ast, err := readSession(path)
	if err != nil {
		return err
	}

	log := commonlog.GetLogger("earley.recognize")
	opts := []driver.RecognizerOption{
		driver.MaxPasses(*recognizeFlags.maxPasses),
	}
	if *rootFlags.verbose >= 2 {
		opts = append(opts, driver.Trace(driver.NewLogTraceActionSet(log)))
	}
	r, err := driver.NewRecognizer(gram, opts...)
	if err != nil {
		return err
	}

	return writeVerdicts(os.Stdout, r, ast.Words, log)
}

// writeVerdicts prints Yes or No for each word in order.
func writeVerdicts(out io.Writer, r *driver.Recognizer, words []*parser.WordNode, log commonlog.Logger) error {
	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, word := range words {
		accepted, err := r.Recognize(word.Text)
		if err != nil {
			return fmt.Errorf("Cannot recognize the word %q: %w", word.Text, err)
		}
		log.Infof("%q: accepted: %v", word.Text, accepted)
		if accepted {
			fmt.Fprintln(w, "Yes")
		} else {
			fmt.Fprintln(w, "No")
		}
	}

	return nil
}
