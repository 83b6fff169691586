package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nihei9/earley/driver"
	"github.com/spf13/cobra"
)

var chartFlags = struct {
	json  *bool
	trace *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "chart <grammar file path> [<word>]",
		Short: "Print the chart built while recognizing a word",
		Long: `chart recognizes a word and prints every layer of the chart.
When the word is omitted, the empty word is recognized.`,
		Example: `  earley chart grammar.txt aabb`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runChart,
	}
	chartFlags.json = cmd.Flags().Bool("json", false, "print the chart in JSON format")
	chartFlags.trace = cmd.Flags().Bool("trace", false, "print each operation before the chart")
	rootCmd.AddCommand(cmd)
}

func runChart(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	gram, _, err := readSession(args[0])
	if err != nil {
		return err
	}
	var word string
	if len(args) > 1 {
		word = args[1]
	}

	var opts []driver.RecognizerOption
	if *chartFlags.trace {
		opts = append(opts, driver.Trace(driver.NewTextTraceActionSet(os.Stdout)))
	}
	r, err := driver.NewRecognizer(gram, opts...)
	if err != nil {
		return err
	}
	c, err := r.Parse(word)
	if err != nil {
		return err
	}

	if *chartFlags.json {
		b, err := json.Marshal(c.Report())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%v\n", string(b))
		return nil
	}

	driver.PrintChart(os.Stdout, c)

	return nil
}
