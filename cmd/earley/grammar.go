package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	verr "github.com/nihei9/earley/error"
	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/spec/grammar/parser"
)

// readSession reads a grammar and its words. When the path is empty, the source is read from stdin.
func readSession(path string) (*grammar.Grammar, *parser.RootNode, error) {
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	gram, ast, err := buildGrammar(src)
	if err != nil {
		locateErrors(err, path)
		return nil, nil, err
	}
	return gram, ast, nil
}

func buildGrammar(src io.Reader) (*grammar.Grammar, *parser.RootNode, error) {
	ast, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return gram, ast, nil
}

// locateErrors sets the source of spec errors so that messages point at the grammar file.
func locateErrors(err error, path string) {
	var specErrs []*verr.SpecError
	{
		var errs verr.SpecErrors
		var specErr *verr.SpecError
		switch {
		case errors.As(err, &errs):
			specErrs = errs
		case errors.As(err, &specErr):
			specErrs = []*verr.SpecError{specErr}
		}
	}
	for _, e := range specErrs {
		if path != "" {
			e.FilePath = path
			e.SourceName = path
		} else {
			e.SourceName = "stdin"
		}
	}
}

// recoverError converts a panic into the error of a command and prints its stack trace. Other errors are
// printed by Execute.
func recoverError(retErr *error) {
	v := recover()
	if v == nil {
		return
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("an unexpected error occurred: %v", v)
	}
	*retErr = err
	fmt.Fprintf(os.Stderr, "%v:\n%v", err, string(debug.Stack()))
}
