package test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Verdict is the expected result of recognizing a word.
type Verdict bool

const (
	VerdictYes Verdict = true
	VerdictNo  Verdict = false
)

func (v Verdict) String() string {
	if v {
		return "Yes"
	}
	return "No"
}

func parseVerdict(s string) (Verdict, bool) {
	switch strings.ToLower(s) {
	case "yes":
		return VerdictYes, true
	case "no":
		return VerdictNo, true
	}
	return VerdictNo, false
}

// TestCase expects that a grammar accepts or rejects a word.
type TestCase struct {
	Description string
	Word        string
	Expected    Verdict
}

// ParseTestCase reads a test case consisting of three parts separated by delimiters of three or more hyphens:
// a description, a word, and a verdict (yes or no). The word part may be empty, which means the empty word.
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}

	word, err := parseWord(parts[1])
	if err != nil {
		return nil, err
	}

	verdictText := strings.TrimSpace(string(parts[2].buf))
	verdict, ok := parseVerdict(verdictText)
	if !ok {
		return nil, fmt.Errorf("line %v: a verdict must be yes or no: %q", parts[2].firstContentLine(), verdictText)
	}

	return &TestCase{
		Description: string(parts[0].buf),
		Word:        word,
		Expected:    verdict,
	}, nil
}

func parseWord(part *testCasePart) (string, error) {
	word := strings.TrimSpace(string(part.buf))
	if strings.ContainsAny(word, " \t\r\n") {
		return "", fmt.Errorf("a word must not contain white spaces: %q", word)
	}
	return word, nil
}

type testCasePart struct {
	buf       []byte
	lineCount int

	// startLine is the 1-based line number where the part begins in the test case file.
	startLine int
}

// firstContentLine returns the line number of the first non-blank line of the part. When the part is blank, it
// returns the line where the part begins.
func (p *testCasePart) firstContentLine() int {
	for i, line := range strings.Split(string(p.buf), "\n") {
		if strings.TrimSpace(line) != "" {
			return p.startLine + i
		}
	}
	return p.startLine
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	line := 1
	for {
		buf, lineCount, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
			startLine: line,
		})
		// A part occupies its lines and the following delimiter. An empty part occupies only the delimiter.
		line += lineCount + 1
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func readPart(s *bufio.Scanner) ([]byte, int, error) {
	if !s.Scan() {
		return nil, 0, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns nil if we have never written data.
		return []byte{}, 0, nil
	}
	_, err := buf.Write(line)
	if err != nil {
		return nil, 0, err
	}
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), lineCount, nil
		}
		_, err := buf.Write([]byte("\n"))
		if err != nil {
			return nil, 0, err
		}
		_, err = buf.Write(line)
		if err != nil {
			return nil, 0, err
		}
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), lineCount, nil
}
