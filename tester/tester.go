package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/earley/driver"
	"github.com/nihei9/earley/grammar"
	tspec "github.com/nihei9/earley/spec/test"
)

type TestResult struct {
	TestCasePath string
	Word         string
	Expected     tspec.Verdict
	Actual       tspec.Verdict
	Error        error
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "

		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *tspec.TestCase
	FilePath string
	Error    error
}

// ListTestCases reads a test case file, or all test case files under a directory recursively. A file that
// cannot be read or parsed is listed with its error.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*tspec.TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tspec.ParseTestCase(f)
}

type Tester struct {
	Grammar *grammar.Grammar
	Cases   []*TestCaseWithMetadata
	Options []driver.RecognizerOption
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, t.runTest(c))
	}
	return rs
}

func (t *Tester) runTest(c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	r, err := driver.NewRecognizer(t.Grammar, t.Options...)
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Word:         c.TestCase.Word,
			Expected:     c.TestCase.Expected,
			Error:        err,
		}
	}
	accepted, err := r.Recognize(c.TestCase.Word)
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Word:         c.TestCase.Word,
			Expected:     c.TestCase.Expected,
			Error:        err,
		}
	}

	actual := tspec.Verdict(accepted)
	if actual != c.TestCase.Expected {
		return &TestResult{
			TestCasePath: c.FilePath,
			Word:         c.TestCase.Word,
			Expected:     c.TestCase.Expected,
			Actual:       actual,
			Error:        fmt.Errorf("verdict mismatch: word: %q, expected: %v, actual: %v", c.TestCase.Word, c.TestCase.Expected, actual),
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
		Word:         c.TestCase.Word,
		Expected:     c.TestCase.Expected,
		Actual:       actual,
	}
}
