package cmd

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// cliWorld carries one scenario's input and the command outcome
type cliWorld struct {
	stdin  []byte
	stdout string
	err    error
}

func (w *cliWorld) theInput(s string) error {
	w.stdin = []byte(s)
	return nil
}

func (w *cliWorld) theInputBytes(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	w.stdin = b
	return nil
}

func (w *cliWorld) iRun(args string) error {
	root := GetRootCommand()
	resetFlags(root)

	var out bytes.Buffer
	root.SetIn(bytes.NewReader(w.stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(strings.Fields(args))
	w.err = root.Execute()
	w.stdout = out.String()
	return nil
}

func (w *cliWorld) theCommandSucceeds() error {
	if w.err != nil {
		return fmt.Errorf("command failed: %w", w.err)
	}
	return nil
}

func (w *cliWorld) theCommandFailsWith(msg string) error {
	if w.err == nil {
		return fmt.Errorf("command succeeded, output %q", w.stdout)
	}
	if !strings.Contains(w.err.Error(), msg) {
		return fmt.Errorf("error %q does not mention %q", w.err, msg)
	}
	return nil
}

func (w *cliWorld) theWordsAre(table *godog.Table) error {
	lines := strings.Split(strings.TrimSpace(w.stdout), "\n")
	rows := table.Rows[1:]
	if len(lines) != len(rows) {
		return fmt.Errorf("got %d words, want %d:\n%s", len(lines), len(rows), w.stdout)
	}
	for i, row := range rows {
		want := row.Cells[0].Value + "\t" + row.Cells[1].Value + "\t"
		if !strings.HasPrefix(lines[i], want) {
			return fmt.Errorf("word %d: got %q, want prefix %q", i, lines[i], want)
		}
	}
	return nil
}

func (w *cliWorld) theBestLanguageIs(code string) error {
	fields := strings.Split(strings.TrimSpace(w.stdout), "\t")
	if len(fields) < 2 {
		return fmt.Errorf("unexpected output %q", w.stdout)
	}
	if fields[1] != code {
		return fmt.Errorf("best language %q, want %q", fields[1], code)
	}
	return nil
}

// InitializeScenario binds the step definitions to a fresh world
func InitializeScenario(sc *godog.ScenarioContext) {
	w := &cliWorld{}
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*w = cliWorld{}
		return ctx, nil
	})

	sc.Step(`^the input "([^"]*)"$`, w.theInput)
	sc.Step(`^the input bytes "([0-9a-f]*)"$`, w.theInputBytes)
	sc.Step(`^I run "([^"]*)"$`, w.iRun)
	sc.Step(`^the command succeeds$`, w.theCommandSucceeds)
	sc.Step(`^the command fails with "([^"]*)"$`, w.theCommandFailsWith)
	sc.Step(`^the words are:$`, w.theWordsAre)
	sc.Step(`^the best language is "([^"]*)"$`, w.theBestLanguageIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
