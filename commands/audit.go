package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/passcheck/passcheck/candidates"
	"github.com/passcheck/passcheck/config"
	"github.com/passcheck/passcheck/strength"
)

type AuditCommand struct {
	File          string `short:"f" long:"file" description:"the candidate list to audit, one password per line" value-name:"FILE"`
	ShowPasswords bool   `long:"show-passwords" description:"allow candidate passwords to be shown in output"`
	ConfigFile    string `long:"config-file" description:"path to policy config file" value-name:"PATH"`
	Debug         bool   `long:"debug" description:"enables debug logging"`

	config.PolicyConfig
}

func (command *AuditCommand) Execute(args []string) error {
	logger := lager.NewLogger("audit")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	}

	analyzer, err := buildAnalyzer(command.ConfigFile, &command.PolicyConfig)
	if err != nil {
		return err
	}

	var scanner candidates.Scanner
	if command.File != "" {
		file, err := os.Open(command.File)
		if err != nil {
			return err
		}
		defer file.Close()

		scanner = candidates.NewLineScanner(file, command.File)
	} else {
		scanner = candidates.NewLineScanner(os.Stdin, "STDIN")
	}

	counter := newWeakCounter(command.ShowPasswords)

	var result error
	for scanner.Scan(logger) {
		candidate := scanner.Candidate()
		if candidate.Password == "" {
			continue
		}

		analysis := analyzer.Analyze(logger, candidate.Password)

		if err := counter.HandleAnalysis(logger, *candidate, analysis); err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	if result != nil {
		return result
	}

	fmt.Printf("\nAudited %d candidates: %d weak.\n", counter.total, counter.weak)

	if counter.weak > 0 {
		os.Exit(3)
	}

	return nil
}

func newWeakCounter(showPasswords bool) *weakCounter {
	return &weakCounter{
		showPasswords: showPasswords,
	}
}

type weakCounter struct {
	total         int
	weak          int
	showPasswords bool
}

func (c *weakCounter) HandleAnalysis(logger lager.Logger, candidate candidates.Candidate, analysis strength.Analysis) error {
	c.total++

	display := candidate.Masked()
	if c.showPasswords {
		display = candidate.Password
	}

	colorize := verdictColor(analysis.Verdict)
	fmt.Printf("%s %s:%d %s (score %d/100)\n",
		colorize(fmt.Sprintf("[%s]", analysis.Verdict)),
		candidate.Source,
		candidate.LineNumber,
		display,
		analysis.Score,
	)

	if analysis.Score < 60 {
		c.weak++
	}

	logger.Debug("candidate-evaluated", lager.Data{
		"line":  candidate.LineNumber,
		"score": analysis.Score,
		"count": c.total,
	})

	return nil
}
