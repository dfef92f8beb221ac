package candidates

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"
)

//go:generate counterfeiter . Scanner

// Scanner yields candidate passwords one at a time.
type Scanner interface {
	Scan(lager.Logger) bool
	Candidate() *Candidate
	Err() error
}

type lineScanner struct {
	source       string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

// NewLineScanner reads one candidate password per line. The source name is
// attached to each candidate for reporting.
func NewLineScanner(r io.Reader, source string) Scanner {
	return &lineScanner{
		source:       source,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *lineScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("line-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		return false
	}

	if success {
		s.lineNumber++
	}

	return success
}

func (s *lineScanner) Candidate() *Candidate {
	return &Candidate{
		Source:     s.source,
		LineNumber: s.lineNumber,
		Password:   s.bufioScanner.Text(),
	}
}

func (s *lineScanner) Err() error {
	return s.bufioScanner.Err()
}
