package checks

// Runs detects a single character repeated minRun or more times in an
// unbroken run, e.g. "aaa" or "111".
func Runs(minRun int) Matcher {
	return &runMatcher{
		minRun: minRun,
	}
}

type runMatcher struct {
	minRun int
}

func (m *runMatcher) Match(password string) (bool, int, int) {
	var (
		prev  rune
		run   int
		start int
	)

	i := 0
	for _, r := range password {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
			start = i
		}

		if run >= m.minRun {
			return true, start, i + 1
		}

		prev = r
		i++
	}

	return false, 0, 0
}
