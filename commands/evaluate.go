package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/passcheck/passcheck/config"
	"github.com/passcheck/passcheck/strength"
	"github.com/passcheck/passcheck/wordlist"
)

type EvaluateCommand struct {
	JSON       bool   `long:"json" description:"output the analysis as JSON"`
	ConfigFile string `long:"config-file" description:"path to policy config file" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging"`

	config.PolicyConfig

	Args struct {
		Password string `positional-arg-name:"PASSWORD" description:"password to evaluate; read from stdin when omitted"`
	} `positional-args:"yes"`
}

func (command *EvaluateCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("evaluate")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	}

	analyzer, err := buildAnalyzer(command.ConfigFile, &command.PolicyConfig)
	if err != nil {
		return err
	}

	password := command.Args.Password
	if password == "" {
		password, err = readPassword()
		if err != nil {
			return err
		}
	}

	analysis := analyzer.Analyze(logger, password)

	if command.JSON {
		bs, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(bs))
	} else {
		printAnalysis(os.Stdout, analysis)
	}

	if analysis.Score < 60 {
		os.Exit(3)
	}

	return nil
}

func readPassword() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(os.Stderr, "Enter password to evaluate: ")
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no password provided")
	}

	return strings.TrimSpace(scanner.Text()), nil
}

func printAnalysis(w io.Writer, analysis strength.Analysis) {
	colorize := verdictColor(analysis.Verdict)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Password Strength Analysis")
	fmt.Fprintln(w, "----------------------------")
	fmt.Fprintf(w, "Length            : %d\n", analysis.Length)
	fmt.Fprintf(w, "Entropy (bits)    : %.2f\n", analysis.EntropyBits)
	fmt.Fprintf(w, "Score             : %d / 100\n", analysis.Score)
	fmt.Fprintf(w, "Verdict           : %s\n", colorize(string(analysis.Verdict)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Characteristics:")
	fmt.Fprintf(w, "  Lowercase letters : %t\n", analysis.HasLowercase)
	fmt.Fprintf(w, "  Uppercase letters : %t\n", analysis.HasUppercase)
	fmt.Fprintf(w, "  Digits            : %t\n", analysis.HasDigit)
	fmt.Fprintf(w, "  Special chars     : %t\n", analysis.HasSpecial)

	if len(analysis.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recommendations:")
		for _, recommendation := range analysis.Recommendations {
			fmt.Fprintf(w, " - %s\n", recommendation)
		}
	}
}

func buildAnalyzer(configFile string, flagConfig *config.PolicyConfig) (strength.Analyzer, error) {
	cfg := &config.PolicyConfig{}

	if configFile != "" {
		bs, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		cfg, err = config.LoadPolicyConfig(bs)
		if err != nil {
			return nil, err
		}
	}

	cfg.Merge(flagConfig)

	if errs := cfg.Validate(); len(errs) > 0 {
		var result error
		for _, err := range errs {
			result = multierror.Append(result, err)
		}
		return nil, result
	}

	commonList := wordlist.Default()
	if cfg.WordlistPath != "" {
		file, err := os.Open(cfg.WordlistPath)
		if err != nil {
			return nil, err
		}

		commonList, err = wordlist.FromReader(file)

		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, err
		}
	}

	return strength.NewAnalyzer(cfg.Policy(), commonList), nil
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := os.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `passcheck update`.")
	}
}
