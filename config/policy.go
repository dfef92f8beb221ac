package config

import (
	"errors"

	yaml "gopkg.in/yaml.v2"

	"github.com/passcheck/passcheck/strength"
)

// PolicyConfig exposes the tunable constants of the scoring rule set. Zero
// fields fall back to the canonical defaults.
type PolicyConfig struct {
	MinRepeatRun        int     `long:"min-repeat-run" description:"shortest run of one character counted as repetition" value-name:"N" yaml:"min_repeat_run"`
	MinSequenceRun      int     `long:"min-sequence-run" description:"shortest alphabet slice counted as a sequential pattern" value-name:"N" yaml:"min_sequence_run"`
	LowEntropyThreshold float64 `long:"low-entropy-threshold" description:"entropy estimate, in bits, below which the low-entropy penalty applies" value-name:"BITS" yaml:"low_entropy_threshold"`
	WordlistPath        string  `long:"wordlist" description:"file of known-weak passwords, one per line, replacing the built-in list" value-name:"PATH" yaml:"wordlist_path"`
}

func LoadPolicyConfig(bs []byte) (*PolicyConfig, error) {
	c := &PolicyConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Merge overlays the non-zero fields of other onto c. Used to let
// command-line flags win over the config file.
func (c *PolicyConfig) Merge(other *PolicyConfig) {
	if other.MinRepeatRun != 0 {
		c.MinRepeatRun = other.MinRepeatRun
	}

	if other.MinSequenceRun != 0 {
		c.MinSequenceRun = other.MinSequenceRun
	}

	if other.LowEntropyThreshold != 0 {
		c.LowEntropyThreshold = other.LowEntropyThreshold
	}

	if other.WordlistPath != "" {
		c.WordlistPath = other.WordlistPath
	}
}

func (c *PolicyConfig) Validate() []error {
	var errs []error

	if c.MinRepeatRun < 0 || c.MinRepeatRun == 1 {
		errs = append(errs, errors.New("min repeat run must be at least 2"))
	}

	if c.MinSequenceRun < 0 || c.MinSequenceRun == 1 {
		errs = append(errs, errors.New("min sequence run must be at least 2"))
	}

	if c.LowEntropyThreshold < 0 {
		errs = append(errs, errors.New("low entropy threshold must not be negative"))
	}

	return errs
}

// Policy converts the config into a scoring policy, applying defaults for
// unset fields.
func (c *PolicyConfig) Policy() strength.Policy {
	policy := strength.DefaultPolicy()

	if c.MinRepeatRun > 0 {
		policy.MinRepeatRun = c.MinRepeatRun
	}

	if c.MinSequenceRun > 0 {
		policy.MinSequenceRun = c.MinSequenceRun
	}

	if c.LowEntropyThreshold > 0 {
		policy.LowEntropyThreshold = c.LowEntropyThreshold
	}

	return policy
}
