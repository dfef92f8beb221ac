package main_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		stdin   string
		session *gexec.Session
		tempDir string
	)

	const strongPassword = "Tr4vel#Mug!Blue9Kite"

	BeforeEach(func() {
		cmdArgs = []string{}
		stdin = ""

		var err error
		tempDir, err = ioutil.TempDir("", "passcheck-main")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("EvaluateCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"evaluate"}, cmdArgs...)
			cmd := exec.Command(cliPath, finalArgs...)

			if stdin != "" {
				cmd.Stdin = strings.NewReader(stdin)
			}

			var err error
			session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("when the password is a known-weak one", func() {
			BeforeEach(func() {
				cmdArgs = []string{"password1"}
			})

			It("reports the analysis and exits 3", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out).To(gbytes.Say("Password Strength Analysis"))
				Expect(session.Out).To(gbytes.Say("Very Weak"))
				Expect(session.Out).To(gbytes.Say("Avoid commonly used passwords"))
			})
		})

		Context("when the password is strong", func() {
			BeforeEach(func() {
				cmdArgs = []string{strongPassword}
			})

			It("reports the top score the rule set allows and exits 0", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Score +: 70 / 100"))
				Expect(session.Out).To(gbytes.Say("Strong"))
			})
		})

		Context("with --json", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--json", strongPassword}
			})

			It("prints the analysis as JSON", func() {
				Eventually(session).Should(gexec.Exit(0))

				var analysis struct {
					Length          int      `json:"length"`
					HasSpecial      bool     `json:"has_special"`
					EntropyBits     float64  `json:"entropy_bits"`
					Score           int      `json:"score"`
					Verdict         string   `json:"verdict"`
					Recommendations []string `json:"recommendations"`
				}
				Expect(json.Unmarshal(session.Out.Contents(), &analysis)).To(Succeed())

				Expect(analysis.Length).To(Equal(20))
				Expect(analysis.HasSpecial).To(BeTrue())
				Expect(analysis.EntropyBits).To(BeNumerically(">", 28))
				Expect(analysis.Score).To(Equal(70))
				Expect(analysis.Verdict).To(Equal("Strong"))
				Expect(analysis.Recommendations).To(BeEmpty())
			})
		})

		Context("when the password arrives on stdin", func() {
			BeforeEach(func() {
				stdin = "correct horse battery staple\n"
			})

			It("evaluates the line it reads", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out).To(gbytes.Say("Moderate"))
			})
		})

		Context("when there is no password at all", func() {
			It("exits 1", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("no password provided"))
			})
		})

		Context("with --min-sequence-run", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--json", "--min-sequence-run", "4", "meqabcqem1X!"}
			})

			It("widens the sequence window", func() {
				Eventually(session).Should(gexec.Exit(0))

				var analysis struct {
					HasSequence bool `json:"has_sequence"`
				}
				Expect(json.Unmarshal(session.Out.Contents(), &analysis)).To(Succeed())
				Expect(analysis.HasSequence).To(BeFalse())
			})
		})

		Context("with --config-file", func() {
			BeforeEach(func() {
				configPath := filepath.Join(tempDir, "policy.yml")
				err := ioutil.WriteFile(configPath, []byte("min_sequence_run: 4\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				cmdArgs = []string{"--json", "--config-file", configPath, "meqabcqem1X!"}
			})

			It("applies the configured policy", func() {
				Eventually(session).Should(gexec.Exit(0))

				var analysis struct {
					HasSequence bool `json:"has_sequence"`
				}
				Expect(json.Unmarshal(session.Out.Contents(), &analysis)).To(Succeed())
				Expect(analysis.HasSequence).To(BeFalse())
			})
		})

		Context("with --wordlist", func() {
			BeforeEach(func() {
				wordlistPath := filepath.Join(tempDir, "weak.txt")
				err := ioutil.WriteFile(wordlistPath, []byte(strings.ToLower(strongPassword)+"\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				cmdArgs = []string{"--wordlist", wordlistPath, strongPassword}
			})

			It("treats entries of the supplied list as common", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out).To(gbytes.Say("Avoid commonly used passwords"))
			})
		})
	})

	Describe("AuditCommand", func() {
		var listPath string

		BeforeEach(func() {
			listPath = filepath.Join(tempDir, "candidates.txt")
			err := ioutil.WriteFile(listPath, []byte("password\n"+strongPassword+"\n"), 0600)
			Expect(err).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			cmd := exec.Command(cliPath, append([]string{"audit"}, cmdArgs...)...)

			if stdin != "" {
				cmd.Stdin = strings.NewReader(stdin)
			}

			var err error
			session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("when the list contains a weak candidate", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-f", listPath}
			})

			It("masks candidates, summarizes, and exits 3", func() {
				Eventually(session).Should(gexec.Exit(3))

				Expect(session.Out).To(gbytes.Say(`Very Weak.*candidates\.txt:1 \*{8} \(score 0/100\)`))
				Expect(session.Out).To(gbytes.Say(`Strong.*candidates\.txt:2 \*{20} \(score 70/100\)`))
				Expect(session.Out).To(gbytes.Say("Audited 2 candidates: 1 weak."))

				Expect(string(session.Out.Contents())).NotTo(ContainSubstring(strongPassword))
			})
		})

		Context("with --show-passwords", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-f", listPath, "--show-passwords"}
			})

			It("prints the candidates in the clear", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(string(session.Out.Contents())).To(ContainSubstring(strongPassword))
			})
		})

		Context("when every candidate is strong enough", func() {
			BeforeEach(func() {
				err := ioutil.WriteFile(listPath, []byte(strongPassword+"\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				cmdArgs = []string{"-f", listPath}
			})

			It("exits 0", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Audited 1 candidates: 0 weak."))
			})
		})

		Context("when candidates arrive on stdin", func() {
			BeforeEach(func() {
				cmdArgs = []string{}
				stdin = "qwerty\n"
			})

			It("labels them with the STDIN source", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out).To(gbytes.Say(`STDIN:1`))
			})
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			cmd := exec.Command(cliPath, "version")

			session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(`passcheck dev \(unknown\)`))
		})
	})

	Describe("executable freshness", func() {
		It("warns when the executable is more than two weeks old", func() {
			cmd := exec.Command(oldCliPath, "evaluate", strongPassword)

			session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Err).To(gbytes.Say("Executable is old!"))
		})
	})
})
