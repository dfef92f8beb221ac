package strength_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/passcheck/passcheck/strength"
)

var _ = Describe("EntropyBits", func() {
	It("returns zero for the empty string", func() {
		Expect(strength.EntropyBits("")).To(Equal(0.0))
	})

	It("returns zero for a single repeated character", func() {
		Expect(strength.EntropyBits("aaaa")).To(Equal(0.0))
	})

	It("scales per-symbol entropy by the password length", func() {
		// two symbols, one bit each, over four characters
		Expect(strength.EntropyBits("abab")).To(Equal(4.0))
	})

	It("weights symbols by their frequency", func() {
		Expect(strength.EntropyBits("password")).To(Equal(22.0))
	})

	It("rounds to two decimal places", func() {
		// 3 * log2(3) = 4.7548...
		Expect(strength.EntropyBits("abc")).To(Equal(4.75))
	})

	It("counts runes, not bytes", func() {
		Expect(strength.EntropyBits("щищи")).To(Equal(4.0))
	})
})
