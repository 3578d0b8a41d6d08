package acoustics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/acoustics"
)

var _ = Describe("SpeedOfSoundFromTemp", func() {
	It("matches the linear approximation", func() {
		Expect(acoustics.SpeedOfSoundFromTemp(0)).To(Equal(331.0))
		Expect(acoustics.SpeedOfSoundFromTemp(20)).To(BeNumerically("~", 343.0, 1e-12))
		Expect(acoustics.SpeedOfSoundFromTemp(-10)).To(BeNumerically("~", 325.0, 1e-12))
	})
})

var _ = Describe("FirstHarmonicAirLength", func() {
	It("is a quarter wavelength minus the end correction", func() {
		// 343 m/s at 440 Hz: lambda/4 = 0.19488..., minus 0.3*0.03 m tube
		got := acoustics.FirstHarmonicAirLength(440, 343, 0.03)
		Expect(got).To(BeNumerically("~", 343.0/(4*440)-0.009, 1e-12))
	})

	It("ignores the correction for a zero-diameter tube", func() {
		Expect(acoustics.FirstHarmonicAirLength(500, 340, 0)).To(BeNumerically("~", 0.17, 1e-12))
	})
})

var _ = Describe("InferredSpeed", func() {
	It("round-trips with FirstHarmonicAirLength", func() {
		for _, f := range []float64{100, 261.63, 440, 1000} {
			for _, s := range []float64{325, 331, 343, 350} {
				for _, d := range []float64{0, 0.025, 0.04} {
					length := acoustics.FirstHarmonicAirLength(f, s, d)
					Expect(acoustics.InferredSpeed(f, length, d)).To(BeNumerically("~", s, 1e-9))
				}
			}
		}
	})
})

var _ = Describe("ResonanceStrength", func() {
	It("is exactly 1 at the target", func() {
		Expect(acoustics.ResonanceStrength(0.19, 0.19)).To(Equal(1.0))
	})

	It("decreases strictly with offset", func() {
		target := 0.2
		prev := 1.0
		for _, off := range []float64{0.001, 0.005, 0.01, 0.05, 0.1} {
			s := acoustics.ResonanceStrength(target+off, target)
			Expect(s).To(BeNumerically("<", prev))
			Expect(s).To(BeNumerically(">", 0))
			prev = s
		}
	})

	It("is symmetric about the target", func() {
		target := 0.15
		hi := acoustics.ResonanceStrength(target+0.02, target)
		lo := acoustics.ResonanceStrength(target-0.02, target)
		Expect(hi).To(BeNumerically("~", lo, 1e-15))
	})

	It("floors the default bandwidth for tiny targets", func() {
		// target*0.06 would be 6e-4; the 0.008 floor applies.
		s := acoustics.ResonanceStrength(0.01+0.008, 0.01)
		Expect(s).To(BeNumerically("~", math.Exp(-0.5), 1e-12))
	})

	It("honors an explicit bandwidth", func() {
		s := acoustics.ResonanceStrengthWithBandwidth(0.22, 0.2, 0.02)
		Expect(s).To(BeNumerically("~", math.Exp(-0.5), 1e-12))
	})
})

var _ = Describe("QualityBand", func() {
	It("accepts only the High band", func() {
		Expect(acoustics.QualityBand(0.95).Accepted).To(BeTrue())
		Expect(acoustics.QualityBand(0.85).Accepted).To(BeFalse())
		Expect(acoustics.QualityBand(0.4).Label).To(Equal("Off peak"))
	})

	It("includes the lower boundaries", func() {
		Expect(acoustics.QualityBand(0.94).Label).To(Equal("High"))
		Expect(acoustics.QualityBand(0.8).Label).To(Equal("Fair"))
	})

	It("carries a stable class key", func() {
		Expect(acoustics.QualityBand(1.0).Class).To(Equal("high"))
		Expect(acoustics.QualityBand(0.9).Class).To(Equal("fair"))
		Expect(acoustics.QualityBand(0.1).Class).To(Equal("off"))
	})
})
