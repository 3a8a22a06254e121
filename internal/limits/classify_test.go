package limits_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/logplot/internal/limits"
	"github.com/san-kum/logplot/internal/logsafe"
)

var _ = Describe("Classify", func() {
	var opts limits.Options

	BeforeEach(func() {
		opts = limits.DefaultOptions()
	})

	Context("at the significance boundary", func() {
		It("keeps sigma*err == y as a measurement", func() {
			res, err := limits.Classify([]float64{1}, []float64{4.0}, []float64{2.0}, opts)
			Expect(err).NotTo(HaveOccurred())

			p := res.Points[0]
			Expect(p.Kind).To(Equal(limits.Measurement))
			Expect(p.Y).To(Equal(4.0))
			Expect(p.Err).To(Equal(2.0))
			Expect(p.UpperLimit).To(Equal(opts.Epsilon))
			Expect(p.Arrow).To(BeNil())
		})

		It("turns sigma*err > y into a limit", func() {
			res, err := limits.Classify([]float64{1}, []float64{1.0}, []float64{1.0}, opts)
			Expect(err).NotTo(HaveOccurred())

			p := res.Points[0]
			Expect(p.Kind).To(Equal(limits.Limit))
			Expect(p.UpperLimit).To(Equal(3.0))
			Expect(p.Y).To(Equal(opts.Epsilon))
			Expect(p.Err).To(Equal(opts.Epsilon))
			Expect(p.Arrow).NotTo(BeNil())
		})

		It("floors the upper limit of negative values at epsilon", func() {
			res, err := limits.Classify([]float64{5}, []float64{-1.0}, []float64{0.0}, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Points[0].Kind).To(Equal(limits.Limit))
			Expect(res.Points[0].UpperLimit).To(Equal(opts.Epsilon))
			Expect(res.Points[0].Arrow.Y).To(BeNumerically(">", 0))
		})
	})

	Context("arrow geometry", func() {
		It("scales with x and the upper limit", func() {
			opts.HeadWidth = 0.1
			opts.ArrowLength = 0.35

			res, err := limits.Classify([]float64{10}, []float64{1.0}, []float64{1.0}, opts)
			Expect(err).NotTo(HaveOccurred())

			arrows := res.Arrows()
			Expect(arrows).To(HaveLen(1))
			a := arrows[0]
			Expect(a.Index).To(Equal(0))
			Expect(a.X).To(Equal(10.0))
			Expect(a.Y).To(Equal(3.0))
			Expect(a.Length).To(BeNumerically("~", 1.05, 1e-12))
			Expect(a.HeadLength).To(BeNumerically("~", 0.105, 1e-12))
			Expect(a.HeadWidth).To(BeNumerically("~", 1.0, 1e-12))

			Expect(a.Cap.X0).To(BeNumerically("~", 9.5, 1e-12))
			Expect(a.Cap.X1).To(BeNumerically("~", 10.5, 1e-12))
			Expect(a.Cap.Y0).To(Equal(3.0))
			Expect(a.Cap.Y1).To(Equal(3.0))

			x, y := a.Tip()
			Expect(x).To(Equal(10.0))
			Expect(y).To(BeNumerically("~", 1.95, 1e-12))
		})
	})

	Context("ordering", func() {
		It("returns an empty result for empty input", func() {
			res, err := limits.Classify(nil, nil, nil, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Len()).To(Equal(0))
			Expect(res.Arrows()).To(BeEmpty())
		})

		It("mirrors the input order for long series", func() {
			const n = 1000
			xs := make([]float64, n)
			fs := make([]float64, n)
			ferrs := make([]float64, n)
			for i := range xs {
				xs[i] = float64(i + 1)
				fs[i] = float64(i % 7)
				ferrs[i] = 1.5
			}

			res, err := limits.Classify(xs, fs, ferrs, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Len()).To(Equal(n))

			for i, p := range res.Points {
				Expect(p.Index).To(Equal(i))
				Expect(p.X).To(Equal(xs[i]))
				if ferrs[i]*opts.Sigma > fs[i] {
					Expect(p.Kind).To(Equal(limits.Limit))
				} else {
					Expect(p.Kind).To(Equal(limits.Measurement))
				}
			}
			Expect(res.Xs()).To(Equal(xs))
			Expect(res.Arrows()).To(HaveLen(res.Limits()))
		})
	})

	It("leaves the caller's slices untouched", func() {
		xs := []float64{1, 2, 3}
		fs := []float64{0.1, 5, 0.2}
		ferrs := []float64{1, 1, 1}

		res, err := limits.Classify(xs, fs, ferrs, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Limits()).To(Equal(2))

		Expect(xs).To(Equal([]float64{1, 2, 3}))
		Expect(fs).To(Equal([]float64{0.1, 5, 0.2}))
		Expect(ferrs).To(Equal([]float64{1, 1, 1}))
	})

	It("exposes renderer columns", func() {
		res, err := limits.Classify([]float64{1, 2}, []float64{5, 0.5}, []float64{1, 1}, opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Ys()).To(Equal([]float64{5, opts.Epsilon}))
		Expect(res.Errs()).To(Equal([]float64{1, opts.Epsilon}))
		Expect(res.UpperLimits()).To(Equal([]float64{opts.Epsilon, 2.5}))
	})

	DescribeTable("rejects invalid input",
		func(xs, fs, ferrs []float64, mutate func(*limits.Options), want error) {
			mutate(&opts)
			res, err := limits.Classify(xs, fs, ferrs, opts)
			Expect(err).To(MatchError(want))
			Expect(res).To(BeNil())
		},
		Entry("zero epsilon", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.Epsilon = 0 }, logsafe.ErrInvalidEpsilon),
		Entry("negative epsilon", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.Epsilon = -1e-10 }, logsafe.ErrInvalidEpsilon),
		Entry("zero sigma", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.Sigma = 0 }, limits.ErrInvalidSigma),
		Entry("NaN head width", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.HeadWidth = math.NaN() }, limits.ErrInvalidGeometry),
		Entry("short values", []float64{1, 2}, []float64{1}, []float64{1, 1},
			func(*limits.Options) {}, logsafe.ErrShapeMismatch),
		Entry("short errors", []float64{1}, []float64{1}, []float64{},
			func(*limits.Options) {}, logsafe.ErrShapeMismatch),
		Entry("Inf value", []float64{1}, []float64{math.Inf(1)}, []float64{1},
			func(*limits.Options) {}, logsafe.ErrNonFinite),
		Entry("negative error", []float64{10}, []float64{-5}, []float64{-3},
			func(*limits.Options) {}, logsafe.ErrNegativeError),
		Entry("head width too wide for the cap", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.HeadWidth = 2.5 }, limits.ErrInvalidGeometry),
		Entry("head width at the bound", []float64{1}, []float64{1}, []float64{1},
			func(o *limits.Options) { o.HeadWidth = limits.MaxHeadWidth }, limits.ErrInvalidGeometry),
	)
})

var _ = Describe("Negative errors", func() {
	It("reports the offending index", func() {
		_, err := limits.Classify([]float64{1, 2}, []float64{1, 1}, []float64{0.5, -0.1}, limits.DefaultOptions())

		var verr *logsafe.ValueError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Field).To(Equal("err"))
		Expect(verr.Index).To(Equal(1))
	})
})

var _ = Describe("Kind", func() {
	It("names both kinds", func() {
		Expect(limits.Measurement.String()).To(Equal("measurement"))
		Expect(limits.Limit.String()).To(Equal("limit"))
		Expect(limits.Kind(7).String()).To(Equal("Kind(7)"))
	})
})

var _ = Describe("Kind text encoding", func() {
	It("round-trips both kinds", func() {
		for _, k := range []limits.Kind{limits.Measurement, limits.Limit} {
			text, err := k.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var back limits.Kind
			Expect(back.UnmarshalText(text)).To(Succeed())
			Expect(back).To(Equal(k))
		}
	})

	It("rejects unknown names", func() {
		var k limits.Kind
		Expect(k.UnmarshalText([]byte("arrow"))).NotTo(Succeed())
	})
})
