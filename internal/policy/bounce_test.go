package policy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
)

var _ = Describe("BounceMove", func() {
	var (
		p      *policy.BounceMove
		bounds lines.Bounds
	)

	BeforeEach(func() {
		p = policy.NewBounceMove()
		bounds = lines.Bounds{Left: -500, Right: 500, Bottom: -500, Top: 500}
	})

	It("reflects a vertical segment crossing the top edge", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 0, Y: 490},
			End:   lines.Vec2{X: 0, Y: 510},
			Rate:  3,
			Axis:  lines.Vertical,
		}}
		p.Step(segs, 0, bounds)
		Expect(segs[0].Rate).To(Equal(float32(-3)))
		Expect(segs[0].Start.Y).To(Equal(float32(487)))
		Expect(segs[0].End.Y).To(Equal(float32(507)))
		Expect(segs[0].Start.X).To(Equal(float32(0)))
	})

	DescribeTable("inclusive edge convention",
		func(seg lines.Segment, wantRate float32) {
			segs := []lines.Segment{seg}
			p.Step(segs, 0, bounds)
			Expect(segs[0].Rate).To(Equal(wantRate))
		},
		Entry("touching top", lines.Segment{Start: lines.Vec2{Y: 480}, End: lines.Vec2{Y: 500}, Rate: 2, Axis: lines.Vertical}, float32(-2)),
		Entry("touching bottom", lines.Segment{Start: lines.Vec2{Y: -500}, End: lines.Vec2{Y: -480}, Rate: -2, Axis: lines.Vertical}, float32(2)),
		Entry("touching right", lines.Segment{Start: lines.Vec2{X: 400}, End: lines.Vec2{X: 500}, Rate: 1, Axis: lines.Horizontal}, float32(-1)),
		Entry("touching left", lines.Segment{Start: lines.Vec2{X: -500}, End: lines.Vec2{X: -400}, Rate: -1, Axis: lines.Horizontal}, float32(1)),
		Entry("one unit inside top", lines.Segment{Start: lines.Vec2{Y: 479}, End: lines.Vec2{Y: 499}, Rate: 2, Axis: lines.Vertical}, float32(2)),
		Entry("already leaving top", lines.Segment{Start: lines.Vec2{Y: 480}, End: lines.Vec2{Y: 500}, Rate: -2, Axis: lines.Vertical}, float32(-2)),
	)

	It("does not toggle a segment resting on an edge", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 0, Y: 480},
			End:   lines.Vec2{X: 0, Y: 500},
			Rate:  -0.0001,
			Axis:  lines.Vertical,
		}}
		for i := 0; i < 3; i++ {
			p.Step(segs, i, bounds)
			Expect(segs[0].Rate).To(BeNumerically("<", 0))
		}
	})

	It("moves horizontal segments along x only", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 10, Y: 20},
			End:   lines.Vec2{X: 60, Y: 20},
			Rate:  -4,
			Axis:  lines.Horizontal,
		}}
		p.Step(segs, 0, bounds)
		Expect(segs[0].Start).To(Equal(lines.Vec2{X: 6, Y: 20}))
		Expect(segs[0].End).To(Equal(lines.Vec2{X: 56, Y: 20}))
		Expect(segs[0].IsHorizontal()).To(BeTrue())
	})

	It("stays inside the bounds once inside", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 0, Y: 0},
			End:   lines.Vec2{X: 0, Y: 100},
			Rate:  3.5,
			Axis:  lines.Vertical,
		}}
		for i := 0; i < 2000; i++ {
			p.Step(segs, i, bounds)
			Expect(segs[0].End.Y).To(BeNumerically("<", bounds.Top+4))
			Expect(segs[0].Start.Y).To(BeNumerically(">", bounds.Bottom-4))
		}
	})
})
