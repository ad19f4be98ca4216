package policy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
)

var _ = Describe("PulseExtend", func() {
	var p *policy.PulseExtend

	BeforeEach(func() {
		p = policy.NewPulseExtend(50)
	})

	DescribeTable("moves endpoints relative to zero",
		func(start, end, rate, wantStart, wantEnd float32) {
			segs := []lines.Segment{{
				Start: lines.Vec2{X: 7, Y: start},
				End:   lines.Vec2{X: 7, Y: end},
				Rate:  rate,
				Axis:  lines.Vertical,
			}}
			p.Step(segs, 0, lines.Bounds{})
			Expect(segs[0].Start.Y).To(Equal(wantStart))
			Expect(segs[0].End.Y).To(Equal(wantEnd))
			Expect(segs[0].Start.X).To(Equal(float32(7)))
			Expect(segs[0].End.X).To(Equal(float32(7)))
		},
		Entry("positive side extends", float32(100), float32(300), float32(2), float32(98), float32(302)),
		Entry("negative side contracts", float32(-300), float32(-100), float32(2), float32(-298), float32(-102)),
		Entry("straddling zero is pushed one way", float32(-50), float32(50), float32(2), float32(-48), float32(52)),
		Entry("start at zero counts as non-negative", float32(0), float32(40), float32(1), float32(-1), float32(41)),
	)

	It("operates on x for horizontal segments", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 10, Y: -4},
			End:   lines.Vec2{X: 30, Y: -4},
			Rate:  1,
			Axis:  lines.Horizontal,
		}}
		p.Step(segs, 0, lines.Bounds{})
		Expect(segs[0].Start).To(Equal(lines.Vec2{X: 9, Y: -4}))
		Expect(segs[0].End).To(Equal(lines.Vec2{X: 31, Y: -4}))
	})

	It("reverses every rate once the counter passes max step", func() {
		p.Counter = 50
		segs := []lines.Segment{
			{Start: lines.Vec2{Y: 1}, End: lines.Vec2{Y: 2}, Rate: 1.5, Axis: lines.Vertical},
			{Start: lines.Vec2{X: 1}, End: lines.Vec2{X: 2}, Rate: -3, Axis: lines.Horizontal},
		}
		p.Step(segs, 0, lines.Bounds{})
		Expect(p.Counter).To(Equal(0))
		Expect(segs[0].Rate).To(Equal(float32(-1.5)))
		Expect(segs[1].Rate).To(Equal(float32(3)))
	})

	It("keeps the rate below max step", func() {
		p.Counter = 49
		segs := []lines.Segment{{Start: lines.Vec2{Y: 1}, End: lines.Vec2{Y: 2}, Rate: 1, Axis: lines.Vertical}}
		p.Step(segs, 0, lines.Bounds{})
		Expect(p.Counter).To(Equal(50))
		Expect(segs[0].Rate).To(Equal(float32(1)))
	})

	It("completes a grow and shrink period", func() {
		segs := []lines.Segment{{
			Start: lines.Vec2{X: 0, Y: 100},
			End:   lines.Vec2{X: 0, Y: 300},
			Rate:  1,
			Axis:  lines.Vertical,
		}}
		for i := 0; i < 51; i++ {
			p.Step(segs, i, lines.Bounds{})
		}
		Expect(segs[0].Start.Y).To(Equal(float32(49)))
		Expect(segs[0].End.Y).To(Equal(float32(351)))
		Expect(segs[0].Rate).To(Equal(float32(-1)))

		for i := 0; i < 51; i++ {
			p.Step(segs, i, lines.Bounds{})
		}
		Expect(segs[0].Start.Y).To(Equal(float32(100)))
		Expect(segs[0].End.Y).To(Equal(float32(300)))
		Expect(segs[0].Rate).To(Equal(float32(1)))
	})
})
