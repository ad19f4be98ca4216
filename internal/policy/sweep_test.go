package policy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
)

var _ = Describe("SweepRotate", func() {
	var (
		p    *policy.SweepRotate
		segs []lines.Segment
	)

	BeforeEach(func() {
		p = policy.NewSweepRotate(policy.Up, 50, 2)
		segs = []lines.Segment{
			{Start: lines.Vec2{X: 0, Y: 0}, End: lines.Vec2{X: 0, Y: 10}, Rate: 1, Axis: lines.Vertical},
			{Start: lines.Vec2{X: 5, Y: 5}, End: lines.Vec2{X: 25, Y: 5}, Rate: -1, Axis: lines.Horizontal},
		}
	})

	It("starts with a positive delta going up", func() {
		Expect(p.Delta).To(Equal(float32(2)))
		Expect(policy.NewSweepRotate(policy.Left, 50, 2).Delta).To(Equal(float32(-2)))
	})

	It("moves every segment along y while going up", func() {
		p.Step(segs, 0, lines.Bounds{})
		Expect(segs[0].Start).To(Equal(lines.Vec2{X: 0, Y: 2}))
		Expect(segs[0].End).To(Equal(lines.Vec2{X: 0, Y: 12}))
		Expect(segs[1].Start).To(Equal(lines.Vec2{X: 5, Y: 7}))
		Expect(segs[1].End).To(Equal(lines.Vec2{X: 25, Y: 7}))
		Expect(p.Counter).To(Equal(uint8(1)))
	})

	It("rotates at the threshold without moving", func() {
		p.Counter = 50
		before := append([]lines.Segment(nil), segs...)
		p.Step(segs, 0, lines.Bounds{})
		Expect(p.Direction).To(Equal(policy.Down))
		Expect(p.Counter).To(Equal(uint8(0)))
		Expect(p.Delta).To(Equal(float32(-2)))
		Expect(segs).To(Equal(before))
	})

	It("follows the up, down, left, right cycle", func() {
		seen := []policy.Direction{p.Direction}
		for i := 0; i < 4*51; i++ {
			prev := p.Direction
			p.Step(segs, i, lines.Bounds{})
			if p.Direction != prev {
				seen = append(seen, p.Direction)
			}
		}
		Expect(seen).To(Equal([]policy.Direction{policy.Up, policy.Down, policy.Left, policy.Right, policy.Up}))
	})

	It("returns every segment to its origin after a full cycle", func() {
		before := append([]lines.Segment(nil), segs...)
		for i := 0; i < 4*51; i++ {
			p.Step(segs, i, lines.Bounds{})
		}
		Expect(segs).To(Equal(before))
		Expect(p.Direction).To(Equal(policy.Up))
	})

	It("parses direction names", func() {
		d, err := policy.ParseDirection("left")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(policy.Left))
		Expect(d.String()).To(Equal("left"))

		_, err = policy.ParseDirection("sideways")
		Expect(err).To(HaveOccurred())
	})
})
