package policy_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
)

var _ = Describe("Registry", func() {
	It("lists canonical names in order", func() {
		Expect(policy.Names()).To(Equal([]string{"extend", "move", "sweep"}))
	})

	DescribeTable("resolves names and aliases",
		func(in, want string) {
			got, err := policy.Parse(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("move", "move", "move"),
		Entry("bounce alias", "bounce", "move"),
		Entry("pulse alias", "pulse", "extend"),
		Entry("mixed case", " Sweep ", "sweep"),
	)

	It("rejects unknown names with the available list", func() {
		_, err := policy.New("wiggle", policy.DefaultParams())
		Expect(err).To(MatchError(policy.ErrUnknownPolicy))
		Expect(err.Error()).To(ContainSubstring("extend, move, sweep"))
	})

	It("builds policies from params", func() {
		params := policy.DefaultParams()
		params.Direction = policy.Right
		params.Threshold = 10
		pol, err := policy.New("sweep", params)
		Expect(err).NotTo(HaveOccurred())
		sweep, ok := pol.(*policy.SweepRotate)
		Expect(ok).To(BeTrue())
		Expect(sweep.Direction).To(Equal(policy.Right))
		Expect(sweep.Threshold).To(Equal(uint8(10)))
		Expect(sweep.Delta).To(BeNumerically(">", 0))
	})
})

// misaligned returns the index of the first segment that left its axis, or -1.
func misaligned(segs []lines.Segment) int {
	for i, seg := range segs {
		if seg.Axis != lines.AxisFor(i, len(segs)) {
			return i
		}
		if seg.Axis == lines.Vertical && !seg.IsVertical() {
			return i
		}
		if seg.Axis == lines.Horizontal && !seg.IsHorizontal() {
			return i
		}
	}
	return -1
}

var _ = Describe("Invariants", func() {
	const (
		count = 10000
		ticks = 1000
		every = 100
	)

	for _, name := range policy.Names() {
		name := name
		It("keeps "+name+" segments finite and axis-aligned", func() {
			st := lines.NewStore()
			cfg := lines.DefaultGenConfig()
			cfg.Count = count
			Expect(st.Generate(rand.New(rand.NewSource(42)), cfg)).To(Succeed())

			pol, err := policy.New(name, policy.DefaultParams())
			Expect(err).NotTo(HaveOccurred())

			bounds := lines.BoundsFromSize(1000, 800)
			for tick := 0; tick < ticks; tick++ {
				st.Apply(pol, tick, bounds)
				if tick%every == every-1 || tick < every {
					Expect(misaligned(st.Segments())).To(Equal(-1), "tick %d", tick)
				}
			}

			Expect(st.Len()).To(Equal(count))
			Expect(st.Valid()).To(BeTrue())
		})
	}
})
