package metrics

import "github.com/san-kum/linesim/internal/lines"

// MeanLength tracks the average segment length at the latest tick.
type MeanLength struct {
	name  string
	value float64
}

func NewMeanLength() *MeanLength {
	return &MeanLength{name: "mean_length"}
}

func (m *MeanLength) Name() string { return m.name }

func (m *MeanLength) Observe(segs []lines.Segment, tick int) {
	if len(segs) == 0 {
		m.value = 0
		return
	}
	total := 0.0
	for _, s := range segs {
		total += float64(s.Length())
	}
	m.value = total / float64(len(segs))
}

func (m *MeanLength) Value() float64 { return m.value }

func (m *MeanLength) Reset() { m.value = 0 }
