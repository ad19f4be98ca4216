// Package lines provides the segment model animated by linesim.
//
// The package defines the data every policy and renderer shares:
//
//   - [Segment]: an axis-aligned line with a signed rate
//   - [Store]: the ordered collection generated once and mutated per tick
//   - [Policy]: the per-tick update algorithm applied to a store
//   - [Bounds]: the rectangle bounce-style policies react to
//
// # Example
//
//	st := lines.NewStore()
//	_ = st.Generate(rand.New(rand.NewSource(1)), lines.DefaultGenConfig())
//	for tick := 0; tick < 100; tick++ {
//	    st.Apply(pol, tick, lines.BoundsFromSize(1000, 800))
//	}
//
// # Thread Safety
//
// A Store is owned by a single loop. Renderers read [Store.Segments] after
// Apply returns for the tick; there is no locking.
package lines
