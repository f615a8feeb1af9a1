package junction

// Collision is a pair of vehicles whose boxes overlap inside the junction.
type Collision struct {
	A, B    *Vehicle
	Overlap float64 // Shared area in px²
}

// DetectCollision returns the first colliding pair in insertion order.
// Two vehicles collide when their overlap exceeds the configured share of a
// vehicle's area and both boxes reach into the intersection.
func (t *Traffic) DetectCollision() (Collision, bool) {
	vc := t.cfg.Vehicle
	junction := t.cfg.World.Intersection.Box()
	threshold := vc.Width * vc.Height * t.cfg.Crash.OverlapThreshold

	for i, a := range t.vehicles {
		boxA := a.Box(vc.Width, vc.Height)
		if !boxA.Touches(junction) {
			continue
		}
		for _, b := range t.vehicles[i+1:] {
			boxB := b.Box(vc.Width, vc.Height)
			if !boxB.Touches(junction) {
				continue
			}
			if overlap := boxA.OverlapArea(boxB); overlap > threshold {
				return Collision{A: a, B: b, Overlap: overlap}, true
			}
		}
	}
	return Collision{}, false
}
