package catcher

// Integrate advances every entity by speed*dt and culls those that left
// the playfield. Ground items stop on the resting line restY and are never
// culled by position. The slice is filtered in place.
func Integrate(entities []Entity, dt, fieldH, restY float64) []Entity {
	live := entities[:0]
	for _, e := range entities {
		if g, ok := e.Category.(GroundItem); ok {
			if !g.Settled {
				e.Y += e.Speed * dt
				if e.Y >= restY {
					e.Y = restY
					e.Category = GroundItem{Points: g.Points, Settled: true}
				}
			}
			live = append(live, e)
			continue
		}

		e.Y += e.Speed * dt
		if e.Y >= fieldH+e.H {
			continue
		}
		live = append(live, e)
	}
	return live
}
