package engine

import "github.com/lixenwraith/orrery/body"

// Update is one per-body change request
type Update struct {
	ID    string
	Patch body.Patch
}

// Advance computes one kinematic step for every body from a single snapshot
// newAngle = Angle + AngularSpeed*speed; bodies whose step is zero are left out
func Advance(bodies []body.Body, speed float64) []Update {
	if speed == 0 || len(bodies) == 0 {
		return nil
	}
	updates := make([]Update, 0, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		step := b.AngularSpeed * speed
		if step == 0 {
			continue
		}
		updates = append(updates, Update{
			ID:    b.ID,
			Patch: body.Patch{Placement: body.AtAngle(b.Angle + step)},
		})
	}
	return updates
}
