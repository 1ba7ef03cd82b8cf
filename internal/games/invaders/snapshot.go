package invaders

import "math"

// Snapshot contains the complete run state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	Lives    int
	Wave     int
	CannonX  uint64
	FleetDir int

	// Each invader is 4 values: X, Y, Kind, Dead
	InvaderData []uint64

	// Each projectile is 2 values: X, Y
	ShotData []uint64
	BombData []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	invaderData := make([]uint64, 0, len(g.fleet.Invaders)*4)
	for _, v := range g.fleet.Invaders {
		dead := uint64(0)
		if v.Dead {
			dead = 1
		}
		invaderData = append(invaderData,
			math.Float64bits(v.X),
			math.Float64bits(v.Y),
			uint64(v.Kind), //#nosec G115 -- kind is 0..2
			dead,
		)
	}

	return Snapshot{
		Tick:        g.tick,
		State:       g.state,
		Score:       g.score,
		Lives:       g.lives,
		Wave:        g.wave,
		CannonX:     math.Float64bits(g.cannon.X),
		FleetDir:    int(g.fleet.Dir),
		InvaderData: invaderData,
		ShotData:    projectileData(g.shots),
		BombData:    projectileData(g.bombs),
	}
}

func projectileData(ps []*Projectile) []uint64 {
	data := make([]uint64, 0, len(ps)*2)
	for _, p := range ps {
		data = append(data, math.Float64bits(p.X), math.Float64bits(p.Y))
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDir) //#nosec G115 -- hash computation
	h = h*31 + snap.CannonX

	for _, data := range [][]uint64{snap.InvaderData, snap.ShotData, snap.BombData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}

	return h
}
