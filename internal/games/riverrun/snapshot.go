package riverrun

import "math"

// Snapshot contains the complete run state for determinism testing.
// Positions are stored as float bits so the hash is exact.
type Snapshot struct {
	Tick    uint64
	State   string
	Score   int
	Lives   int
	Fuel    uint64
	Elapsed uint64
	ShipX   uint64
	ShipY   uint64

	// Each bullet is 3 values: X, Y, Dead
	BulletData []uint64

	// Each enemy is 5 values: X, Y, VY, Kind, Dead
	EnemyData []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]uint64, 0, len(g.bullets)*3)
	for _, b := range g.bullets {
		bulletData = append(bulletData, math.Float64bits(b.X), math.Float64bits(b.Y), boolBits(b.Dead))
	}

	enemyData := make([]uint64, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		enemyData = append(enemyData,
			math.Float64bits(e.X),
			math.Float64bits(e.Y),
			math.Float64bits(e.VY),
			uint64(e.Kind), //#nosec G115 -- kind is 0 or 1
			boolBits(e.Dead),
		)
	}

	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		Fuel:       math.Float64bits(g.fuel),
		Elapsed:    math.Float64bits(g.elapsed),
		ShipX:      math.Float64bits(g.ship.X),
		ShipY:      math.Float64bits(g.ship.Y),
		BulletData: bulletData,
		EnemyData:  enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + snap.Fuel
	h = h*31 + snap.Elapsed
	h = h*31 + snap.ShipX
	h = h*31 + snap.ShipY

	h = h*31 + uint64(len(snap.BulletData))
	for _, v := range snap.BulletData {
		h = h*31 + v
	}

	h = h*31 + uint64(len(snap.EnemyData))
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
