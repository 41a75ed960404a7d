package model

// IDGen hands out sequential entity ids. Each factory that needs identity
// (party creation, item generation) owns its own instance; Reset exists for
// test isolation and for re-seeding after a load.
type IDGen struct {
	next int
}

// NewIDGen returns a generator whose first id is start.
func NewIDGen(start int) *IDGen {
	return &IDGen{next: start}
}

// Next returns the next id.
func (g *IDGen) Next() int {
	id := g.next
	g.next++
	return id
}

// Reset rewinds the generator so the next id is start.
func (g *IDGen) Reset(start int) {
	g.next = start
}
