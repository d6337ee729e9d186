package session

import (
	"jigsaw/pkg/game/items"
	"jigsaw/pkg/game/logic"
)

// Player is one player's run-time state for a world. It owns the cached
// merge evaluator; nothing here is shared across players.
type Player struct {
	world *World

	pieceCount int
	victory    bool
	eval       *logic.Evaluator
}

// NewPlayer returns a fresh player with the start inventory collected.
func (w *World) NewPlayer() *Player {
	p := &Player{
		world: w,
		eval:  logic.NewEvaluator(w.Width, w.Height),
	}
	for _, item := range w.StartInventory {
		p.Collect(item)
	}
	return p
}

// Collect applies an item-collect event. Any collect invalidates the merge
// cache; piece bundles additionally raise the piece count.
func (p *Player) Collect(item items.Item) {
	if item.Pieces > 0 {
		p.pieceCount += item.Pieces
		if p.pieceCount > p.world.NPieces() {
			p.pieceCount = p.world.NPieces()
		}
	}
	if item.Name == items.VictoryName {
		p.victory = true
	}
	p.eval.Invalidate()
}

// Remove applies an item-remove event, the inverse of Collect.
func (p *Player) Remove(item items.Item) {
	if item.Pieces > 0 {
		p.pieceCount -= item.Pieces
		if p.pieceCount < 0 {
			p.pieceCount = 0
		}
	}
	if item.Name == items.VictoryName {
		p.victory = false
	}
	p.eval.Invalidate()
}

// PieceCount returns the number of pieces the player holds.
func (p *Player) PieceCount() int {
	return p.pieceCount
}

// HeldPieces returns the pieces the player holds: the committed collection
// order grants pieces in sequence, so holding k pieces means holding the
// first k of the order.
func (p *Player) HeldPieces() []int {
	return p.world.order[:p.pieceCount]
}

// Merges returns the player's current merge count via the cached evaluator.
func (p *Player) Merges() int {
	return p.eval.Merges(p.HeldPieces())
}

// CanReach reports whether the player satisfies a location's access rule.
func (p *Player) CanReach(loc *Location) bool {
	return loc.Access(p.pieceCount)
}

// HasVictory reports whether the player holds the victory marker.
func (p *Player) HasVictory() bool {
	return p.victory
}
