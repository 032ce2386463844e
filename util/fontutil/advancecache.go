package fontutil

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches glyph advances and kerning, the only face queries done while measuring. Safe for concurrent calls.
type AdvanceCache struct {
	font.Face
	mu  sync.RWMutex
	gac map[rune]advanceEntry
	kc  map[[2]rune]fixed.Int26_6
}

type advanceEntry struct {
	advance fixed.Int26_6
	ok      bool
}

func NewAdvanceCache(face font.Face) *AdvanceCache {
	ac := &AdvanceCache{Face: face}
	ac.gac = make(map[rune]advanceEntry)
	ac.kc = make(map[[2]rune]fixed.Int26_6)
	return ac
}

func (ac *AdvanceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	ac.mu.RLock()
	e, ok := ac.gac[ru]
	ac.mu.RUnlock()
	if !ok {
		e.advance, e.ok = ac.Face.GlyphAdvance(ru)
		ac.mu.Lock()
		ac.gac[ru] = e
		ac.mu.Unlock()
	}
	return e.advance, e.ok
}

func (ac *AdvanceCache) Kern(r0, r1 rune) fixed.Int26_6 {
	i := [2]rune{r0, r1}
	ac.mu.RLock()
	k, ok := ac.kc[i]
	ac.mu.RUnlock()
	if !ok {
		k = ac.Face.Kern(r0, r1)
		ac.mu.Lock()
		ac.kc[i] = k
		ac.mu.Unlock()
	}
	return k
}
