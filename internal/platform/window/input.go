package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Keys maps each button to the keyboard keys that press it.
type Keys map[core.Button][]ebiten.Key

// DefaultKeys uses the device's button letters plus arrows.
func DefaultKeys() Keys {
	return Keys{
		core.ButtonConfirm: {ebiten.KeyA, ebiten.KeyEnter, ebiten.KeySpace},
		core.ButtonLeft:    {ebiten.KeyB, ebiten.KeyArrowLeft},
		core.ButtonRight:   {ebiten.KeyY, ebiten.KeyArrowRight},
		core.ButtonExit:    {ebiten.KeyX, ebiten.KeyEscape},
	}
}

// Buttons is a core.Buttons fed from the ebiten update callback.
type Buttons struct {
	mu   sync.Mutex
	keys Keys
	held map[core.Button]bool
}

// NewButtons creates a button set for the given key map.
func NewButtons(keys Keys) *Buttons {
	return &Buttons{
		keys: keys,
		held: make(map[core.Button]bool),
	}
}

// Poll refreshes the held state. pressed is ebiten.IsKeyPressed outside
// tests.
func (b *Buttons) Poll(pressed func(ebiten.Key) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for btn, keys := range b.keys {
		down := false
		for _, k := range keys {
			if pressed(k) {
				down = true
				break
			}
		}
		b.held[btn] = down
	}
}

// Pressed implements core.Buttons.
func (b *Buttons) Pressed(btn core.Button) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.held[btn]
}
