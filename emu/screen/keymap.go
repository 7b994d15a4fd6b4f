package screen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faiface/pixel/pixelgl"
)

// KeyMap binds each hex key to a keyboard button.
type KeyMap [16]pixelgl.Button

// DefaultKeyMap lays the COSMAC VIP keypad over the left of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var DefaultKeyMap = KeyMap{
	0x0: pixelgl.KeyX,
	0x1: pixelgl.Key1,
	0x2: pixelgl.Key2,
	0x3: pixelgl.Key3,
	0x4: pixelgl.KeyQ,
	0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE,
	0x7: pixelgl.KeyA,
	0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD,
	0xA: pixelgl.KeyZ,
	0xB: pixelgl.KeyC,
	0xC: pixelgl.Key4,
	0xD: pixelgl.KeyR,
	0xE: pixelgl.KeyF,
	0xF: pixelgl.KeyV,
}

// ParseKeyMap applies overrides to DefaultKeyMap. Keys are hex digits, values
// are pixelgl button names ("Q", "Space", "Up").
func ParseKeyMap(overrides map[string]string) (KeyMap, error) {
	km := DefaultKeyMap
	for k, name := range overrides {
		key, err := strconv.ParseUint(k, 16, 8)
		if err != nil || key > 0xF {
			return km, fmt.Errorf("keymap: %q is not a hex key", k)
		}
		b, ok := buttonByName(name)
		if !ok {
			return km, fmt.Errorf("keymap: unknown button %q for key %X", name, key)
		}
		km[key] = b
	}
	return km, nil
}

func buttonByName(name string) (pixelgl.Button, bool) {
	for b := pixelgl.KeySpace; b <= pixelgl.KeyLast; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return pixelgl.KeyUnknown, false
}
