package input

import rl "github.com/gen2brain/raylib-go/raylib"

var keyCodes = func() map[string]int32 {
	m := map[string]int32{
		"SPACE":         rl.KeySpace,
		"ESCAPE":        rl.KeyEscape,
		"ENTER":         rl.KeyEnter,
		"TAB":           rl.KeyTab,
		"BACKSPACE":     rl.KeyBackspace,
		"UP":            rl.KeyUp,
		"DOWN":          rl.KeyDown,
		"LEFT":          rl.KeyLeft,
		"RIGHT":         rl.KeyRight,
		"LEFT_SHIFT":    rl.KeyLeftShift,
		"LEFT_CONTROL":  rl.KeyLeftControl,
		"RIGHT_SHIFT":   rl.KeyRightShift,
		"RIGHT_CONTROL": rl.KeyRightControl,
	}
	for i := int32(0); i < 26; i++ {
		m[string(rune('A'+i))] = rl.KeyA + i
	}
	for i := int32(0); i < 10; i++ {
		m[string(rune('0'+i))] = rl.KeyZero + i
	}
	return m
}()

// Raylib reads the keyboard of the open raylib window.
type Raylib struct{}

func (Raylib) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (Raylib) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }
