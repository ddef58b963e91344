package mines

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var presets = map[Difficulty]GameParams{
	Easy:   {Width: 9, Height: 9, MineCount: 10},
	Medium: {Width: 16, Height: 16, MineCount: 40},
	Hard:   {Width: 30, Height: 16, MineCount: 99},
}

// Difficulties lists the presets from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) Params() (GameParams, error) {
	p, ok := presets[d]
	if !ok {
		return GameParams{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}
	return p, nil
}

// ParseDifficulty accepts a preset name or its first letter, in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties() {
		if s == string(d) || s != "" && s == string(d)[:1] {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
