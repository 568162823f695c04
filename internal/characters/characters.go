// Package characters holds the mascot art printed under a speech bubble.
package characters

import "github.com/charmbracelet/lipgloss"

// Character identifies one of the built-in mascots.
type Character int

const (
	Ferris Character = iota
	Cow
	Dragon
	Bunny
)

// Default is used for any name that is not recognised.
const Default = Ferris

var all = []Character{Ferris, Cow, Dragon, Bunny}

// Parse maps a name to its character. Unknown names, including the empty
// string, map to Default.
func Parse(name string) Character {
	switch name {
	case "ferris":
		return Ferris
	case "cow":
		return Cow
	case "dragon":
		return Dragon
	case "bunny":
		return Bunny
	default:
		return Default
	}
}

// Lookup returns the art for name, falling back to the default character.
func Lookup(name string) string {
	return Parse(name).Art()
}

// Names returns the supported character names.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.String())
	}
	return names
}

func (c Character) String() string {
	switch c {
	case Cow:
		return "cow"
	case Dragon:
		return "dragon"
	case Bunny:
		return "bunny"
	default:
		return "ferris"
	}
}

// Art returns the character's ASCII art.
func (c Character) Art() string {
	switch c {
	case Cow:
		return cowArt
	case Dragon:
		return dragonArt
	case Bunny:
		return bunnyArt
	default:
		return ferrisArt
	}
}

// Color returns the ANSI colour the art is printed in.
func (c Character) Color() lipgloss.Color {
	switch c {
	case Cow:
		return lipgloss.Color("3") // yellow
	case Dragon:
		return lipgloss.Color("1") // red
	case Bunny:
		return lipgloss.Color("15") // bright white
	default:
		return lipgloss.Color("9") // bright red
	}
}
