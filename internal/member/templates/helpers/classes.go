package helpers

import "strings"

// NavClass returns sidebar link classes.
func NavClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// RankClass maps a leadership rank to its gradient badge.
func RankClass(rank string) string {
	switch strings.ToUpper(strings.TrimSpace(rank)) {
	case "DIAMOND":
		return "badge rank-diamond"
	case "EMERALD":
		return "badge rank-emerald"
	case "GOLD":
		return "badge rank-gold"
	case "RUBY":
		return "badge rank-ruby"
	case "SAPPHIRE":
		return "badge rank-sapphire"
	default:
		return "badge"
	}
}

// ToneClass maps a catalog tone onto a text colour class.
func ToneClass(tone string) string {
	tone = strings.ToLower(strings.TrimSpace(tone))
	if tone == "" {
		return ""
	}
	return "tone-" + tone
}

// LevelClass styles a level-unlock tile.
func LevelClass(unlocked bool) string {
	if unlocked {
		return "level card unlocked"
	}
	return "level card locked"
}

// ToastClass styles a notice by severity.
func ToastClass(severity string) string {
	if severity == "destructive" {
		return "toast destructive"
	}
	return "toast"
}
