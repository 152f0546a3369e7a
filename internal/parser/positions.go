package parser

import (
	"sort"

	"github.com/pable/go-poker-hud/internal/model"
)

// positionLabels lists, per number of active players, the labels handed out
// after the big blind.
var positionLabels = map[int][]string{
	4:  {"UTG"},
	5:  {"UTG", "CO"},
	6:  {"UTG", "MP", "CO"},
	7:  {"UTG", "UTG+1", "MP", "CO"},
	8:  {"UTG", "UTG+1", "LJ", "HJ", "CO"},
	9:  {"UTG", "UTG+1", "UTG+2", "LJ", "HJ", "CO"},
	10: {"UTG", "UTG+1", "UTG+2", "MP1", "LJ", "HJ", "CO"},
}

// AssignPositions maps each active player to a position label given the
// button seat. When the button seat is not active the lowest active seat is
// treated as the button. It returns an empty map when no seat is active.
func AssignPositions(seats []model.Seat, button int) map[string]string {
	var active []model.Seat
	for _, s := range seats {
		if s.Active() {
			active = append(active, s)
		}
	}
	positions := make(map[string]string, len(active))
	n := len(active)
	if n == 0 {
		return positions
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Number < active[j].Number })

	btn := 0
	for i, s := range active {
		if s.Number == button {
			btn = i
			break
		}
	}

	assign := func(idx int, label string) {
		name := active[idx%n].Name
		if _, taken := positions[name]; !taken {
			positions[name] = label
		}
	}

	assign(btn, "BTN")
	if n == 1 {
		return positions
	}
	if n == 2 {
		assign(btn+1, "BB")
		return positions
	}
	assign(btn+1, "SB")
	assign(btn+2, "BB")

	idx := (btn + 3) % n
	for _, label := range positionLabels[n] {
		if idx == btn {
			break
		}
		assign(idx, label)
		idx = (idx + 1) % n
	}
	return positions
}
