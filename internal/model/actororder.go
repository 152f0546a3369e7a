package model

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

// ResolveActorOrder records, for each postflop street, the players in the
// order of their first bet, raise, call, check or fold.
func (h *Hand) ResolveActorOrder() {
	for _, s := range Postflop {
		var order []string
		seen := make(map[string]bool)
		for _, a := range h.Actions {
			if a.Street != s || a.Player == "" || !a.Kind.IsDecision() || seen[a.Player] {
				continue
			}
			seen[a.Player] = true
			order = append(order, a.Player)
		}
		h.ActorOrder[s] = order
	}
}

// InPosition reports whether player acts after ref on street s. When player
// and ref are the same, the player is in position if they act after every
// opponent that had not folded on the street before the player's first
// decision. ok is false when either player is missing from the street's
// actor order.
func (h *Hand) InPosition(player, ref string, s Street) (ip, ok bool) {
	order := h.ActorOrder[s]
	pi := indexOf(order, player)
	ri := indexOf(order, ref)
	if pi < 0 || ri < 0 {
		return false, false
	}
	if player != ref {
		return pi > ri, true
	}
	first := h.firstDecision(player, s)
	for i, opp := range order {
		if opp == player || h.foldedBefore(opp, s, first) {
			continue
		}
		if i > pi {
			return false, true
		}
	}
	return true, true
}

func (h *Hand) firstDecision(player string, s Street) int {
	for _, a := range h.Actions {
		if a.Street == s && a.Player == player && a.Kind.IsDecision() {
			return a.Seq
		}
	}
	return 0
}

func (h *Hand) foldedBefore(player string, s Street, seq int) bool {
	for _, a := range h.Actions {
		if a.Seq >= seq {
			break
		}
		if a.Street == s && a.Player == player && a.Kind == ActionFold {
			return true
		}
	}
	return false
}

// OutOfPositionTo reports whether player acts before other on street s.
// ok is false when either player is missing from the actor order.
func (h *Hand) OutOfPositionTo(player, other string, s Street) (oop, ok bool) {
	order := h.ActorOrder[s]
	pi := indexOf(order, player)
	oi := indexOf(order, other)
	if pi < 0 || oi < 0 {
		return false, false
	}
	if player == other {
		return false, true
	}
	return pi < oi, true
}
