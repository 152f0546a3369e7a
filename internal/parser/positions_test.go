package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pable/go-poker-hud/internal/model"
)

func seatsOf(numbers ...int) []model.Seat {
	seats := make([]model.Seat, len(numbers))
	for i, n := range numbers {
		seats[i] = model.Seat{Number: n, Name: fmt.Sprintf("seat%d", n), Stack: 1000}
	}
	return seats
}

func TestAssignPositionsHeadsUp(t *testing.T) {
	got := AssignPositions(seatsOf(3, 7), 7)
	assert.Equal(t, map[string]string{"seat7": "BTN", "seat3": "BB"}, got)
}

func TestAssignPositionsNineHanded(t *testing.T) {
	got := AssignPositions(seatsOf(1, 2, 3, 4, 5, 6, 7, 8, 9), 5)
	want := map[string]string{
		"seat5": "BTN", "seat6": "SB", "seat7": "BB",
		"seat8": "UTG", "seat9": "UTG+1", "seat1": "UTG+2",
		"seat2": "LJ", "seat3": "HJ", "seat4": "CO",
	}
	assert.Equal(t, want, got)

	labels := make(map[string]bool)
	for _, l := range got {
		assert.False(t, labels[l], "duplicate label %s", l)
		labels[l] = true
	}
}

func TestAssignPositionsTableSizes(t *testing.T) {
	cases := []struct {
		seats []int
		want  []string // in seat order
	}{
		{[]int{1, 2, 3}, []string{"BTN", "SB", "BB"}},
		{[]int{1, 2, 3, 4}, []string{"BTN", "SB", "BB", "UTG"}},
		{[]int{1, 2, 3, 4, 5}, []string{"BTN", "SB", "BB", "UTG", "CO"}},
		{[]int{1, 2, 3, 4, 5, 6}, []string{"BTN", "SB", "BB", "UTG", "MP", "CO"}},
		{[]int{1, 2, 3, 4, 5, 6, 7}, []string{"BTN", "SB", "BB", "UTG", "UTG+1", "MP", "CO"}},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8}, []string{"BTN", "SB", "BB", "UTG", "UTG+1", "LJ", "HJ", "CO"}},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []string{"BTN", "SB", "BB", "UTG", "UTG+1", "UTG+2", "MP1", "LJ", "HJ", "CO"}},
	}
	for _, c := range cases {
		got := AssignPositions(seatsOf(c.seats...), 1)
		assert.Len(t, got, len(c.seats))
		for i, n := range c.seats {
			assert.Equal(t, c.want[i], got[fmt.Sprintf("seat%d", n)], "%d-handed seat %d", len(c.seats), n)
		}
	}
}

func TestAssignPositionsStaleButton(t *testing.T) {
	got := AssignPositions(seatsOf(2, 4, 6), 1)
	assert.Equal(t, map[string]string{"seat2": "BTN", "seat4": "SB", "seat6": "BB"}, got)
}

func TestAssignPositionsSkipsEmptySeats(t *testing.T) {
	seats := seatsOf(1, 2, 3, 4)
	seats[2].Stack = 0
	seats = append(seats, model.Seat{Number: 5})
	got := AssignPositions(seats, 1)
	assert.Equal(t, map[string]string{"seat1": "BTN", "seat2": "SB", "seat4": "BB"}, got)
}

func TestAssignPositionsNoActiveSeats(t *testing.T) {
	assert.Empty(t, AssignPositions(nil, 1))
	assert.Empty(t, AssignPositions([]model.Seat{{Number: 1, Name: "x"}}, 1))
}

func TestAssignPositionsUnsortedInput(t *testing.T) {
	got := AssignPositions(seatsOf(6, 2, 4), 4)
	assert.Equal(t, map[string]string{"seat4": "BTN", "seat6": "SB", "seat2": "BB"}, got)
}
