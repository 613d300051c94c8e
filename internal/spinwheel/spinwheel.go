// Package spinwheel implements the gamification widget: a weighted draw
// over a fixed prize table, shown at most once per client.
package spinwheel

import "math/rand"

type Prize struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Probability int    `json:"probability"` // out of 100
}

var prizes = []Prize{
	{ID: "1", Label: "5% OFF", Value: "SPIN5", Probability: 30},
	{ID: "2", Label: "10% OFF", Value: "SPIN10", Probability: 25},
	{ID: "3", Label: "Free Shipping", Value: "FREESHIP", Probability: 20},
	{ID: "4", Label: "15% OFF", Value: "SPIN15", Probability: 15},
	{ID: "5", Label: "20% OFF", Value: "SPIN20", Probability: 8},
	{ID: "6", Label: "Try Again", Value: "", Probability: 2},
}

// Prizes returns the wheel segments in display order.
func Prizes() []Prize {
	return append([]Prize(nil), prizes...)
}

// Spin draws one prize by cumulative probability.
func Spin(r *rand.Rand) Prize {
	roll := r.Float64() * 100
	cumulative := 0.0
	selected := prizes[0]
	for _, p := range prizes {
		cumulative += float64(p.Probability)
		if roll <= cumulative {
			selected = p
			break
		}
	}
	return selected
}
