// Package tarot produces the dashboard's deterministic daily three-card
// draw: the same date always yields the same cards, on every device,
// without any stored state.
package tarot

import "math"

// DrawCount is the number of cards in a daily reading.
const DrawCount = 3

// DailyDraw returns the reading for the given date string ("2006-01-02").
// The draw is a seeded Fisher-Yates shuffle of the deck; the seed and the
// PRNG reproduce the legacy client exactly so historical readings match.
func DailyDraw(date string) []Card {
	return drawCards(Deck, hashDate(date), DrawCount)
}

// hashDate is the classic 32-bit string hash ((h<<5)-h+c), absolute value.
func hashDate(date string) int {
	var h int32
	for _, c := range date {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// seededRandom yields a [0,1) value from a sine-wave fold of the seed.
// Not a statistical PRNG, but stable across platforms for the same seed.
func seededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

func drawCards(deck []Card, seed, count int) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)

	currentSeed := seed
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(seededRandom(currentSeed) * float64(i+1))
		currentSeed++
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
