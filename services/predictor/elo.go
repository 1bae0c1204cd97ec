package predictor

import "math"

const (
	// InitialRating is where every team starts before any result is seen.
	InitialRating = 1500
	// KFactor controls how far a single result moves a rating before the
	// margin multiplier.
	KFactor = 32
	// HomeAdvantage is added to the home side's effective rating.
	HomeAdvantage = 30
	// ratingScale is the logistic spread: a 400 point gap means the
	// stronger side is expected to win ten times out of eleven.
	ratingScale = 400
	// marginDivisor converts a rating gap into an expected score margin.
	marginDivisor = 10
)

// ledger tracks team ratings while replaying a season.
type ledger struct {
	ratings map[string]float64
	played  map[string]int
}

func newLedger() *ledger {
	return &ledger{
		ratings: map[string]float64{},
		played:  map[string]int{},
	}
}

func (l *ledger) rating(team string) float64 {
	r, ok := l.ratings[team]
	if !ok {
		return InitialRating
	}
	return r
}

// expectation is the probability the first side wins given effective
// ratings (home advantage already applied).
func expectation(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/ratingScale))
}

// apply updates both teams' ratings with one completed result. The K factor
// is scaled by ln(|margin|+1) so a blowout moves ratings further than a
// golden-point escape. A draw scores 0.5 for each side.
func (l *ledger) apply(home, away string, homeScore, awayScore int) {
	homeRating := l.rating(home)
	awayRating := l.rating(away)

	expected := expectation(homeRating+HomeAdvantage, awayRating)

	var actual float64
	switch {
	case homeScore > awayScore:
		actual = 1
	case homeScore < awayScore:
		actual = 0
	default:
		actual = 0.5
	}

	margin := homeScore - awayScore
	if margin < 0 {
		margin = -margin
	}
	k := KFactor * math.Log(float64(margin)+1)
	if margin == 0 {
		// draws still nudge mismatched ratings together
		k = KFactor
	}

	delta := k * (actual - expected)
	l.ratings[home] = homeRating + delta
	l.ratings[away] = awayRating - delta
	l.played[home]++
	l.played[away]++
}

// predict computes the home win probability and expected margin for a
// pairing at the given ratings.
func predict(homeRating, awayRating float64) (winProbability, expectedMargin float64) {
	effective := homeRating + HomeAdvantage
	winProbability = expectation(effective, awayRating)
	expectedMargin = (effective - awayRating) / marginDivisor
	return winProbability, expectedMargin
}
