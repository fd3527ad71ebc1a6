package entity

import "time"

type demoRow struct {
	id      string
	fixture Fixture
	kickoff time.Time
	verdict Verdict
}

var demoRows = []demoRow{
	{
		id:      "1",
		fixture: Fixture{HomeTeam: "Arsenal", AwayTeam: "Man City", League: "Premier League"},
		kickoff: time.Date(2026, 2, 23, 20, 0, 0, 0, time.UTC),
		verdict: Verdict{Prediction: "Home Win", Odds: 2.10, Confidence: 85, Analysis: "Arsenal in great form at home.", IsElite: true},
	},
	{
		id:      "2",
		fixture: Fixture{HomeTeam: "Real Madrid", AwayTeam: "Barcelona", League: "La Liga"},
		kickoff: time.Date(2026, 2, 24, 21, 0, 0, 0, time.UTC),
		verdict: Verdict{Prediction: "Over 2.5", Odds: 1.60, Confidence: 92, Analysis: "El Clasico usually high scoring.", IsElite: true},
	},
	{
		id:      "3",
		fixture: Fixture{HomeTeam: "Bayern", AwayTeam: "Dortmund", League: "Bundesliga"},
		kickoff: time.Date(2026, 2, 25, 18, 30, 0, 0, time.UTC),
		verdict: Verdict{Prediction: "Home Win", Odds: 1.40, Confidence: 78, Analysis: "Bayern dominant at Allianz Arena.", IsElite: false},
	},
	{
		id:      "4",
		fixture: Fixture{HomeTeam: "Liverpool", AwayTeam: "Chelsea", League: "Premier League"},
		kickoff: time.Date(2026, 2, 26, 19, 45, 0, 0, time.UTC),
		verdict: Verdict{Prediction: "BTTS - Yes", Odds: 1.75, Confidence: 81, Analysis: "Both teams have defensive issues.", IsElite: false},
	},
}

// DemoPredictions returns the four fixed rows written into an empty store.
// Every row shares createdAt so ordering falls back to id.
func DemoPredictions(createdAt time.Time) []Prediction {
	return buildDemo(demoRows, createdAt)
}

// AdminSeedPredictions returns the three fixed rows rewritten by the admin reseed
func AdminSeedPredictions(createdAt time.Time) []Prediction {
	return buildDemo(demoRows[:3], createdAt)
}

func buildDemo(rows []demoRow, createdAt time.Time) []Prediction {
	out := make([]Prediction, 0, len(rows))
	for _, r := range rows {
		out = append(out, Prediction{
			ID:         r.id,
			HomeTeam:   r.fixture.HomeTeam,
			AwayTeam:   r.fixture.AwayTeam,
			League:     r.fixture.League,
			StartTime:  r.kickoff,
			Prediction: r.verdict.Prediction,
			Odds:       r.verdict.Odds,
			Confidence: r.verdict.Confidence,
			Analysis:   r.verdict.Analysis,
			Status:     StatusPending,
			IsElite:    r.verdict.IsElite,
			CreatedAt:  createdAt,
		})
	}
	return out
}
