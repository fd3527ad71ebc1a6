package gemini

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

const matchPromptTemplate = `Analyze the upcoming football match between %s and %s in the %s.
Provide a detailed prediction including:
1. Recommended bet (e.g., Home Win, Over 2.5, BTTS)
2. Odds estimation in decimal format
3. Confidence score (0-100)
4. Detailed tactical analysis and reasoning.
Mark the prediction as elite only when the evidence is unusually strong.

Use Google Search to find the latest team news, injuries, and recent form.`

const dailyPromptTemplate = `Find the top %d highest confidence football match predictions for today.
Focus on major leagues (Premier League, La Liga, Serie A, Bundesliga, Ligue 1).
Return them as a JSON array of match objects.`

func matchPrompt(f entity.Fixture) string {
	return fmt.Sprintf(matchPromptTemplate, f.HomeTeam, f.AwayTeam, f.League)
}

func dailyPrompt(count int) string {
	return fmt.Sprintf(dailyPromptTemplate, count)
}

var verdictProperties = map[string]*genai.Schema{
	"prediction": {Type: genai.TypeString},
	"odds":       {Type: genai.TypeNumber},
	"confidence": {Type: genai.TypeNumber},
	"analysis":   {Type: genai.TypeString},
	"isElite":    {Type: genai.TypeBoolean},
}

var verdictRequired = []string{"prediction", "odds", "confidence", "analysis", "isElite"}

// verdictSchema is the response schema for a single match analysis
func verdictSchema() *genai.Schema {
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: verdictProperties,
		Required:   verdictRequired,
	}
}

// pickListSchema is the response schema for the daily picks
func pickListSchema() *genai.Schema {
	properties := map[string]*genai.Schema{
		"homeTeam": {Type: genai.TypeString},
		"awayTeam": {Type: genai.TypeString},
		"league":   {Type: genai.TypeString},
	}
	for k, v := range verdictProperties {
		properties[k] = v
	}

	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: properties,
			Required:   append([]string{"homeTeam", "awayTeam", "league"}, verdictRequired...),
		},
	}
}
