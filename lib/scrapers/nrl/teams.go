package nrl

import (
	"fmt"

	"nrltips-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Team struct {
	Name     string
	Nickname string
}

// Teams is the registry of current NRL clubs. The draw page labels teams
// by nickname while other pages use full names, so both are kept.
var Teams = []Team{
	{Name: "Brisbane Broncos", Nickname: "Broncos"},
	{Name: "Canberra Raiders", Nickname: "Raiders"},
	{Name: "Canterbury-Bankstown Bulldogs", Nickname: "Bulldogs"},
	{Name: "Cronulla-Sutherland Sharks", Nickname: "Sharks"},
	{Name: "Dolphins", Nickname: "Dolphins"},
	{Name: "Gold Coast Titans", Nickname: "Titans"},
	{Name: "Manly Warringah Sea Eagles", Nickname: "Sea Eagles"},
	{Name: "Melbourne Storm", Nickname: "Storm"},
	{Name: "Newcastle Knights", Nickname: "Knights"},
	{Name: "New Zealand Warriors", Nickname: "Warriors"},
	{Name: "North Queensland Cowboys", Nickname: "Cowboys"},
	{Name: "Parramatta Eels", Nickname: "Eels"},
	{Name: "Penrith Panthers", Nickname: "Panthers"},
	{Name: "South Sydney Rabbitohs", Nickname: "Rabbitohs"},
	{Name: "St George Illawarra Dragons", Nickname: "Dragons"},
	{Name: "Sydney Roosters", Nickname: "Roosters"},
	{Name: "Wests Tigers", Nickname: "Wests Tigers"},
}

const fuzzyMatchThreshold = 0.85

// ResolveTeam maps a scraped team label to its registry entry. Exact
// normalized matches win, then labels that contain a nickname ("2024
// Penrith Panthers" and the like), otherwise the highest Jaro-Winkler
// similarity above the threshold does.
func ResolveTeam(label string) (Team, error) {
	normalized := textutil.NormalizeName(label)
	if normalized == "" {
		return Team{}, fmt.Errorf("empty team label")
	}

	for _, team := range Teams {
		if normalized == textutil.NormalizeName(team.Name) ||
			normalized == textutil.NormalizeName(team.Nickname) {
			return team, nil
		}
	}

	for _, team := range Teams {
		if textutil.MatchName(label, []string{textutil.NormalizeName(team.Nickname)}) {
			return team, nil
		}
	}

	best := Team{}
	bestScore := 0.0
	for _, team := range Teams {
		score := matchr.JaroWinkler(normalized, textutil.NormalizeName(team.Name), false)
		if nick := matchr.JaroWinkler(normalized, textutil.NormalizeName(team.Nickname), false); nick > score {
			score = nick
		}
		if score > bestScore {
			bestScore = score
			best = team
		}
	}
	if bestScore < fuzzyMatchThreshold {
		return Team{}, fmt.Errorf("unknown team %q", label)
	}
	return best, nil
}
