package nrl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTeamExact(t *testing.T) {
	team, err := ResolveTeam("Brisbane Broncos")
	require.NoError(t, err)
	require.Equal(t, "Brisbane Broncos", team.Name)

	team, err = ResolveTeam("broncos")
	require.NoError(t, err)
	require.Equal(t, "Brisbane Broncos", team.Name)
}

func TestResolveTeamContains(t *testing.T) {
	// sponsor or season prefixes still carry the nickname
	team, err := ResolveTeam("2024 Penrith Panthers")
	require.NoError(t, err)
	require.Equal(t, "Penrith Panthers", team.Name)

	team, err = ResolveTeam("The Dolphins")
	require.NoError(t, err)
	require.Equal(t, "Dolphins", team.Nickname)
}

func TestResolveTeamFuzzy(t *testing.T) {
	// the draw page occasionally renders st george with a period
	team, err := ResolveTeam("St. George Illawarra Dragons")
	require.NoError(t, err)
	require.Equal(t, "St George Illawarra Dragons", team.Name)
}

func TestResolveTeamUnknown(t *testing.T) {
	_, err := ResolveTeam("Auckland Blues")
	require.Error(t, err)

	_, err = ResolveTeam("   ")
	require.Error(t, err)
}

func TestSlug(t *testing.T) {
	require.Equal(t, "Sea-Eagles", Slug("Sea Eagles"))
	require.Equal(t, "Storm", Slug(" Storm "))
}
