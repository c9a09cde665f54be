package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema/country"
)

func TestList_Region(t *testing.T) {
	out, _, err := run(t, "", "list", "--region", "Europe", fixture)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, out)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[2], "Bosnia and Herzegovina  BIH   HRV,MNE,SRB"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Portugal"), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "Spain"), lines[4])
}

func TestList_EmptyRegion(t *testing.T) {
	out, _, err := run(t, "", "list", "-r", "Asia", fixture)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 2, "header and separator only")
}

func TestList_Borders(t *testing.T) {
	out, _, err := run(t, "", "list", "--country", "PRT", "--format", "json", fixture)
	require.NoError(t, err)

	var rows []country.SmallCountry
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Spain", rows[0].Name)
	assert.Equal(t, []string{"AND", "FRA", "GIB", "PRT", "MAR"}, rows[0].Borders)
}

func TestList_UnknownRegion(t *testing.T) {
	_, _, err := run(t, "", "list", "--region", "Atlantis", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown region "Atlantis"`)
}

func TestList_CountryOutsideRegion(t *testing.T) {
	_, _, err := run(t, "", "list", "--region", "Africa", "--country", "ESP", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no country "ESP" in region Africa`)
}
