package parcel

import (
	"boundou-check/internal/diag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "parcelles.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func record(id int, commune, nicad string) string {
	return fmt.Sprintf(`{"id_parcelle":"P%d","commune":%q,"nicad":%q,"deliberee":"Non","type_usag":"Habitation","superficie":1}`, id, commune, nicad)
}

func TestValidateNicadPercentage(t *testing.T) {
	var recs []string
	for i := 0; i < 10; i++ {
		nicad := "Non"
		if i < 3 {
			nicad = "Oui"
		}
		recs = append(recs, record(i, "BALA", nicad))
	}
	res := Validate(writeDoc(t, "["+strings.Join(recs, ",")+"]"))

	require.True(t, res.Valid)
	assert.Equal(t, 10, res.Stats.Total)
	assert.Equal(t, 3, res.Stats.NicadOui)
	assert.Equal(t, "30.0", fmt.Sprintf("%.1f", res.Stats.NicadPercent()))
	assert.Equal(t, 0.0, res.Stats.DelibereePercent())
	assert.Len(t, res.Names, 10)
	assert.Equal(t, 10, res.Stats.Communes["BALA"])
	assert.InDelta(t, 10.0, res.Stats.SuperficieTotal, 1e-9)
}

func TestValidateTotalIgnoresMissingFields(t *testing.T) {
	res := Validate(writeDoc(t, `[
		{"id_parcelle":"1","commune":"KOAR"},
		{},
		"oops",
		{"commune":"KOAR","nicad":"Oui","deliberee":"Oui","type_usag":"Agriculture","id_parcelle":"4"}
	]`))

	require.True(t, res.Valid)
	assert.Equal(t, 4, res.Stats.Total)
	assert.Equal(t, []string{"KOAR", "KOAR"}, res.Names)

	missing := res.Diagnostics.WithCode("fields_missing")
	require.Len(t, missing, 2)
	assert.Equal(t, "Parcelle 0: champs manquants: nicad, deliberee, type_usag", missing[0].Message)
	assert.Equal(t, 1, missing[1].Index)

	notObj := res.Diagnostics.WithCode("entry_not_object")
	require.Len(t, notObj, 1)
	assert.Equal(t, 2, notObj[0].Index)
	assert.Equal(t, diag.Error, notObj[0].Severity)
}

func TestValidateExactFlagMatch(t *testing.T) {
	res := Validate(writeDoc(t, `[
		{"nicad":"Oui","deliberee":"oui"},
		{"nicad":"OUI","deliberee":true},
		{"nicad":" Oui","deliberee":"Oui"},
		{"nicad":1,"deliberee":null}
	]`))

	require.True(t, res.Valid)
	assert.Equal(t, 1, res.Stats.NicadOui)
	assert.Equal(t, 1, res.Stats.DelibereeOui)
}

func TestParseSuperficie(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{12.5, 12.5, true},
		{"12.5", 12.5, true},
		{"  7 ", 7, true},
		{"-3", -3, true},
		{0.0, 0, true},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{true, 0, false},
		{nil, 0, false},
		{[]any{1.0}, 0, false},
	}
	for _, c := range cases {
		got, ok := parseSuperficie(c.in)
		assert.Equal(t, c.ok, ok, "input %#v", c.in)
		assert.Equal(t, c.want, got, "input %#v", c.in)
	}
	_, ok := parseSuperficie(math.Inf(1))
	assert.False(t, ok)
}

func TestValidateSuperficieSum(t *testing.T) {
	res := Validate(writeDoc(t, `[
		{"superficie":"abc"},
		{"superficie":"12.5"},
		{"superficie":-2},
		{"superficie":null},
		{}
	]`))
	require.True(t, res.Valid)
	assert.InDelta(t, 10.5, res.Stats.SuperficieTotal, 1e-9)
	// conversion failures are silent
	for _, d := range res.Diagnostics {
		if d.Severity == diag.Warning {
			assert.Equal(t, "fields_missing", d.Code)
		}
	}
}

func TestValidateTalliesVerbatim(t *testing.T) {
	res := Validate(writeDoc(t, `[
		{"commune":"BALA","type_usag":"Habitation","superficie":2,"nicad":"Oui"},
		{"commune":"bala","type_usag":"habitation","superficie":"3"},
		{"commune":"BALA","type_usag":"Habitation","deliberee":"Oui"},
		{"commune":"","type_usag":""},
		{"commune":42}
	]`))

	require.True(t, res.Valid)
	assert.Equal(t, map[string]int{"Habitation": 2, "habitation": 1}, res.Stats.TypesUsage)
	assert.Equal(t, map[string]int{"BALA": 2, "bala": 1}, res.Stats.Communes)
	assert.Equal(t, []string{"BALA", "bala", "BALA"}, res.Names)
	assert.Equal(t, []string{"BALA", "bala"}, res.Stats.SortedCommunes())

	bala := res.Stats.PerCommune["BALA"]
	require.NotNil(t, bala)
	assert.Equal(t, CommuneStats{Parcels: 2, Superficie: 2, Nicad: 1, Deliberee: 1}, *bala)

	nt := res.Diagnostics.WithCode("commune_not_text")
	require.Len(t, nt, 1)
	assert.Equal(t, 4, nt[0].Index)
}

func TestValidateDocumentFailures(t *testing.T) {
	res := Validate(filepath.Join(t.TempDir(), "absent.json"))
	assert.False(t, res.Valid)
	assert.Empty(t, res.Names)
	assert.True(t, res.Diagnostics.Has("file_missing"))

	res = Validate(writeDoc(t, `[{"commune":`))
	assert.False(t, res.Valid)
	assert.True(t, res.Diagnostics.Has("json_invalid"))

	res = Validate(writeDoc(t, `{"commune":"BALA"}`))
	assert.False(t, res.Valid)
	require.True(t, res.Diagnostics.Has("wrong_type"))
	assert.Equal(t, "Format incorrect: attendu un array, trouvé object", res.Diagnostics.WithCode("wrong_type")[0].Message)

	res = Validate(writeDoc(t, `[]`))
	assert.False(t, res.Valid)
	assert.True(t, res.Diagnostics.Has("no_parcels"))
}

func TestFlagOf(t *testing.T) {
	rec := map[string]any{"a": "Oui", "b": "Non", "c": nil}
	assert.Equal(t, FlagOui, FlagOf(rec, "a"))
	assert.Equal(t, FlagOther, FlagOf(rec, "b"))
	assert.Equal(t, FlagAbsent, FlagOf(rec, "c"))
	assert.Equal(t, FlagAbsent, FlagOf(rec, "d"))
	assert.Equal(t, "oui", FlagOui.String())
}
