package report

import (
	"boundou-check/internal/diag"
	"boundou-check/internal/parcel"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsBlock(t *testing.T) {
	var buf bytes.Buffer
	s := parcel.Statistics{
		Total:           10,
		NicadOui:        3,
		DelibereeOui:    5,
		SuperficieTotal: 12.25,
		TypesUsage:      map[string]int{"Habitation": 7, "Agriculture": 3},
		Communes:        map[string]int{"BALA": 10},
		PerCommune:      map[string]*parcel.CommuneStats{"BALA": {Parcels: 10, Superficie: 12.25, Nicad: 3, Deliberee: 5}},
	}
	New(&buf, false).Statistics(s)
	out := buf.String()
	assert.Contains(t, out, "NICAD: 3/10 (30.0%)")
	assert.Contains(t, out, "Délibérées: 5/10 (50.0%)")
	assert.Contains(t, out, "Superficie totale: 12.2 ha")
	assert.Contains(t, out, "Types d'usage: 2")
	assert.Contains(t, out, "Communes: 1")
	assert.NotContains(t, out, "BALA:")

	buf.Reset()
	New(&buf, true).Statistics(s)
	assert.Contains(t, buf.String(), "BALA: 10 parcelles, 12.2 ha, NICAD 3, délibérées 5")
}

func TestDiagnosticsRendering(t *testing.T) {
	var buf bytes.Buffer
	var l diag.List
	l.Info("boundary_start", "Validation du fichier GeoJSON: x.geojson")
	l.WarnAt(2, "geometry_missing", "Feature 2: géométrie manquante")
	l.Error("layout_missing_file", "   • app.js")
	New(&buf, false).Diagnostics(l)

	out := buf.String()
	assert.Contains(t, out, "\n🗺️  Validation du fichier GeoJSON: x.geojson\n")
	assert.Contains(t, out, "⚠️  Feature 2: géométrie manquante\n")
	assert.Contains(t, out, "\n   • app.js\n")
	// non-terminal writer: no ANSI escapes
	assert.NotContains(t, out, "\x1b[")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Summary(true, true, true)
	out := buf.String()
	assert.Contains(t, out, "GeoJSON: ✅ Valide")
	assert.Contains(t, out, "Cohérence: ✅ OK")
	assert.Contains(t, out, "Validation réussie")

	buf.Reset()
	New(&buf, false).Summary(true, false, true)
	out = buf.String()
	assert.Contains(t, out, "Parcelles: ❌ Erreur")
	assert.Contains(t, out, "Des problèmes ont été détectés")
	assert.NotContains(t, out, "Validation réussie")
}
