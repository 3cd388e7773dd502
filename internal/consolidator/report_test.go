package consolidator

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/models"
)

var defaultReportOptions = ReportOptions{DivisionRange: 8, DistrictSample: 3}

func TestBuildReport_Summary(t *testing.T) {
	report, err := BuildReport(fixtureData(t), defaultReportOptions)
	require.NoError(t, err)

	want := []string{
		"✓ Divisions: 3",
		"✓ Districts: 4",
		"✓ Upazilas: 4",
		"✓ Thanas: 2",
		"",
		"=== Hierarchy Verification ===",
		"Divisions by ID:",
		"  1: Barishal (বরিশাল)",
		"  2: Chattogram (চট্টগ্রাম)",
		"  3: Dhaka (ঢাকা)",
		"",
		"Districts by Division:",
		"  Division 1: 1 districts",
		"  Division 2: 2 districts",
		"  Division 3: 1 districts",
		"  Division 4: 0 districts",
		"  Division 5: 0 districts",
		"  Division 6: 0 districts",
		"  Division 7: 0 districts",
		"  Division 8: 0 districts",
		"",
		"Upazilas by District (sample):",
		"  District 1: 2 upazilas",
		"  District 2: 1 upazilas",
		"  District 3: 0 upazilas",
		"",
		"Thanas by District (sample):",
		"  District 1: 0 thanas",
		"  District 2: 0 thanas",
		"  District 3: 2 thanas",
	}
	if diff := cmp.Diff(want, report.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReport_Samples(t *testing.T) {
	report, err := BuildReport(fixtureData(t), defaultReportOptions)
	require.NoError(t, err)

	want := []string{
		"",
		"=== Sample Output Structure ===",
		"Sample Division:",
		"{",
		`  "id": "1",`,
		`  "name": "Barishal",`,
		`  "bn_name": "বরিশাল",`,
		`  "division_number": 1`,
		"}",
		"",
		"Sample District:",
		"{",
		`  "id": "1",`,
		`  "division_id": "2",`,
		`  "name": "Comilla",`,
		`  "bn_name": "কুমিল্লা",`,
		`  "district_number": 1`,
		"}",
		"",
		"Sample Upazila:",
		"{",
		`  "id": "1",`,
		`  "district_id": "1",`,
		`  "name": "Debidwar",`,
		`  "bn_name": "দেবিদ্বার",`,
		`  "type": "upazila"`,
		"}",
		"",
		"Sample Thana:",
		"{",
		`  "id": "1",`,
		`  "district_id": "3",`,
		`  "name": "Dhanmondi",`,
		`  "bn_name": "ধানমন্ডি",`,
		`  "type": "thana"`,
		"}",
	}
	if diff := cmp.Diff(want, report.Samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, report.Lines(), len(report.Summary)+len(report.Samples))
}

func TestBuildReport_FixedDivisionRangeUsesStringIDs(t *testing.T) {
	districts := make([]models.District, 0, 12)
	for div := 1; div <= 9; div++ {
		districts = append(districts, models.District{ID: "x", DivisionID: string(rune('0' + div))})
	}
	// ids that only match numerically are not counted
	districts = append(districts,
		models.District{DivisionID: "01"},
		models.District{DivisionID: " 1"},
		models.District{DivisionID: "1"},
	)
	data := Consolidate(
		[]models.Division{{ID: "1", Name: "Dhaka", BnName: "ঢাকা", DivisionNumber: 1}},
		districts,
		[]models.Upazila{{ID: "1", DistrictID: "1", Type: models.TypeUpazila}},
		[]models.Thana{{ID: "1", DistrictID: "1", Type: models.TypeThana}},
	)

	report, err := BuildReport(data, defaultReportOptions)
	require.NoError(t, err)

	assert.Contains(t, report.Summary, "  Division 1: 2 districts")
	for k := 2; k <= 8; k++ {
		assert.Contains(t, report.Summary, "  Division "+string(rune('0'+k))+": 1 districts")
	}
	assert.NotContains(t, report.Summary, "  Division 9: 1 districts", "division 9 is outside the fixed range")
}

func TestBuildReport_ZeroRanges(t *testing.T) {
	report, err := BuildReport(fixtureData(t), ReportOptions{})
	require.NoError(t, err)

	want := []string{
		"",
		"Districts by Division:",
		"",
		"Upazilas by District (sample):",
		"",
		"Thanas by District (sample):",
	}
	assert.Equal(t, want, report.Summary[len(report.Summary)-len(want):])
}

func TestBuildReport_EmptyCollection(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *models.AdministrativeData)
		collection string
	}{
		{"no divisions", func(d *models.AdministrativeData) { d.Divisions = nil }, "divisions"},
		{"no districts", func(d *models.AdministrativeData) { d.Districts = []models.District{} }, "districts"},
		{"no upazilas", func(d *models.AdministrativeData) { d.Upazilas = nil }, "upazilas"},
		{"no thanas", func(d *models.AdministrativeData) { d.Thanas = nil }, "thanas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := fixtureData(t)
			tt.mutate(data)

			_, err := BuildReport(data, defaultReportOptions)
			require.Error(t, err)
			stdErr := apperrors.AsStandardError(err)
			assert.Equal(t, apperrors.ErrCodeIndexError, stdErr.Code)
			assert.Equal(t, tt.collection, stdErr.Metadata["collection"])
		})
	}
}

func TestCounts_StringEquality(t *testing.T) {
	data := fixtureData(t)

	assert.Equal(t, 2, CountDistrictsInDivision(data, "2"))
	assert.Equal(t, 0, CountDistrictsInDivision(data, "02"))
	assert.Equal(t, 2, CountUpazilasInDistrict(data, "1"))
	assert.Equal(t, 1, CountUpazilasInDistrict(data, "99"))
	assert.Equal(t, 2, CountThanasInDistrict(data, "3"))
}

func TestCounts_NonStringForeignKeysNeverMatch(t *testing.T) {
	data := Consolidate(
		nil,
		[]models.District{{DivisionID: json.Number("1")}, {DivisionID: "1"}, {DivisionID: nil}},
		[]models.Upazila{{DistrictID: json.Number("1")}, {DistrictID: true}},
		[]models.Thana{{DistrictID: json.Number("2")}, {DistrictID: "2"}},
	)

	assert.Equal(t, 1, CountDistrictsInDivision(data, "1"))
	assert.Equal(t, 0, CountUpazilasInDistrict(data, "1"))
	assert.Equal(t, 1, CountThanasInDistrict(data, "2"))
}

func TestBuildReport_DisplaysNonStringValues(t *testing.T) {
	data := fixtureData(t)
	data.Divisions = []models.Division{
		{ID: json.Number("1"), Name: "Dhaka", BnName: nil, DivisionNumber: 1},
		{ID: json.Number("2.5"), Name: true, BnName: []interface{}{"চট্টগ্রাম", json.Number("7")}, DivisionNumber: 2},
		{ID: "3", Name: map[string]interface{}{"en": "Sylhet"}, BnName: false, DivisionNumber: 3},
	}

	report, err := BuildReport(data, defaultReportOptions)
	require.NoError(t, err)

	assert.Contains(t, report.Summary, "  1: Dhaka (None)")
	assert.Contains(t, report.Summary, "  2.5: True (['চট্টগ্রাম', 7])")
	assert.Contains(t, report.Summary, "  3: {'en': 'Sylhet'} (False)")
}

func TestSavedLines(t *testing.T) {
	assert.Equal(t, []string{
		"",
		"✓ JavaScript object saved to: client/public/bangladeshAdministrativeData.js",
		"✓ JSON object saved to: client/public/bangladeshAdministrativeData.json",
	}, SavedLines("client/public/bangladeshAdministrativeData.js", "client/public/bangladeshAdministrativeData.json"))
}
