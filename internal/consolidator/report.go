// internal/consolidator/report.go
package consolidator

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/console"
	"bd-admin-hierarchy/internal/models"
)

// ReportOptions bounds the hierarchy walk. The ranges are fixed id
// sequences 1..N, not derived from the data.
type ReportOptions struct {
	DivisionRange  int
	DistrictSample int
}

// Report is the console verification output, split around the point where
// the output files are written.
type Report struct {
	Summary []string
	Samples []string
}

// Lines returns the summary followed by the samples.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Summary)+len(r.Samples))
	lines = append(lines, r.Summary...)
	return append(lines, r.Samples...)
}

// SavedLines announces the two written files.
func SavedLines(modulePath, jsonPath string) []string {
	return append(moduleSavedLines(modulePath), jsonSavedLines(jsonPath)...)
}

func moduleSavedLines(path string) []string {
	return []string{"", fmt.Sprintf("%s JavaScript object saved to: %s", console.CheckMark, path)}
}

func jsonSavedLines(path string) []string {
	return []string{fmt.Sprintf("%s JSON object saved to: %s", console.CheckMark, path)}
}

// BuildReport renders the verification report for data. It fails with an
// INDEX_ERROR when a collection has no first element to sample.
func BuildReport(data *models.AdministrativeData, opts ReportOptions) (*Report, error) {
	samples, err := sampleLines(data)
	if err != nil {
		return nil, err
	}
	return &Report{
		Summary: summaryLines(data, opts),
		Samples: samples,
	}, nil
}

func summaryLines(data *models.AdministrativeData, opts ReportOptions) []string {
	lines := []string{
		fmt.Sprintf("%s Divisions: %d", console.CheckMark, len(data.Divisions)),
		fmt.Sprintf("%s Districts: %d", console.CheckMark, len(data.Districts)),
		fmt.Sprintf("%s Upazilas: %d", console.CheckMark, len(data.Upazilas)),
		fmt.Sprintf("%s Thanas: %d", console.CheckMark, len(data.Thanas)),
		"",
		"=== Hierarchy Verification ===",
		"Divisions by ID:",
	}
	for _, d := range data.Divisions {
		lines = append(lines, fmt.Sprintf("  %s: %s (%s)", displayText(d.ID), displayText(d.Name), displayText(d.BnName)))
	}

	lines = append(lines, "", "Districts by Division:")
	for k := 1; k <= opts.DivisionRange; k++ {
		lines = append(lines, fmt.Sprintf("  Division %d: %d districts", k, CountDistrictsInDivision(data, strconv.Itoa(k))))
	}

	lines = append(lines, "", "Upazilas by District (sample):")
	for k := 1; k <= opts.DistrictSample; k++ {
		lines = append(lines, fmt.Sprintf("  District %d: %d upazilas", k, CountUpazilasInDistrict(data, strconv.Itoa(k))))
	}

	lines = append(lines, "", "Thanas by District (sample):")
	for k := 1; k <= opts.DistrictSample; k++ {
		lines = append(lines, fmt.Sprintf("  District %d: %d thanas", k, CountThanasInDistrict(data, strconv.Itoa(k))))
	}
	return lines
}

func sampleLines(data *models.AdministrativeData) ([]string, error) {
	type sample struct {
		title      string
		collection models.Collection
		empty      bool
		first      func() interface{}
	}
	samples := []sample{
		{"Sample Division:", models.CollectionDivisions, len(data.Divisions) == 0, func() interface{} { return data.Divisions[0] }},
		{"Sample District:", models.CollectionDistricts, len(data.Districts) == 0, func() interface{} { return data.Districts[0] }},
		{"Sample Upazila:", models.CollectionUpazilas, len(data.Upazilas) == 0, func() interface{} { return data.Upazilas[0] }},
		{"Sample Thana:", models.CollectionThanas, len(data.Thanas) == 0, func() interface{} { return data.Thanas[0] }},
	}

	lines := []string{"", "=== Sample Output Structure ==="}
	for i, s := range samples {
		if s.empty {
			return nil, apperrors.NewIndexError(string(s.collection))
		}
		text, err := encodeJSON(s.first())
		if err != nil {
			return nil, apperrors.NewSerializationFailedError(err)
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s.title)
		lines = append(lines, strings.Split(string(text), "\n")...)
	}
	return lines, nil
}

// CountDistrictsInDivision counts districts whose division_id is the string
// divisionID. Numeric foreign keys never match.
func CountDistrictsInDivision(data *models.AdministrativeData, divisionID string) int {
	n := 0
	for _, d := range data.Districts {
		if matchesKey(d.DivisionID, divisionID) {
			n++
		}
	}
	return n
}

func CountUpazilasInDistrict(data *models.AdministrativeData, districtID string) int {
	n := 0
	for _, u := range data.Upazilas {
		if matchesKey(u.DistrictID, districtID) {
			n++
		}
	}
	return n
}

func CountThanasInDistrict(data *models.AdministrativeData, districtID string) int {
	n := 0
	for _, t := range data.Thanas {
		if matchesKey(t.DistrictID, districtID) {
			n++
		}
	}
	return n
}
