// internal/consolidator/models.go
package consolidator

import "bd-admin-hierarchy/internal/models"

// Output is everything a successful run produced.
type Output struct {
	Data       *models.AdministrativeData
	JSONText   string
	ModuleText string
	Report     *Report
	Counts     map[models.Collection]int
}

// VerifyOutput describes emitted files that agree with each other.
type VerifyOutput struct {
	Counts map[models.Collection]int
}

// Sources holds the raw records of the four input files.
type Sources struct {
	Divisions []models.SourceRecord
	Districts []models.SourceRecord
	Upazilas  []models.SourceRecord
	Thanas    []models.SourceRecord
}

func (s *Sources) set(c models.Collection, records []models.SourceRecord) {
	switch c {
	case models.CollectionDivisions:
		s.Divisions = records
	case models.CollectionDistricts:
		s.Districts = records
	case models.CollectionUpazilas:
		s.Upazilas = records
	case models.CollectionThanas:
		s.Thanas = records
	}
}
