// internal/consolidator/transform.go
package consolidator

import (
	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/models"
)

// Source field names.
const (
	fieldID         = "id"
	fieldName       = "name"
	fieldBnName     = "bn_name"
	fieldDivisionID = "division_id"
	fieldDistrictID = "district_id"
)

// recordReader pulls fields out of one source record and reports failures
// against the record's collection and position.
type recordReader struct {
	collection models.Collection
	index      int
	record     models.SourceRecord
}

// value returns a required field as decoded. Any JSON value is accepted.
func (r recordReader) value(field string) (interface{}, error) {
	v, ok := r.record[field]
	if !ok {
		return nil, apperrors.NewFieldMissingError(string(r.collection), r.index, field)
	}
	return passThrough(v), nil
}

func (r recordReader) number(field string) (int, error) {
	v := r.record[field]
	n, err := identifierNumber(v)
	if err != nil {
		return 0, apperrors.NewTypeConversionError(string(r.collection), r.index, field, v, err)
	}
	return n, nil
}

// TransformDivision maps a source record to a Division.
func TransformDivision(index int, rec models.SourceRecord) (models.Division, error) {
	r := recordReader{collection: models.CollectionDivisions, index: index, record: rec}

	id, err := r.value(fieldID)
	if err != nil {
		return models.Division{}, err
	}
	name, err := r.value(fieldName)
	if err != nil {
		return models.Division{}, err
	}
	bnName, err := r.value(fieldBnName)
	if err != nil {
		return models.Division{}, err
	}
	number, err := r.number(fieldID)
	if err != nil {
		return models.Division{}, err
	}

	return models.Division{
		ID:             id,
		Name:           name,
		BnName:         bnName,
		DivisionNumber: number,
	}, nil
}

// TransformDistrict maps a source record to a District. division_id keeps
// its source form.
func TransformDistrict(index int, rec models.SourceRecord) (models.District, error) {
	r := recordReader{collection: models.CollectionDistricts, index: index, record: rec}

	id, err := r.value(fieldID)
	if err != nil {
		return models.District{}, err
	}
	divisionID, err := r.value(fieldDivisionID)
	if err != nil {
		return models.District{}, err
	}
	name, err := r.value(fieldName)
	if err != nil {
		return models.District{}, err
	}
	bnName, err := r.value(fieldBnName)
	if err != nil {
		return models.District{}, err
	}
	number, err := r.number(fieldID)
	if err != nil {
		return models.District{}, err
	}

	return models.District{
		ID:             id,
		DivisionID:     divisionID,
		Name:           name,
		BnName:         bnName,
		DistrictNumber: number,
	}, nil
}

// subdistrict holds the fields upazilas and thanas share.
type subdistrict struct {
	id, districtID, name, bnName interface{}
}

func readSubdistrict(r recordReader) (subdistrict, error) {
	var s subdistrict
	var err error
	if s.id, err = r.value(fieldID); err != nil {
		return s, err
	}
	if s.districtID, err = r.value(fieldDistrictID); err != nil {
		return s, err
	}
	if s.name, err = r.value(fieldName); err != nil {
		return s, err
	}
	if s.bnName, err = r.value(fieldBnName); err != nil {
		return s, err
	}
	return s, nil
}

func TransformUpazila(index int, rec models.SourceRecord) (models.Upazila, error) {
	s, err := readSubdistrict(recordReader{collection: models.CollectionUpazilas, index: index, record: rec})
	if err != nil {
		return models.Upazila{}, err
	}
	return models.Upazila{
		ID:         s.id,
		DistrictID: s.districtID,
		Name:       s.name,
		BnName:     s.bnName,
		Type:       models.TypeUpazila,
	}, nil
}

func TransformThana(index int, rec models.SourceRecord) (models.Thana, error) {
	s, err := readSubdistrict(recordReader{collection: models.CollectionThanas, index: index, record: rec})
	if err != nil {
		return models.Thana{}, err
	}
	return models.Thana{
		ID:         s.id,
		DistrictID: s.districtID,
		Name:       s.name,
		BnName:     s.bnName,
		Type:       models.TypeThana,
	}, nil
}

// transformAll applies fn to every record, stopping at the first failure.
func transformAll[T any](records []models.SourceRecord, fn func(int, models.SourceRecord) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		v, err := fn(i, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Transform maps all four source collections. Nothing is returned unless
// every record transforms.
func Transform(src *Sources) (*models.AdministrativeData, error) {
	divisions, err := transformAll(src.Divisions, TransformDivision)
	if err != nil {
		return nil, err
	}
	districts, err := transformAll(src.Districts, TransformDistrict)
	if err != nil {
		return nil, err
	}
	upazilas, err := transformAll(src.Upazilas, TransformUpazila)
	if err != nil {
		return nil, err
	}
	thanas, err := transformAll(src.Thanas, TransformThana)
	if err != nil {
		return nil, err
	}
	return Consolidate(divisions, districts, upazilas, thanas), nil
}

// Consolidate aggregates the four transformed collections in input order.
// Foreign keys are not resolved: orphaned children are kept as-is.
func Consolidate(divisions []models.Division, districts []models.District, upazilas []models.Upazila, thanas []models.Thana) *models.AdministrativeData {
	return &models.AdministrativeData{
		Divisions: nonNil(divisions),
		Districts: nonNil(districts),
		Upazilas:  nonNil(upazilas),
		Thanas:    nonNil(thanas),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
