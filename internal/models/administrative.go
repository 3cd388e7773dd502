// internal/models/administrative.go
package models

// Collection names one of the four administrative levels.
type Collection string

const (
	CollectionDivisions Collection = "divisions"
	CollectionDistricts Collection = "districts"
	CollectionUpazilas  Collection = "upazilas"
	CollectionThanas    Collection = "thanas"
)

// Collections lists the levels in hierarchy order.
var Collections = []Collection{
	CollectionDivisions,
	CollectionDistricts,
	CollectionUpazilas,
	CollectionThanas,
}

const (
	TypeUpazila = "upazila"
	TypeThana   = "thana"
)

// SourceRecord is one flat object from an input reference file.
type SourceRecord map[string]interface{}

// Division, District, Upazila and Thana carry id, name, bn_name and the
// foreign keys exactly as decoded from the source file: a string, a
// json.Number, a bool, nil or a nested value. Only the *_number fields are
// derived.
type Division struct {
	ID             interface{} `json:"id"`
	Name           interface{} `json:"name"`
	BnName         interface{} `json:"bn_name"`
	DivisionNumber int         `json:"division_number"`
}

type District struct {
	ID             interface{} `json:"id"`
	DivisionID     interface{} `json:"division_id"`
	Name           interface{} `json:"name"`
	BnName         interface{} `json:"bn_name"`
	DistrictNumber int         `json:"district_number"`
}

type Upazila struct {
	ID         interface{} `json:"id"`
	DistrictID interface{} `json:"district_id"`
	Name       interface{} `json:"name"`
	BnName     interface{} `json:"bn_name"`
	Type       string      `json:"type"`
}

type Thana struct {
	ID         interface{} `json:"id"`
	DistrictID interface{} `json:"district_id"`
	Name       interface{} `json:"name"`
	BnName     interface{} `json:"bn_name"`
	Type       string      `json:"type"`
}

// AdministrativeData is the consolidated hierarchy written to disk.
type AdministrativeData struct {
	Divisions []Division `json:"divisions"`
	Districts []District `json:"districts"`
	Upazilas  []Upazila  `json:"upazilas"`
	Thanas    []Thana    `json:"thanas"`
}

// Counts returns the number of records per collection.
func (d *AdministrativeData) Counts() map[Collection]int {
	return map[Collection]int{
		CollectionDivisions: len(d.Divisions),
		CollectionDistricts: len(d.Districts),
		CollectionUpazilas:  len(d.Upazilas),
		CollectionThanas:    len(d.Thanas),
	}
}
