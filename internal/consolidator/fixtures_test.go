package consolidator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bd-admin-hierarchy/internal/common/config"
	"bd-admin-hierarchy/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

const (
	divisionsFixture = `[
  {"id": "1", "name": "Barishal", "bn_name": "বরিশাল", "url": "www.barisaldiv.gov.bd"},
  {"id": "2", "name": "Chattogram", "bn_name": "চট্টগ্রাম", "url": "www.chittagongdiv.gov.bd"},
  {"id": "3", "name": "Dhaka", "bn_name": "ঢাকা", "url": "www.dhakadiv.gov.bd"}
]`
	districtsFixture = `[
  {"id": "1", "division_id": "2", "name": "Comilla", "bn_name": "কুমিল্লা", "lat": "23.4682747", "lon": "91.1788135"},
  {"id": "2", "division_id": "2", "name": "Feni", "bn_name": "ফেনী", "lat": "23.023231", "lon": "91.3840844"},
  {"id": "3", "division_id": "3", "name": "Dhaka", "bn_name": "ঢাকা", "lat": "23.7115253", "lon": "90.4111451"},
  {"id": "10", "division_id": "1", "name": "Barishal", "bn_name": "বরিশাল", "lat": "22.7010", "lon": "90.3535"}
]`
	upazilasFixture = `[
  {"id": "1", "district_id": "1", "name": "Debidwar", "bn_name": "দেবিদ্বার"},
  {"id": "2", "district_id": "1", "name": "Barura", "bn_name": "বরুড়া"},
  {"id": "3", "district_id": "2", "name": "Chhagalnaiya", "bn_name": "ছাগলনাইয়া"},
  {"id": "4", "district_id": "99", "name": "Orphan", "bn_name": "অনাথ"}
]`
	thanasFixture = `[
  {"id": "1", "district_id": "3", "name": "Dhanmondi", "bn_name": "ধানমন্ডি"},
  {"id": "2", "district_id": "3", "name": "Gulshan", "bn_name": "গুলশান"}
]`
)

type fixture struct {
	dir    string
	config *Config
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

// newFixture lays out the four inputs the way the client repository does
// and points the outputs at client/public inside a temp dir.
func newFixture(t *testing.T, overrides map[models.Collection]string) *fixture {
	t.Helper()
	dir := t.TempDir()

	bodies := map[models.Collection]string{
		models.CollectionDivisions: divisionsFixture,
		models.CollectionDistricts: districtsFixture,
		models.CollectionUpazilas:  upazilasFixture,
		models.CollectionThanas:    thanasFixture,
	}
	for c, body := range overrides {
		bodies[c] = body
	}

	appCfg := config.Default()
	appCfg.Inputs = config.InputsConfig{
		Divisions: filepath.Join(dir, config.DefaultDivisionsPath),
		Districts: filepath.Join(dir, config.DefaultDistrictsPath),
		Upazilas:  filepath.Join(dir, config.DefaultUpazilasPath),
		Thanas:    filepath.Join(dir, config.DefaultThanasPath),
	}
	appCfg.Outputs.JSON = filepath.Join(dir, config.DefaultJSONOutputPath)
	appCfg.Outputs.Module = filepath.Join(dir, config.DefaultModuleOutputPath)

	for c, body := range bodies {
		writeFile(t, appCfg.Inputs.Path(c), body)
	}

	return &fixture{dir: dir, config: LoadConfig(appCfg)}
}

func fixtureData(t *testing.T) *models.AdministrativeData {
	t.Helper()
	f := newFixture(t, nil)
	src := &Sources{}
	for _, c := range models.Collections {
		records, err := Load(f.config.Inputs.Path(c))
		require.NoError(t, err)
		src.set(c, records)
	}
	data, err := Transform(src)
	require.NoError(t, err)
	return data
}
