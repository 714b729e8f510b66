package costdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	db, err := Load(filepath.Join("testdata", "supply_systems_ch.csv"))
	require.NoError(t, err)

	assert.Equal(t, []string{"CH1", "CH2"}, db.Codes())

	require.Len(t, db.rows["CH1"], 3)
	require.Len(t, db.rows["CH2"], 2)

	// brackets ordered by cap_min
	assert.Equal(t, 50000.0, db.rows["CH1"][0].CapMin_W)
	assert.Equal(t, 500000.0, db.rows["CH1"][1].CapMin_W)
	assert.Equal(t, 2000000.0, db.rows["CH1"][2].CapMin_W)

	row := db.rows["CH1"][1]
	assert.Equal(t, "USD", row.Currency)
	assert.Equal(t, 45000.0, row.A)
	assert.Equal(t, 0.25, row.B)
	assert.Equal(t, 0.92, row.C)
	assert.Equal(t, 1200.0, row.D)
	assert.Equal(t, 0.005, row.E)
	assert.Equal(t, 5.0, row.IRPercent)
	assert.Equal(t, 20.0, row.LTYears)
	assert.Equal(t, 3.0, row.OMPercent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_file.csv"))
	require.Error(t, err)
}

func TestLoad_InvalidBracket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "code,currency,cap_min,cap_max,a,b,c,d,e,IR_%,LT_yr,O&M_%\n" +
		"CH1,USD,500000,50000,0,1,1,0,0,5,20,3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cap_min")
}

func TestLoad_EmptyCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "code,currency,cap_min,cap_max,a,b,c,d,e,IR_%,LT_yr,O&M_%\n" +
		",USD,50000,500000,0,1,1,0,0,5,20,3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "technology code")
}

func TestLookup_BracketSelection(t *testing.T) {
	db, err := Load(filepath.Join("testdata", "supply_systems_ch.csv"))
	require.NoError(t, err)

	// lower bound is inclusive
	row, q_W, err := db.Lookup("CH1", 500000)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, q_W)
	assert.Equal(t, 0.25, row.B)

	// just below the boundary the lower bracket applies
	row, _, err = db.Lookup("CH1", 499999.9)
	require.NoError(t, err)
	assert.Equal(t, 0.3, row.B)

	// upper bound is exclusive, 2 MW already belongs to the next bracket
	row, _, err = db.Lookup("CH1", 2000000)
	require.NoError(t, err)
	assert.Equal(t, 0.2, row.B)
}

func TestLookup_ClampBelowMinimum(t *testing.T) {
	db, err := Load(filepath.Join("testdata", "supply_systems_ch.csv"))
	require.NoError(t, err)

	row, q_W, err := db.Lookup("CH1", 10000)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, q_W)
	assert.Equal(t, 50000.0, row.CapMin_W)
}

func TestLookup_Failures(t *testing.T) {
	db, err := Load(filepath.Join("testdata", "supply_systems_ch.csv"))
	require.NoError(t, err)

	_, _, err = db.Lookup("GT1", 1e6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCode))

	// beyond the largest cap_max of the technology
	_, _, err = db.Lookup("CH1", 20000000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBracket))
}

func TestLoadRegion(t *testing.T) {
	db, err := LoadRegion("testdata", RegionCH)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH1", "CH2"}, db.Codes())
}
