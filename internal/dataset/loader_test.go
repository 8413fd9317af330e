package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_States(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "monthly.csv", "Year,Month,Created,Resolved\n2025,1,10,8\n")
	writeFile(t, dir, "resolution.csv", "Severity,Days\nBlocker,2,extra\n")

	files := map[string]string{
		Monthly:    "monthly.csv",
		Resolution: "resolution.csv",
		FRT:        "frt.csv",
	}

	l := NewLoader(dir, files, 0)
	set, results, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	byName := make(map[string]Result)
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, Loaded, byName[Monthly].State)
	assert.Equal(t, Absent, byName[FRT].State)
	assert.Equal(t, Malformed, byName[Resolution].State)
	assert.Error(t, byName[Resolution].Err)

	_, ok := set.Get(Monthly)
	assert.True(t, ok)
	_, ok = set.Get(Resolution)
	assert.False(t, ok, "malformed dataset must not enter the set")
	_, ok = set.Get(FRT)
	assert.False(t, ok, "absent dataset must not enter the set")
}

func TestLoader_ResultsSortedByName(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		Monthly:       "monthly.csv",
		Assignees:     "assignees.csv",
		Organizations: "orgs.csv",
	}

	l := NewLoader(dir, files, 0)
	_, results, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Name, results[i].Name)
	}
}

func TestLoader_CachesWithinTTL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,10\n")

	l := NewLoader(dir, map[string]string{Monthly: "monthly.csv"}, time.Minute)

	set1, _, err := l.Load(context.Background())
	require.NoError(t, err)

	// Rewrite the file; a load within the TTL must not see the change.
	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,999\n")

	set2, _, err := l.Load(context.Background())
	require.NoError(t, err)

	d1, _ := set1.Get(Monthly)
	d2, _ := set2.Get(Monthly)
	assert.Same(t, d1, d2, "load within the TTL should reuse the cached dataset")
}

func TestLoader_InvalidateForcesReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,10\n")

	l := NewLoader(dir, map[string]string{Monthly: "monthly.csv"}, time.Minute)

	_, _, err := l.Load(context.Background())
	require.NoError(t, err)

	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,999\n")
	l.Invalidate()

	set, _, err := l.Load(context.Background())
	require.NoError(t, err)

	d, ok := set.Get(Monthly)
	require.True(t, ok)
	v, ok := d.Number(0, "Created")
	require.True(t, ok)
	assert.Equal(t, 999.0, v)
}

func TestLoader_ZeroTTLDisablesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,10\n")

	l := NewLoader(dir, map[string]string{Monthly: "monthly.csv"}, 0)

	_, _, err := l.Load(context.Background())
	require.NoError(t, err)

	writeFile(t, dir, "monthly.csv", "Year,Created\n2025,42\n")

	set, _, err := l.Load(context.Background())
	require.NoError(t, err)

	d, ok := set.Get(Monthly)
	require.True(t, ok)
	v, _ := d.Number(0, "Created")
	assert.Equal(t, 42.0, v)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "malformed", Malformed.String())
}
