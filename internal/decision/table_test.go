package decision

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDefaultProfiles(t *testing.T) {
	table := Default()

	t.Run("dev-public", func(t *testing.T) {
		rec, err := table.Lookup("dev-public")
		require.NoError(t, err)
		assert.Equal(t, "cheap", rec.ComputeProfile)
		assert.Equal(t, "public", rec.NetworkProfile)
		assert.Equal(t, "limited", rec.AutoscalingProfile)
		assert.Equal(t, "strict", rec.SecurityProfile)
		assert.Equal(t, "single_az", rec.AvailabilityProfile)
	})

	t.Run("dev-internal", func(t *testing.T) {
		rec, err := table.Lookup("dev-internal")
		require.NoError(t, err)
		assert.Equal(t, "cheap", rec.ComputeProfile)
		assert.Equal(t, "private", rec.NetworkProfile)
		assert.Equal(t, "limited", rec.AutoscalingProfile)
		assert.Equal(t, "normal", rec.SecurityProfile)
		assert.Equal(t, "single_az", rec.AvailabilityProfile)
	})

	t.Run("prod-public-critical", func(t *testing.T) {
		rec, err := table.Lookup("prod-public-critical")
		require.NoError(t, err)
		assert.Equal(t, "stable", rec.ComputeProfile)
		assert.Equal(t, "public", rec.NetworkProfile)
		assert.Equal(t, "full", rec.AutoscalingProfile)
		assert.Equal(t, "strict", rec.SecurityProfile)
		assert.Equal(t, "multi_az", rec.AvailabilityProfile)
	})

	t.Run("prod-internal-critical", func(t *testing.T) {
		rec, err := table.Lookup("prod-internal-critical")
		require.NoError(t, err)
		assert.Equal(t, "stable", rec.ComputeProfile)
		assert.Equal(t, "private", rec.NetworkProfile)
		assert.Equal(t, "full", rec.AutoscalingProfile)
		assert.Equal(t, "strict", rec.SecurityProfile)
		assert.Equal(t, "multi_az", rec.AvailabilityProfile)
	})
}

func TestLookupUnknownProfile(t *testing.T) {
	table := Default()

	for _, name := range []string{"unknown-profile", "", "DEV-PUBLIC", "dev-public "} {
		t.Run("name="+name, func(t *testing.T) {
			rec, err := table.Lookup(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrProfileNotFound), "error should match ErrProfileNotFound")
			assert.Equal(t, Record{}, rec)
			assert.Contains(t, err.Error(), "'"+name+"'")
			assert.Contains(t, err.Error(), "Available profiles")

			var nf *ProfileNotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, name, nf.Profile)
			assert.Equal(t, table.Profiles(), nf.Available)
		})
	}
}

func TestLookupErrorMessage(t *testing.T) {
	_, err := Default().Lookup("unknown-profile")
	require.Error(t, err)
	assert.Equal(t,
		"Unknown profile: 'unknown-profile'. Available profiles: "+
			"dev-internal, dev-public, prod-internal-critical, prod-public-critical",
		err.Error())
}

func TestProfilesSorted(t *testing.T) {
	table := Default()
	want := []string{"dev-internal", "dev-public", "prod-internal-critical", "prod-public-critical"}

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, table.Profiles())
	}
	assert.Equal(t, 4, table.Len())
}

func TestProfilesReturnsFreshSlice(t *testing.T) {
	table := Default()

	names := table.Profiles()
	names[0] = "tampered"

	assert.Equal(t, "dev-internal", table.Profiles()[0])
}

func TestLookupReturnsCopy(t *testing.T) {
	table := Default()

	first, err := table.Lookup("dev-public")
	require.NoError(t, err)
	first.ComputeProfile = "expensive"
	first.AvailabilityProfile = "multi_az"

	for i := 0; i < 3; i++ {
		again, err := table.Lookup("dev-public")
		require.NoError(t, err)
		assert.Equal(t, "cheap", again.ComputeProfile)
		assert.Equal(t, "single_az", again.AvailabilityProfile)
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	entries := map[string]Record{
		"a": {"c", "n", "as", "s", "av"},
	}
	table, err := NewTable(entries)
	require.NoError(t, err)

	entries["a"] = Record{"x", "x", "x", "x", "x"}
	entries["b"] = Record{"x", "x", "x", "x", "x"}

	rec, err := table.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "c", rec.ComputeProfile)
	assert.Equal(t, []string{"a"}, table.Profiles())
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]Record
		wantErr bool
	}{
		{
			name:    "empty table",
			entries: map[string]Record{},
		},
		{
			name: "complete record",
			entries: map[string]Record{
				"ok": {"c", "n", "a", "s", "v"},
			},
		},
		{
			name: "empty profile name",
			entries: map[string]Record{
				"": {"c", "n", "a", "s", "v"},
			},
			wantErr: true,
		},
		{
			name: "missing security profile",
			entries: map[string]Record{
				"partial": {ComputeProfile: "c", NetworkProfile: "n", AutoscalingProfile: "a", AvailabilityProfile: "v"},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := NewTable(tc.entries)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTable)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.entries), table.Len())
		})
	}
}

func TestEmptyTableLookup(t *testing.T) {
	var table Table

	_, err := table.Lookup("dev-public")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Empty(t, table.Profiles())
}

func TestConcurrentLookups(t *testing.T) {
	table := Default()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range table.Profiles() {
				rec, err := table.Lookup(name)
				assert.NoError(t, err)
				rec.SecurityProfile = "mutated"
			}
		}()
	}
	wg.Wait()

	rec, err := table.Lookup("dev-internal")
	require.NoError(t, err)
	assert.Equal(t, "normal", rec.SecurityProfile)
}
