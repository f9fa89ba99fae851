package constants

import (
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSet(t *testing.T) {
	s := Default()

	t.Run("every value is non-empty", func(t *testing.T) {
		for _, e := range s.Entries() {
			assert.NotEmpty(t, e.Value, e.Key)
		}
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, k := range s.Keys() {
			assert.False(t, seen[k], "duplicate key %s", k)
			seen[k] = true
		}
		assert.Len(t, seen, 11)
	})

	t.Run("set passes validation", func(t *testing.T) {
		assert.NoError(t, Validate(s))
	})

	t.Run("api base url is the configured literal", func(t *testing.T) {
		assert.Equal(t, "http://localhost:3000/api", APIBaseURL)
		assert.Equal(t, APIBaseURL, s.MustGet(KeyAPIBaseURL))

		u, err := url.Parse(APIBaseURL)
		require.NoError(t, err)
		assert.Equal(t, "http", u.Scheme)
		assert.Equal(t, "localhost:3000", u.Host)
	})

	t.Run("keys map to their go constants", func(t *testing.T) {
		want := map[string]string{
			KeyTestSuiPackageID:     TestSuiPackageID,
			KeyTestSuiTreasuryCapID: TestSuiTreasuryCapID,
			KeyTestSuiIconURL:       TestSuiIconURL,
			KeyTestSuiMetadataID:    TestSuiMetadataID,
			KeyPumpSuiCorePackageID: PumpSuiCorePackageID,
			KeyCetusGlobalConfigID:  CetusGlobalConfigID,
			KeyCetusPoolsID:         CetusPoolsID,
			KeyLendingCorePackageID: LendingCorePackageID,
			KeyLendingStorageID:     LendingStorageID,
			KeyClockID:              ClockID,
			KeyAPIBaseURL:           APIBaseURL,
		}
		assert.Equal(t, want, s.Map())
	})
}

func TestRepeatedReadsAreStable(t *testing.T) {
	s := Default()
	first := s.MustGet(KeyCetusPoolsID)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, ok := s.Lookup(KeyCetusPoolsID)
				assert.True(t, ok)
				assert.Equal(t, first, v)
			}
		}()
	}
	wg.Wait()
	assert.Same(t, Default(), s)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Default()

	entries := s.Entries()
	entries[0].Value = "mutated"
	m := s.Map()
	m[KeyClockID] = "mutated"
	keys := s.Keys()
	keys[0] = "mutated"

	assert.Equal(t, TestSuiPackageID, s.MustGet(KeyTestSuiPackageID))
	assert.Equal(t, ClockID, s.MustGet(KeyClockID))
	assert.Equal(t, KeyTestSuiPackageID, s.Keys()[0])
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "duplicate key",
			entries: []Entry{{Key: "A", Value: "1"}, {Key: "A", Value: "2"}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "empty key",
			entries: []Entry{{Key: "", Value: "1"}},
			wantErr: ErrEmptyKey,
		},
		{
			name:    "empty value",
			entries: []Entry{{Key: "A", Value: ""}},
			wantErr: ErrEmptyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("empty set is allowed", func(t *testing.T) {
		s, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})
}

func TestGet(t *testing.T) {
	s := Default()

	v, err := s.Get(KeyClockID)
	require.NoError(t, err)
	assert.Equal(t, ClockID, v)

	_, err = s.Get("NOPE")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, ok := s.Lookup("NOPE")
	assert.False(t, ok)

	assert.Panics(t, func() { s.MustGet("NOPE") })
}

func TestGroup(t *testing.T) {
	s := Default()

	amm := s.Group(GroupAMM)
	require.Len(t, amm, 2)
	assert.Equal(t, KeyCetusGlobalConfigID, amm[0].Key)
	assert.Equal(t, KeyCetusPoolsID, amm[1].Key)

	assert.Len(t, s.Group(GroupToken), 5)
	assert.Len(t, s.Group(GroupLending), 2)
	assert.Len(t, s.Group(GroupFramework), 1)
	assert.Len(t, s.Group(GroupAPI), 1)
	assert.Empty(t, s.Group("unknown"))

	total := 0
	for _, g := range Groups {
		total += len(s.Group(g))
	}
	assert.Equal(t, s.Len(), total)

	assert.True(t, IsGroup("lending"))
	assert.False(t, IsGroup("oracle"))
}

func TestWithOverrides(t *testing.T) {
	base := Default()

	t.Run("replaces values without touching the base", func(t *testing.T) {
		newPools := "0x" + strings.Repeat("ab", 32)
		s, err := base.WithOverrides(map[string]string{
			KeyCetusPoolsID: newPools,
			"api_base_url":  "https://api.pumpsui.example/api",
		})
		require.NoError(t, err)

		assert.Equal(t, newPools, s.MustGet(KeyCetusPoolsID))
		assert.Equal(t, "https://api.pumpsui.example/api", s.MustGet(KeyAPIBaseURL))
		assert.Equal(t, CetusPoolsID, base.MustGet(KeyCetusPoolsID))
		assert.Equal(t, APIBaseURL, base.MustGet(KeyAPIBaseURL))
		assert.Equal(t, base.Keys(), s.Keys())
		assert.NoError(t, Validate(s))
	})

	t.Run("normalizes short object ids", func(t *testing.T) {
		s, err := base.WithOverrides(map[string]string{KeyClockID: "0x6"})
		require.NoError(t, err)
		assert.Equal(t, ClockID, s.MustGet(KeyClockID))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := base.WithOverrides(map[string]string{"ORACLE_ID": "0x1"})
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("rejects empty values", func(t *testing.T) {
		_, err := base.WithOverrides(map[string]string{KeyCetusPoolsID: "  "})
		assert.ErrorIs(t, err, ErrEmptyValue)
	})
}

func TestEnvLines(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(Default().EnvLines(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "TESTSUI_PACKAGE_ID="+TestSuiPackageID, lines[0])
	assert.Equal(t, "API_BASE_URL="+APIBaseURL, lines[10])
}
