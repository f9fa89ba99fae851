package constants

import (
	"strings"
	"testing"

	"github.com/pumpsui/pumpsui_service/pkg/sui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("reports every bad entry", func(t *testing.T) {
		s, err := Default().WithOverrides(map[string]string{
			KeyCetusPoolsID:   "0xnothex",
			KeyTestSuiIconURL: "not a url",
			KeyAPIBaseURL:     "ftp://example.com/api",
		})
		require.NoError(t, err)

		err = Validate(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.ErrorIs(t, err, sui.ErrInvalidObjectID)
		assert.ElementsMatch(t,
			[]string{KeyCetusPoolsID, KeyTestSuiIconURL, KeyAPIBaseURL},
			InvalidKeys(err))
	})

	t.Run("upper case object id is rejected", func(t *testing.T) {
		s, err := New([]Entry{{
			Key:   KeyCetusPoolsID,
			Value: "0x" + strings.ToUpper(CetusPoolsID[2:]),
			Group: GroupAMM,
			Kind:  KindObjectID,
		}})
		require.NoError(t, err)

		err = Validate(s)
		assert.ErrorIs(t, err, sui.ErrInvalidObjectID)
		assert.Equal(t, []string{KeyCetusPoolsID}, InvalidKeys(err))
	})

	t.Run("upper case override is normalized", func(t *testing.T) {
		s, err := Default().WithOverrides(map[string]string{
			KeyCetusPoolsID: "0x" + strings.ToUpper(CetusPoolsID[2:]),
		})
		require.NoError(t, err)
		assert.NoError(t, Validate(s))
		assert.Equal(t, CetusPoolsID, s.MustGet(KeyCetusPoolsID))
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		s, err := New([]Entry{{Key: "X", Value: "y", Group: GroupAPI, Kind: "blob"}})
		require.NoError(t, err)

		err = Validate(s)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Equal(t, []string{"X"}, InvalidKeys(err))
	})

	t.Run("no keys for nil error", func(t *testing.T) {
		assert.Nil(t, InvalidKeys(nil))
	})
}
