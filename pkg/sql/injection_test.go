package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTextForInjection(t *testing.T) {
	t.Run("classic tautology", func(t *testing.T) {
		result := CheckTextForInjection("' OR 1=1 --")
		require.NotNil(t, result)
		assert.True(t, result.IsSQLi)
		assert.NotEmpty(t, result.Fingerprint)
		assert.Equal(t, "' OR 1=1 --", result.Input)
	})

	t.Run("union probe", func(t *testing.T) {
		result := CheckTextForInjection("1' UNION SELECT username, password FROM users--")
		require.NotNil(t, result)
		assert.True(t, result.IsSQLi)
	})

	t.Run("benign question", func(t *testing.T) {
		result := CheckTextForInjection("How many orders did we receive last week?")
		assert.Nil(t, result)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, CheckTextForInjection(""))
	})
}
