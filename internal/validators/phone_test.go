package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone(" 11 2233-4455 ", "AR")
	require.NoError(t, err)
	assert.Equal(t, "+541122334455", got)

	got, err = NormalizePhone("+1 202-555-0143", "AR")
	require.NoError(t, err)
	assert.Equal(t, "+12025550143", got)
}

func TestNormalizePhone_DefaultRegion(t *testing.T) {
	got, err := NormalizePhone("11 2233-4455", "")
	require.NoError(t, err)
	assert.Equal(t, "+541122334455", got)
}

func TestNormalizePhone_Rejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "123"} {
		_, err := NormalizePhone(raw, "AR")
		assert.ErrorIs(t, err, ErrInvalidPhone, raw)
	}
}
