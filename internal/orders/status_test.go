package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	// jalur normal sampai selesai
	chain := []Status{StatusPending, StatusDiproses, StatusDikemas, StatusDikirim, StatusSelesai}
	for i := 0; i < len(chain)-1; i++ {
		assert.True(t, CanTransition(chain[i], chain[i+1]), "%s -> %s", chain[i], chain[i+1])
	}

	// pembatalan boleh sebelum dikirim
	assert.True(t, CanTransition(StatusPending, StatusDibatalkan))
	assert.True(t, CanTransition(StatusDikemas, StatusDibatalkan))
	assert.False(t, CanTransition(StatusDikirim, StatusDibatalkan))

	// status terminal tidak bisa pindah
	assert.False(t, CanTransition(StatusSelesai, StatusPending))
	assert.False(t, CanTransition(StatusDibatalkan, StatusDiproses))

	// tidak boleh loncat
	assert.False(t, CanTransition(StatusPending, StatusDikirim))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("Dikemas")
	require.NoError(t, err)
	assert.Equal(t, StatusDikemas, st)

	_, err = ParseStatus("Hilang")
	assert.Error(t, err)
}
