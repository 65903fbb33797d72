package airline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCarrier(t *testing.T) {
	carrier, ok := LocalCarrier("DA")
	require.True(t, ok)
	assert.Equal(t, "Dana Air", carrier.Name)
	assert.Equal(t, "dana-air", carrier.Logo)

	carrier, ok = LocalCarrier("c3")
	require.True(t, ok)
	assert.Equal(t, "Overland Airways", carrier.Name)

	_, ok = LocalCarrier("KL")
	assert.False(t, ok)
}

func TestEstimatedDuration(t *testing.T) {
	assert.Equal(t, "PT1H15M", EstimatedDuration("LOS", "ABV"))

	// Reverse direction falls back to the forward entry.
	assert.Equal(t, "PT1H15M", EstimatedDuration("ABV", "LOS"))

	assert.Equal(t, "PT1H45M", EstimatedDuration("los", "kan"))

	// Unknown route in both directions gets the default.
	assert.Equal(t, "PT2H00M", EstimatedDuration("ILR", "JOS"))
}
