package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

func TestFormatOptFloat(t *testing.T) {
	assert.Equal(t, Placeholder, FormatOptFloat(nil, 2))
	assert.Equal(t, "78.40", FormatOptFloat(domain.Float64(78.4), 2))
	assert.Equal(t, "2696", FormatOptFloat(domain.Float64(2696.43), 0))
}

func TestFormatOptInt(t *testing.T) {
	assert.Equal(t, Placeholder, FormatOptInt(nil))
	assert.Equal(t, "10925", FormatOptInt(domain.Int(10925)))
}

func TestFormatSignedFloat(t *testing.T) {
	assert.Equal(t, Placeholder, FormatSignedFloat(nil, 2))
	assert.Equal(t, "-0.25", FormatSignedFloat(domain.Float64(-0.25), 2))
	assert.Equal(t, "+1.28", FormatSignedFloat(domain.Float64(1.282), 2))
}
