package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$0.00", Format(0))
	assert.Equal(t, "$24.99", Format(24.99))
	assert.Equal(t, "$49.98", Format(49.98))
	assert.Equal(t, "$1,234.50", Format(1234.5))
}
