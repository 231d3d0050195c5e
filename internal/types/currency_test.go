package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", GetCurrencySymbol("usd"))
	assert.Equal(t, "$", GetCurrencySymbol("USD"))
	assert.Equal(t, "€", GetCurrencySymbol("eur"))

	// unknown codes fall back to the code itself
	assert.Equal(t, "xts", GetCurrencySymbol("xts"))
	assert.Equal(t, "chf", GetCurrencySymbol("chf"))
}
