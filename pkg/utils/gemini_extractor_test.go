package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtractInquiry(t *testing.T) {
	inquiry := FallbackExtractInquiry(
		"Hi, we are planning a trip to Paris for 2 adults, budget around 4500.")

	assert.Equal(t, "Paris", inquiry.Destination)
	require.NotNil(t, inquiry.Travelers)
	assert.Equal(t, 2, inquiry.Travelers.Adults)
	require.NotNil(t, inquiry.Budget)
	assert.Equal(t, 4500.0, inquiry.Budget.Amount)
}

func TestFallbackExtractInquiry_CurrencySymbol(t *testing.T) {
	inquiry := FallbackExtractInquiry("Honeymoon, visiting Bali. We can spend $6000 total, 2 people.")

	assert.Equal(t, "Bali", inquiry.Destination)
	require.NotNil(t, inquiry.Budget)
	assert.Equal(t, 6000.0, inquiry.Budget.Amount)
}

func TestFallbackExtractInquiry_NothingUseful(t *testing.T) {
	inquiry := FallbackExtractInquiry("Hello, do you still do trips?")

	assert.Empty(t, inquiry.Destination)
	assert.Nil(t, inquiry.Travelers)
	assert.Nil(t, inquiry.Budget)
}
