package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressName(t *testing.T) {
	full := &Address{FullName: "Ada Lovelace", FirstName: "A", LastName: "L"}
	assert.Equal(t, "Ada Lovelace", full.Name())

	parts := &Address{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", parts.Name())

	firstOnly := &Address{FirstName: "Ada"}
	assert.Equal(t, "Ada", firstOnly.Name())
}

func TestAddressRegion(t *testing.T) {
	abbr := &Address{StateAbbreviation: "OR", StateText: "Oregon"}
	assert.Equal(t, "OR", abbr.Region())

	text := &Address{StateText: "Oregon"}
	assert.Equal(t, "Oregon", text.Region())
}

func TestAddressHasCountry(t *testing.T) {
	var nilAddress *Address
	assert.False(t, nilAddress.HasCountry())
	assert.False(t, (&Address{}).HasCountry())
	assert.True(t, (&Address{CountryISO: "US"}).HasCountry())
}
