package domain

import "strings"

// Address is a host billing or shipping address. CountryISO is empty when the
// address has no resolvable country, in which case the provider must not
// receive an address block at all.
type Address struct {
	FirstName         string
	LastName          string
	FullName          string
	Address1          string
	Address2          string
	City              string
	StateText         string
	StateAbbreviation string
	PostalCode        string
	CountryISO        string
}

// Name returns the full name when set, otherwise first and last joined.
func (a *Address) Name() string {
	if a.FullName != "" {
		return a.FullName
	}
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Region returns the state abbreviation when one resolved, otherwise the
// free-text state value.
func (a *Address) Region() string {
	if a.StateAbbreviation != "" {
		return a.StateAbbreviation
	}
	return a.StateText
}

// HasCountry reports whether a country code resolved on the address.
func (a *Address) HasCountry() bool {
	return a != nil && a.CountryISO != ""
}
