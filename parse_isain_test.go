package gir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIsAIn_ResolvesEntityInFirstSentence(t *testing.T) {
	title := NormaliseTitle("Foo")
	coords := NewCoordinateTable()
	coords.Set("Neverland", Coordinate{Lat: 1, Lon: 2})
	redirects := NewRedirectTable()

	rawBody := "'''Foo''' is a town in [[Neverland]]. It has a small population."

	got := ParseIsAIn(rawBody, title, true, redirects, coords, DefaultLimits())
	require.Equal(t, []string{"Neverland"}, got)
}

func TestParseIsAIn_NoResultWithoutCoordinates(t *testing.T) {
	title := NormaliseTitle("Foo")
	coords := NewCoordinateTable()
	coords.Set("Neverland", Coordinate{Lat: 1, Lon: 2})
	redirects := NewRedirectTable()

	rawBody := "'''Foo''' is a town in [[Neverland]]."

	got := ParseIsAIn(rawBody, title, false, redirects, coords, DefaultLimits())
	require.Nil(t, got)
}

func TestParseIsAIn_RejectsOnDistanceMarker(t *testing.T) {
	title := NormaliseTitle("Foo")
	coords := NewCoordinateTable()
	coords.Set("Neverland", Coordinate{Lat: 1, Lon: 2})
	redirects := NewRedirectTable()

	rawBody := "'''Foo''' is a town 50 km in [[Neverland]]."

	got := ParseIsAIn(rawBody, title, true, redirects, coords, DefaultLimits())
	require.Nil(t, got)
}

func TestParseIsAIn_NoVerbNoResult(t *testing.T) {
	title := NormaliseTitle("Foo")
	coords := NewCoordinateTable()
	coords.Set("Neverland", Coordinate{Lat: 1, Lon: 2})
	redirects := NewRedirectTable()

	rawBody := "'''Foo''' a town near [[Neverland]]."

	got := ParseIsAIn(rawBody, title, true, redirects, coords, DefaultLimits())
	require.Nil(t, got)
}

func TestParseIsAIn_ResolvesThroughRedirect(t *testing.T) {
	title := NormaliseTitle("Foo")
	coords := NewCoordinateTable()
	coords.Set("Neverland_Island", Coordinate{Lat: 1, Lon: 2})
	redirects := NewRedirectTable()
	redirects.Set("Neverland", "Neverland_Island")

	rawBody := "'''Foo''' is a town in [[Neverland]]."

	got := ParseIsAIn(rawBody, title, true, redirects, coords, DefaultLimits())
	require.Equal(t, []string{"Neverland_Island"}, got)
}
