package gir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinateTable_WriteRead_RoundTrips(t *testing.T) {
	table := NewCoordinateTable()
	table.Set("Paris", Coordinate{Lat: 48.8566, Lon: 2.3522})
	table.Set("Lyon", Coordinate{Lat: 45.75, Lon: 4.85})

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	read, err := ReadCoordinateTable(&buf)
	require.NoError(t, err)
	require.Equal(t, table.Len(), read.Len())

	got, ok := read.Lookup("Paris")
	require.True(t, ok)
	require.Equal(t, Coordinate{Lat: 48.8566, Lon: 2.3522}, got)
}

func TestRedirectTable_ResolveFallsBackToInput(t *testing.T) {
	table := NewRedirectTable()
	table.Set("Paris", "Paris,_France")

	require.Equal(t, "Paris,_France", table.Resolve("Paris"))
	require.Equal(t, "Atlantis", table.Resolve("Atlantis"))
}

func TestRedirectTable_WriteRead_RoundTrips(t *testing.T) {
	table := NewRedirectTable()
	table.Set("Paris", "Paris,_France")

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	read, err := ReadRedirectTable(&buf)
	require.NoError(t, err)
	target, ok := read.Lookup("Paris")
	require.True(t, ok)
	require.Equal(t, "Paris,_France", target)
}

func TestLocatedAtTable_WriteRead_RoundTrips(t *testing.T) {
	table := NewLocatedAtTable()
	table.Set("Foo", "Neverland")

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	read, err := ReadLocatedAtTable(&buf)
	require.NoError(t, err)
	target, ok := read.Lookup("Foo")
	require.True(t, ok)
	require.Equal(t, "Neverland", target)
}

func TestIsAInTable_WriteRead_RoundTrips(t *testing.T) {
	table := NewIsAInTable()
	table.Set("Foo", []string{"Neverland", "Fantasia"})

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	read, err := ReadIsAInTable(&buf)
	require.NoError(t, err)
	targets, ok := read.Lookup("Foo")
	require.True(t, ok)
	require.Equal(t, []string{"Neverland", "Fantasia"}, targets)
}

func TestArticleCategoriesTable_WriteRead_RoundTrips(t *testing.T) {
	table := NewArticleCategoriesTable()
	table.Set("Foo", []int32{1, 5, 9})

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	read, err := ReadArticleCategoriesTable(&buf)
	require.NoError(t, err)
	ids, ok := read.Lookup("Foo")
	require.True(t, ok)
	require.Equal(t, []int32{1, 5, 9}, ids)
}

func TestContainedEntitiesTable_SetLookup(t *testing.T) {
	table := NewContainedEntitiesTable()
	entities := map[string]ContainedEntity{
		"Paris": {Title: "Paris", FirstWordIdx: 3, Variants: []string{"paris"}},
	}
	table.Set("Foo", entities)

	got, ok := table.Lookup("Foo")
	require.True(t, ok)
	require.Equal(t, entities, got)

	_, ok = table.Lookup("Bar")
	require.False(t, ok)
}
