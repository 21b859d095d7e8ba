package gir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDRegistry_InternIsIdempotentAndDense(t *testing.T) {
	reg := NewIDRegistry()

	id1 := reg.Intern("Paris")
	id2 := reg.Intern("Lyon")
	id3 := reg.Intern("Paris")

	require.Equal(t, id1, id3)
	require.NotEqual(t, id1, id2)
	require.EqualValues(t, 0, id1)
	require.EqualValues(t, 1, id2)
	require.Equal(t, 2, reg.Len())
}

func TestIDRegistry_Bijection(t *testing.T) {
	reg := NewIDRegistry()
	names := []string{"Alpha", "Beta", "Gamma", "Delta"}
	for _, n := range names {
		reg.Intern(n)
	}

	for i := 0; i < reg.Len(); i++ {
		name, ok := reg.Name(int32(i))
		require.True(t, ok)
		id, ok := reg.Lookup(name)
		require.True(t, ok)
		require.EqualValues(t, i, id)
	}
}

func TestIDRegistry_LookupMissingIsFalse(t *testing.T) {
	reg := NewIDRegistry()
	reg.Intern("Paris")

	_, ok := reg.Lookup("Atlantis")
	require.False(t, ok)

	_, ok = reg.Name(99)
	require.False(t, ok)
}

func TestIDRegistry_WriteRead_RoundTrips(t *testing.T) {
	reg := NewIDRegistry()
	reg.Intern("Paris")
	reg.Intern("Lyon")
	reg.Intern("Marseille")

	var buf bytes.Buffer
	require.NoError(t, reg.Write(&buf))

	read, err := ReadIDRegistry(&buf)
	require.NoError(t, err)
	require.Equal(t, reg.Len(), read.Len())

	for i := 0; i < reg.Len(); i++ {
		wantName, _ := reg.Name(int32(i))
		gotName, ok := read.Name(int32(i))
		require.True(t, ok)
		require.Equal(t, wantName, gotName)
	}
}
