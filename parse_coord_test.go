package gir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCoordinate_DMSForm(t *testing.T) {
	body := `{{coord|38|53|14.31|N|77|1|19.98|W|display=inline,title}}`

	c, ok := ParseCoordinate(body)
	require.True(t, ok)

	wantLat := 38 + 53.0/60 + 14.31/3600
	wantLon := -(77 + 1.0/60 + 19.98/3600)

	require.InDelta(t, wantLat, c.Lat, 1e-6)
	require.InDelta(t, wantLon, c.Lon, 1e-6)
}

func TestParseCoordinate_DecimalForm(t *testing.T) {
	body := `{{Coord|44.532447|N|10.864137|E|display=title}}`

	c, ok := ParseCoordinate(body)
	require.True(t, ok)
	require.InDelta(t, 44.532447, c.Lat, 1e-9)
	require.InDelta(t, 10.864137, c.Lon, 1e-9)
}

func TestParseCoordinate_CommentedOutRejected(t *testing.T) {
	body := `Some intro text &lt;!-- {{coord|10|0|N|20|0|E|display=title}} --&gt; more text.`

	_, ok := ParseCoordinate(body)
	require.False(t, ok)
}

func TestParseCoordinate_RequiresDisplayTitleOrIt(t *testing.T) {
	body := `{{coord|10|0|N|20|0|E}}`

	_, ok := ParseCoordinate(body)
	require.False(t, ok)
}

func TestParseCoordinate_RejectsNonEarthGlobe(t *testing.T) {
	body := `{{coord|10|N|20|E|globe=Mars|display=title}}`

	_, ok := ParseCoordinate(body)
	require.False(t, ok)
}

func TestParseCoordinate_FirstWellFormedWins(t *testing.T) {
	body := `{{coord|999|N|999|E|display=title}} later {{coord|44.5|N|10.8|E|display=title}}`

	c, ok := ParseCoordinate(body)
	require.True(t, ok)
	require.InDelta(t, 44.5, c.Lat, 1e-9)
	require.InDelta(t, 10.8, c.Lon, 1e-9)
}

func TestCoordinate_Valid(t *testing.T) {
	require.True(t, Coordinate{Lat: 90, Lon: 180}.Valid())
	require.True(t, Coordinate{Lat: -90, Lon: -180}.Valid())
	require.False(t, Coordinate{Lat: 91, Lon: 0}.Valid())
	require.False(t, Coordinate{Lat: 0, Lon: math.NaN()}.Valid())
}
