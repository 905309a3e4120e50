package levelfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notdoom/model"
)

const sample = `-5,5,0
5,5,2

5,5,0
5,-5,2
`

func TestParse(t *testing.T) {
	pairs, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// x,z,y on disk becomes (x, y, -z)
	assert.Equal(t, model.Vector3{X: -5, Y: 0, Z: -5}, pairs[0][0])
	assert.Equal(t, model.Vector3{X: 5, Y: 2, Z: -5}, pairs[0][1])
	assert.Equal(t, model.Vector3{X: 5, Y: 2, Z: 5}, pairs[1][1])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("1,2,3\n"))
	assert.ErrorIs(t, err, ErrOddCornerCount)

	_, err = Parse(strings.NewReader("1,2,3\n1,2\n"))
	assert.ErrorIs(t, err, ErrBadVector)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Parse(strings.NewReader("1,2,3\n1,x,3\n"))
	assert.ErrorIs(t, err, ErrBadVector)

	for _, bad := range []string{"nan,0,0\n1,0,1\n", "inf,0,0\n1,0,1\n", "1,-Inf,0\n1,0,1\n", "1,0,0\n1,0,NaN\n"} {
		_, err = Parse(strings.NewReader(bad))
		assert.ErrorIs(t, err, ErrBadVector, "input %q", bad)
	}

	pairs, err := Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestWriteRoundTrip(t *testing.T) {
	pairs, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, pairs))
	assert.Equal(t, "-5,5,0\n5,5,2\n5,5,0\n5,-5,2\n", buf.String())
}

func TestSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "levels/test.txt", []byte(sample), 0o644))

	src := NewSource(fs, "levels/test.txt")
	level, err := src.LoadLevel()
	require.NoError(t, err)
	assert.Equal(t, 2, level.Len())
	assert.Len(t, level.Segments(), 2)

	edited := level.AddWall(model.CornerPair{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 1, Z: -1.25}})
	require.NoError(t, src.Save(edited))

	reloaded, err := src.LoadLevel()
	require.NoError(t, err)
	assert.Equal(t, edited.Corners(), reloaded.Corners())

	_, err = NewSource(fs, "missing.txt").LoadLevel()
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.txt", []byte("1,2,3\n"), 0o644))
	_, err = NewSource(fs, "bad.txt").LoadLevel()
	assert.ErrorIs(t, err, ErrOddCornerCount)
}

func TestHugeCoordinatesBuildALevel(t *testing.T) {
	pairs, err := Parse(strings.NewReader("1e300,0,0\n-1e300,0,1\n"))
	require.NoError(t, err)

	level := model.NewLevel(pairs)
	assert.Equal(t, 1, level.Len())
	assert.Len(t, level.Quads(), model.MaxSplitPieces)
}
