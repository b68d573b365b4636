package params

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) {
	t.Helper()
	previous := ParamsPath
	ParamsPath = filepath.Join(t.TempDir(), "d")
	t.Cleanup(func() { ParamsPath = previous })
	EnsureParamDirectories()
}

func TestPutGetRoundTrip(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("TestValue", []byte("hello")))

	data, err := GetParam("TestValue")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
}

func TestPutOverwrites(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("TestValue", []byte("first")))
	require.NoError(t, PutParam("TestValue", []byte("second")))

	data, err := GetParam("TestValue")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)
}

func TestGetParams(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("Beta", []byte("b")))
	require.NoError(t, PutParam("Alpha", []byte("a")))

	names, err := GetParams()
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Beta"}, names)
}

func TestRemoveParam(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("TestValue", []byte("hello")))
	require.NoError(t, RemoveParam("TestValue"))

	_, err := GetParam("TestValue")
	require.Error(t, err)
}

func TestGetMissingParam(t *testing.T) {
	useTempParams(t)

	_, err := GetParam("Nope")
	require.Error(t, err)
}

func TestExists(t *testing.T) {
	useTempParams(t)

	exists, err := Exists(ParamsPath)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = Exists(filepath.Join(ParamsPath, "nope"))
	require.NoError(t, err)
	require.False(t, exists)
}
