package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/wsproj/internal/errors"
)

func TestLoad_PrimaryPath(t *testing.T) {
	fsys := fstest.MapFS{
		"angular.json":   {Data: []byte(`{"version":1,"defaultProject":"foo","projects":{"foo":{"root":""}}}`)},
		"workspace.json": {Data: []byte(`{"defaultProject":"legacy"}`)},
	}

	s, err := Load(fsys)
	require.NoError(t, err)

	assert.Equal(t, PrimaryPath, s.Path)
	assert.Equal(t, 1, s.Version)
	assert.Equal(t, "foo", s.DefaultProject)
	assert.Contains(t, s.Projects, "foo")
}

func TestLoad_LegacyFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"workspace.json": {Data: []byte(`{"defaultProject":"legacy"}`)},
	}

	s, err := Load(fsys)
	require.NoError(t, err)

	assert.Equal(t, LegacyPath, s.Path)
	assert.Equal(t, "legacy", s.DefaultProject)
}

func TestLoad_NotFound(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {Data: []byte(`{}`)},
	}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrManifestNotFound))
	assert.False(t, errors.Is(err, oerrors.ErrManifestInvalid))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated object", "{not json"},
		{"empty file", ""},
		{"trailing garbage", `{"projects":{}} x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"angular.json": {Data: []byte(tt.data)}}

			_, err := Load(fsys)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrManifestInvalid))
			assert.False(t, errors.Is(err, oerrors.ErrManifestNotFound))
		})
	}
}

func TestLoad_InvalidPrimaryDoesNotFallBack(t *testing.T) {
	fsys := fstest.MapFS{
		"angular.json":   {Data: []byte("{not json")},
		"workspace.json": {Data: []byte(`{"defaultProject":"legacy"}`)},
	}

	_, err := Load(fsys)
	assert.True(t, errors.Is(err, oerrors.ErrManifestInvalid))
}

func TestParse_LenientShapes(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantDefault string
		wantLen     int
	}{
		{"array document", `[]`, "", 0},
		{"string document", `"angular"`, "", 0},
		{"null document", `null`, "", 0},
		{"non-string default", `{"defaultProject":42}`, "", 0},
		{"projects not an object", `{"defaultProject":"a","projects":[1,2]}`, "a", 0},
		{"null projects", `{"projects":null}`, "", 0},
		{"two projects", `{"projects":{"a":{},"b":{}}}`, "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(PrimaryPath, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDefault, s.DefaultProject)
			assert.Len(t, s.Projects, tt.wantLen)
		})
	}
}

func TestParse_IgnoresMistypedFieldsIndividually(t *testing.T) {
	s, err := Parse(PrimaryPath, []byte(`{"version":"2","defaultProject":"a","projects":{"a":{"root":""}}}`))
	require.NoError(t, err)
	assert.Zero(t, s.Version, "a string version is ignored")
	assert.Equal(t, "a", s.DefaultProject)
	assert.Contains(t, s.Projects, "a")
	assert.JSONEq(t, `{"root":""}`, string(s.Projects["a"]))
}

func TestLoad_DirFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "angular.json"), []byte(`{"defaultProject":"app"}`), 0o644))

	s, err := Load(os.DirFS(dir))
	require.NoError(t, err)
	assert.Equal(t, "app", s.DefaultProject)
}

func TestRead_PropagatesNonNotExistErrors(t *testing.T) {
	_, _, err := Read(brokenFS{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, oerrors.ErrManifestNotFound))
	assert.ErrorIs(t, err, fs.ErrPermission)
}

type brokenFS struct{}

func (brokenFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}
