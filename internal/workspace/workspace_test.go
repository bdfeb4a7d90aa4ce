package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/wsproj/internal/errors"
)

const sampleManifest = `{
  "version": 1,
  "defaultProject": "dev-app",
  "projects": {
    "dev-app": {
      "projectType": "application",
      "root": "",
      "sourceRoot": "src",
      "prefix": "app",
      "architect": {
        "build": {
          "builder": "@angular-devkit/build-angular:browser",
          "defaultConfiguration": "production",
          "options": {"outputPath": "dist/dev-app"}
        }
      },
      "schematics": {"@schematics/angular:component": {"style": "scss"}}
    },
    "core": {
      "projectType": "library",
      "root": "packages/core",
      "targets": {"build": {"builder": "@angular-devkit/build-angular:ng-packagr"}}
    },
    "broken": "not-an-object",
    "empty": null
  }
}`

func loadSample(t *testing.T) *Collection {
	t.Helper()
	fsys := fstest.MapFS{"angular.json": {Data: []byte(sampleManifest)}}
	c, err := LoadProjects(context.Background(), fsys)
	require.NoError(t, err)
	return c
}

func TestLoadProjects_Normalizes(t *testing.T) {
	c := loadSample(t)

	assert.Equal(t, []string{"core", "dev-app"}, c.Names())
	assert.Equal(t, 2, c.Len())

	app, err := c.Get("dev-app")
	require.NoError(t, err)
	assert.Equal(t, "dev-app", app.Name)
	assert.Equal(t, "", app.Root)
	assert.Equal(t, "src", app.SourceRoot)
	assert.Equal(t, "app", app.Prefix)
	assert.Equal(t, "application", app.ProjectType())
	require.Contains(t, app.Targets, "build")
	assert.Equal(t, "@angular-devkit/build-angular:browser", app.Targets["build"].Builder)
	assert.Equal(t, "production", app.Targets["build"].DefaultConfiguration)
	out, ok := app.Targets["build"].Options["outputPath"].Str()
	assert.True(t, ok)
	assert.Equal(t, "dist/dev-app", out)

	assert.Equal(t, []string{"projectType", "schematics"}, app.Extensions.Keys())
	schematics, ok := app.Extensions.Get("schematics")
	require.True(t, ok)
	assert.Equal(t, KindObject, schematics.Kind())
}

func TestLoadProjects_TargetsKey(t *testing.T) {
	c := loadSample(t)

	lib, err := c.Get("core")
	require.NoError(t, err)
	assert.Equal(t, "library", lib.ProjectType())
	assert.Equal(t, "packages/core", lib.Root)
	assert.Empty(t, lib.SourceRoot)
	assert.Equal(t, "@angular-devkit/build-angular:ng-packagr", lib.Targets["build"].Builder)
}

func TestLoadProjects_SkipsMalformedEntries(t *testing.T) {
	c := loadSample(t)

	_, err := c.Get("broken")
	assert.True(t, errors.Is(err, ErrNoSuchProject))

	_, err = c.Get("empty")
	assert.True(t, errors.Is(err, ErrNoSuchProject))
}

func TestLoadProjects_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{"missing manifest", fstest.MapFS{}, oerrors.ErrManifestNotFound},
		{"invalid json", fstest.MapFS{"angular.json": {Data: []byte("{not json")}}, oerrors.ErrManifestInvalid},
		{"projects is an array", fstest.MapFS{"angular.json": {Data: []byte(`{"projects":[]}`)}}, oerrors.ErrManifestInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProjects(context.Background(), tt.fsys)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadProjects_NoProjects(t *testing.T) {
	fsys := fstest.MapFS{"workspace.json": {Data: []byte(`{"version":1}`)}}
	c, err := LoadProjects(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadProjects_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadProjects(ctx, fstest.MapFS{"angular.json": {Data: []byte(sampleManifest)}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCollection(t *testing.T) {
	c := NewCollection(&ProjectDefinition{Name: "a"}, &ProjectDefinition{Name: "b", Root: "x"}, &ProjectDefinition{Name: "b", Root: "y"})
	assert.Equal(t, 2, c.Len())
	b, err := c.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "y", b.Root)
}

func TestValue_RoundTripShapes(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"s":"x","n":2,"b":true,"a":[1,"y"],"z":null}`), &v))

	obj, ok := v.Object()
	require.True(t, ok)
	assert.Equal(t, KindString, obj["s"].Kind())
	assert.Equal(t, KindNumber, obj["n"].Kind())
	assert.Equal(t, KindBool, obj["b"].Kind())
	assert.Equal(t, KindArray, obj["a"].Kind())
	assert.Equal(t, KindNull, obj["z"].Kind())

	n, ok := obj["n"].Number()
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)

	b, ok := obj["b"].Bool()
	assert.True(t, ok)
	assert.True(t, b)

	items, ok := obj["a"].Array()
	require.True(t, ok)
	assert.Len(t, items, 2)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"x","n":2,"b":true,"a":[1,"y"],"z":null}`, string(data))
}

func TestExtensions_ProjectTypeDefaults(t *testing.T) {
	tests := []struct {
		name string
		ext  Extensions
		want string
	}{
		{"absent", Extensions{}, ""},
		{"nil map", nil, ""},
		{"library", Extensions{ProjectTypeKey: StringValue("library")}, "library"},
		{"not a string", Extensions{ProjectTypeKey: NumberValue(1)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ext.ProjectType())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
