package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSequence_Order(t *testing.T) {
	seq := DefaultSequence()
	require.Len(t, seq, 4)

	var names []string
	for _, s := range seq {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"identity", "dash-case", "camel-case", "pascal-case"}, names)
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		input  string
		dash   string
		camel  string
		pascal string
	}{
		{"myApp", "my-app", "myApp", "MyApp"},
		{"my-app", "my-app", "myApp", "MyApp"},
		{"my_app", "my-app", "myApp", "MyApp"},
		{"MyApp", "my-app", "myApp", "MyApp"},
		{"my app", "my-app", "myApp", "MyApp"},
		{"app", "app", "app", "App"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dash, err := Dasherize.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.dash, dash, "dash-case")

			camel, err := Camelize.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.camel, camel, "camel-case")

			pascal, err := Classify.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.pascal, pascal, "pascal-case")
		})
	}
}

func TestClassify_KeepsDots(t *testing.T) {
	got, err := Classify.Apply("my-app.core")
	require.NoError(t, err)
	assert.Equal(t, "MyApp.Core", got)
}

func TestIdentity(t *testing.T) {
	for _, in := range []string{"", "My_Weird-name", "  "} {
		got, err := Identity.Apply(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestTransforms_EmptyName(t *testing.T) {
	for _, s := range []Strategy{Dasherize, Camelize, Classify} {
		t.Run(s.Name, func(t *testing.T) {
			_, err := s.Apply("")
			assert.ErrorIs(t, err, ErrEmptyName)
		})
	}
}

func TestTransforms_Deterministic(t *testing.T) {
	for _, s := range DefaultSequence() {
		a, errA := s.Apply("someProject-name")
		b, errB := s.Apply("someProject-name")
		assert.Equal(t, errA, errB)
		assert.Equal(t, a, b, s.Name)
	}
}
