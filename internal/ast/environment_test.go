package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEnvironmentExpression_ExportedConst(t *testing.T) {
	src := []byte(`import { Environment } from '@abp/ng.core';

const baseUrl = 'http://localhost:4200';

export const environment = {
  production: false,
  application: {
    baseUrl,
    name: 'MyProjectName',
  },
  'oAuthConfig': { issuer: 'https://localhost:44305/' },
  apis: {
    default: { url: 'https://localhost:44305', rootNamespace: 'MyCompanyName.MyProjectName' },
  },
} as Environment;
`)

	expr, err := FindEnvironmentExpression(src)
	require.NoError(t, err)
	require.NotNil(t, expr)

	assert.Equal(t, []string{"production", "application", "oAuthConfig", "apis"}, expr.Keys())
	assert.Equal(t, 5, expr.StartLine)
	assert.Equal(t, 15, expr.EndLine)

	prod, ok := expr.Get("production")
	assert.True(t, ok)
	assert.Equal(t, "false", prod)

	apis, ok := expr.Get("apis")
	assert.True(t, ok)
	assert.Contains(t, apis, "rootNamespace")

	_, ok = expr.Get("missing")
	assert.False(t, ok)

	assert.True(t, len(expr.Text) > 0 && expr.Text[0] == '{')
}

func TestFindEnvironmentExpression_TypeAnnotation(t *testing.T) {
	src := []byte(`export const environment: Config = { production: true, hmr };`)

	expr, err := FindEnvironmentExpression(src)
	require.NoError(t, err)
	require.NotNil(t, expr)
	assert.Equal(t, []string{"production", "hmr"}, expr.Keys())
}

func TestFindEnvironmentExpression_FallbackOnProductionKey(t *testing.T) {
	src := []byte(`const other = { a: 1 };
const env = { production: true, name: "x" };
export default env;
`)

	expr, err := FindEnvironmentExpression(src)
	require.NoError(t, err)
	require.NotNil(t, expr)
	assert.Equal(t, []string{"production", "name"}, expr.Keys())
	assert.Equal(t, 2, expr.StartLine)
}

func TestFindEnvironmentExpression_NotFound(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no objects", "export const environment = loadEnv();"},
		{"unrelated object", "const x = { a: 1 };"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := FindEnvironmentExpression([]byte(tt.src))
			require.NoError(t, err)
			assert.Nil(t, expr)
		})
	}
}
