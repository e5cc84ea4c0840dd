package pomgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomgen/pomgen/internal/build"
)

const sampleDescriptor = `project:
  groupId: com.example
  artifactId: demo
  version: 1.0.0
dependencies:
  - groupId: com.zaxxer
    artifactId: HikariCP
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-web
`

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0o644)) //nolint:gosec // test

	result, err := Generate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "com.example", result.GroupID)
	assert.Equal(t, "demo", result.ArtifactID)
	assert.Equal(t, 2, result.DependencyCount)
	assert.Contains(t, string(result.XML), "<artifactId>demo</artifactId>")
}

func TestGenerate_EmptyPath(t *testing.T) {
	_, err := Generate(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestGenerate_MissingFile(t *testing.T) {
	_, err := Generate(context.Background(), "/nonexistent/pom.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading descriptor")
}

func TestGenerateBytes_Deterministic(t *testing.T) {
	first, err := GenerateBytes(context.Background(), []byte(sampleDescriptor))
	require.NoError(t, err)

	second, err := GenerateBytes(context.Background(), []byte(sampleDescriptor))
	require.NoError(t, err)

	assert.Equal(t, first.XML, second.XML)
}

func TestGenerateBytes_XMLDeclaration(t *testing.T) {
	result, err := GenerateBytes(context.Background(), []byte(sampleDescriptor), WithXMLDeclaration())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(result.XML), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestGenerateBytes_ArtifactIDOrder(t *testing.T) {
	result, err := GenerateBytes(context.Background(), []byte(sampleDescriptor), WithArtifactIDOrder())
	require.NoError(t, err)

	doc := string(result.XML)
	assert.Less(t, strings.Index(doc, "HikariCP"), strings.Index(doc, "spring-boot-starter-web"))
}

func TestGenerateBytes_Platform(t *testing.T) {
	desc := `project:
  groupId: com.example
  artifactId: demo
dependencies:
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-web
  - groupId: io.quarkus
    artifactId: quarkus-core
`

	result, err := GenerateBytes(context.Background(), []byte(desc), WithPlatform("io.quarkus", "quarkus-core"))
	require.NoError(t, err)

	doc := string(result.XML)
	assert.Less(t, strings.Index(doc, "quarkus-core"), strings.Index(doc, "spring-boot-starter-web"))
}

func TestGenerateBytes_Indent(t *testing.T) {
	result, err := GenerateBytes(context.Background(), []byte(sampleDescriptor), WithIndent("  "))
	require.NoError(t, err)

	assert.Contains(t, string(result.XML), "\n  <groupId>com.example</groupId>")
}

func TestGenerateBytes_InvalidDescriptor(t *testing.T) {
	_, err := GenerateBytes(context.Background(), []byte("project:\n  groupId: only\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifactId")
}

func TestGenerateBuild(t *testing.T) {
	b := build.New()
	b.Settings().Coordinates("com.example", "api")
	b.Dependencies().Add("com.example:core", build.Dependency{GroupID: "com.example", ArtifactID: "core"})

	result, err := GenerateBuild(b)
	require.NoError(t, err)

	assert.Equal(t, "api", result.ArtifactID)
	assert.Equal(t, 1, result.DependencyCount)
	assert.Contains(t, string(result.XML), "<artifactId>core</artifactId>")
}

func TestGenerateBuild_Nil(t *testing.T) {
	_, err := GenerateBuild(nil)
	require.Error(t, err)
}
