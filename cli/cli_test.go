package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSolveCommand(t *testing.T) {
	t.Run("Prints the solved maze", func(t *testing.T) {
		code, out, _ := run("solve", "testdata/sample.txt")
		assert.Equal(t, ExitOK, code)
		assert.Equal(t, "##########\n"+
			"X+ #++++ #\n"+
			"#+ #+ #+ #\n"+
			"#++++ #++O\n"+
			"##########\n", out)
	})

	t.Run("JSON report", func(t *testing.T) {
		code, out, _ := run("solve", "--format", "json", "testdata/sample.txt")
		require.Equal(t, ExitOK, code)

		var report solveReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.True(t, report.Reachable)
		assert.Equal(t, 15, report.Steps)
		assert.Len(t, report.Path, 16)
		assert.Equal(t, "X+ #++++ #", report.Rendered[1])
	})

	t.Run("YAML report", func(t *testing.T) {
		code, out, _ := run("solve", "-f", "yaml", "testdata/enclosed.txt")
		assert.Equal(t, ExitUnreachable, code)

		var report solveReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.False(t, report.Reachable)
		assert.Empty(t, report.Path)
		assert.Equal(t, "#X  ###", report.Rendered[1])
	})

	t.Run("Unreachable exit", func(t *testing.T) {
		code, out, errOut := run("solve", "testdata/enclosed.txt")
		assert.Equal(t, ExitUnreachable, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "no path")
	})

	t.Run("Malformed mazes", func(t *testing.T) {
		for _, file := range []string{"testdata/stray.txt", "testdata/ragged.txt", "testdata/missing.txt"} {
			code, out, errOut := run("solve", file)
			assert.Equal(t, ExitMalformed, code, file)
			assert.Empty(t, out, file)
			assert.NotEmpty(t, errOut, file)
		}
	})

	t.Run("Usage errors", func(t *testing.T) {
		code, _, _ := run("solve")
		assert.Equal(t, ExitUsage, code)

		code, _, _ = run("solve", "a.txt", "b.txt")
		assert.Equal(t, ExitUsage, code)

		code, _, errOut := run("solve", "--format", "xml", "testdata/sample.txt")
		assert.Equal(t, ExitUsage, code)
		assert.Contains(t, errOut, "unknown format")
	})
}

func TestTokenCommand(t *testing.T) {
	saved := config.Envs
	defer func() { config.Envs = saved }()

	t.Run("Issues a verifiable token", func(t *testing.T) {
		config.Envs.JWTSecret = "test-secret"
		config.Envs.JWTIssuer = "test-issuer"

		code, out, _ := run("token", "--subject", "alice")
		require.Equal(t, ExitOK, code)

		tokenizer, err := token.NewJwtService("test-secret", "test-issuer")
		require.NoError(t, err)
		claims, err := tokenizer.Decode(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "alice", claims["sub"])
	})

	t.Run("Requires a secret", func(t *testing.T) {
		config.Envs.JWTSecret = ""

		code, _, errOut := run("token")
		assert.Equal(t, ExitFailure, code)
		assert.Contains(t, errOut, "secret")
	})
}
