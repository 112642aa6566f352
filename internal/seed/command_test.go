package seed

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/records"
)

func writeSeedFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func memoryOpener(gw *records.MemoryGateway, opened *int) OpenFunc {
	return func(ctx context.Context) (records.Gateway, func() error, error) {
		*opened++
		return gw, func() error { return nil }, nil
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := NewCommand(nil)
	assert.Equal(t, "seed", cmd.Use)

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "f", file.Shorthand)
	assert.Equal(t, "portfolio.yaml", file.DefValue)

	dry := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dry)
	assert.Equal(t, "false", dry.DefValue)
}

func TestCommandCreatesRecords(t *testing.T) {
	gw := records.NewMemoryGateway()
	opened := 0
	cmd := NewCommand(memoryOpener(gw, &opened))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--file", writeSeedFile(t, sampleDoc)})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, opened)
	assert.Contains(t, out.String(), "created 1 skills record(s)")
	assert.Contains(t, out.String(), "total 3")

	skills, err := gw.List(context.Background(), records.Skill)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Expert", skills[0].Value("proficiency_level"))
}

func TestCommandDryRunDoesNotOpenStore(t *testing.T) {
	gw := records.NewMemoryGateway()
	opened := 0
	cmd := NewCommand(memoryOpener(gw, &opened))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", writeSeedFile(t, sampleDoc), "--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 0, opened)
	assert.Contains(t, out.String(), "would create 1 education record(s)")
}

func TestCommandRejectsInvalidDocumentBeforeOpening(t *testing.T) {
	opened := 0
	cmd := NewCommand(memoryOpener(records.NewMemoryGateway(), &opened))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", writeSeedFile(t, "nope:\n  - a: b\n")})

	err := cmd.Execute()
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, opened)
}

func TestCommandReportsOpenFailure(t *testing.T) {
	boom := errors.New("connection refused")
	cmd := NewCommand(func(ctx context.Context) (records.Gateway, func() error, error) {
		return nil, nil, boom
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", writeSeedFile(t, sampleDoc)})

	assert.ErrorIs(t, cmd.Execute(), boom)
}
