package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args in an empty directory and returns its stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestScenarios_Run(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			var out bytes.Buffer

			tree, err := s.run(&out)
			require.NoError(t, err)
			require.NoError(t, tree.Check())
			assert.Equal(t, uint(len(s.inserts)-len(s.removes)), tree.Size())
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestScenario_DetectsMismatch(t *testing.T) {
	s := scenarios[2]
	s.want = []nodeWant{{key: 50, isRoot: true}}

	_, err := s.run(io.Discard)
	require.ErrorIs(t, err, ErrScenarioMismatch)

	s.want = []nodeWant{{key: 99, isRoot: true}}

	_, err = s.run(io.Discard)
	require.ErrorIs(t, err, ErrScenarioMismatch)
}

func TestFindScenarios(t *testing.T) {
	all, err := findScenarios(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(scenarios))

	all, err = findScenarios([]string{"ALL"})
	require.NoError(t, err)
	assert.Len(t, all, len(scenarios))

	picked, err := findScenarios([]string{"d", "A"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "D", picked[0].name)
	assert.Equal(t, "A", picked[1].name)

	_, err = findScenarios([]string{"E"})
	require.Error(t, err)
}

func TestScenarioCommand(t *testing.T) {
	out, err := runRoot(t, "scenario", "all")
	require.NoError(t, err)

	for _, name := range []string{"Scenario A", "Scenario B", "Scenario C", "Scenario D"} {
		assert.Contains(t, out, name)
	}

	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
}

func TestScenarioCommand_Unknown(t *testing.T) {
	_, err := runRoot(t, "scenario", "Z")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "avlharness dev\n", out)
}
