package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegen-io/stylegen/internal/cli"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	tc := cli.NewRootCmd("test_version", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs([]string{"version"})
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), cli.GetVersionString())
	assert.Empty(t, stderr.String())
}
