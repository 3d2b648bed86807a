package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldFlags_AddTo(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)

	tmplFlag := cmd.Flags().Lookup("template")
	require.NotNil(t, tmplFlag)
	assert.Equal(t, "t", tmplFlag.Shorthand)
	assert.Equal(t, "", tmplFlag.DefValue)

	featFlag := cmd.Flags().Lookup("feature")
	require.NotNil(t, featFlag)
	assert.Equal(t, "f", featFlag.Shorthand)
	assert.Equal(t, "stringArray", featFlag.Value.Type())

	varFlag := cmd.Flags().Lookup("var")
	require.NotNil(t, varFlag)
	assert.Equal(t, "stringArray", varFlag.Value.Type())

	require.NotNil(t, cmd.Flags().Lookup("vars-file"))

	yesFlag := cmd.Flags().Lookup("yes")
	require.NotNil(t, yesFlag)
	assert.Equal(t, "y", yesFlag.Shorthand)
	assert.Equal(t, "false", yesFlag.DefValue)
}

func TestScaffoldFlags_Parse(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)

	err := cmd.ParseFlags([]string{"-t", "advanced", "-f", "auth", "--feature", "database", "--var", "a=b", "-y"})
	require.NoError(t, err)

	assert.Equal(t, "advanced", sf.Template)
	assert.Equal(t, []string{"auth", "database"}, sf.Features)
	assert.Equal(t, []string{"a=b"}, sf.Vars)
	assert.True(t, sf.Yes)
}

func TestInstallFlags_AddTo(t *testing.T) {
	var inf InstallFlags
	cmd := &cobra.Command{Use: "test"}
	inf.AddTo(cmd)

	pmFlag := cmd.Flags().Lookup("package-manager")
	require.NotNil(t, pmFlag)
	assert.Equal(t, "", pmFlag.DefValue)

	skipFlag := cmd.Flags().Lookup("skip-install")
	require.NotNil(t, skipFlag)
	assert.Equal(t, "false", skipFlag.DefValue)

	gitFlag := cmd.Flags().Lookup("git")
	require.NotNil(t, gitFlag)
	assert.Equal(t, "false", gitFlag.DefValue)
}
