package sourcefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.sg")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRead_PlainSource(t *testing.T) {
	path := writeTemp(t, "fr x = 5\nsay x\n")
	src, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "fr x = 5\nsay x\n", src)
}

func TestRead_StripsLeadingShebang(t *testing.T) {
	path := writeTemp(t, "#!/usr/bin/env sigmac\nfr x = 5\nsay x\n")
	src, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "fr x = 5\nsay x\n", src)
}

func TestRead_ShebangOnlyLine(t *testing.T) {
	path := writeTemp(t, "#!/usr/bin/env sigmac")
	src, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "", src)
}

func TestRead_HashNotAtStartIsNotAShebang(t *testing.T) {
	path := writeTemp(t, "say 1\n#not a shebang\n")
	src, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "say 1\n#not a shebang\n", src)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.sg"))
	assert.Error(t, err)
}
