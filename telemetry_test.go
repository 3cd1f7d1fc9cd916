package catlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_InstallID_CreateAndPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "id")

	first, err := installIDAt(path)
	assert.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err, "generated id must be a uuid")

	second, err := installIDAt(path)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "id must be stable across reads")
}

func Test_InstallID_RewritesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id")
	assert.NoError(t, os.WriteFile(path, []byte("not a uuid"), 0o600))

	id, err := installIDAt(path)
	assert.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	again, err := installIDAt(path)
	assert.NoError(t, err)
	assert.Equal(t, id, again)
}

func Test_InstallID_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id")
	want := uuid.New().String()
	assert.NoError(t, os.WriteFile(path, []byte(" "+want+"\n"), 0o600))

	got, err := installIDAt(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
