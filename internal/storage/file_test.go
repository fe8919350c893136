package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	in := []models.Template{
		{ID: "agendamento", Name: "Convite", Content: "{SAUDACAO} {NOME}"},
	}

	require.NoError(t, st.Write(ctx, CollectionTemplates, in))

	var out []models.Template
	require.NoError(t, st.Read(ctx, CollectionTemplates, &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingCollection(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []models.Client
	err = st.Read(context.Background(), CollectionClients, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, CollectionClients+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out []models.Client
	err = st.Read(context.Background(), CollectionClients, &out)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreEmptyCollection(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.Write(ctx, CollectionClients, []models.Client{}))

	var out []models.Client
	require.NoError(t, st.Read(ctx, CollectionClients, &out))
	assert.Empty(t, out)
	assert.NotNil(t, out)
}
