package kwtable

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	t.Parallel()

	t.Run("Writes present columns in catalog order", func(t *testing.T) {
		t.Parallel()
		table, err := ParseDataset("CPC;Keyword\n0.5;vpn\n;seo\n")
		require.NoError(t, err)

		want := "Keyword;CPC\nvpn;0.5\nseo;\n"
		assert.Equal(t, want, EncodeCSV(table, Delimiter))
	})

	t.Run("List fields serialize comma-separated", func(t *testing.T) {
		t.Parallel()
		table, err := ParseDataset("Keyword;Keywords SERP Features;Intent\nvpn;7,0;2\n")
		require.NoError(t, err)

		want := "Keyword;Keywords SERP Features;Intent\nvpn;0,7;2\n"
		assert.Equal(t, want, EncodeCSV(table, Delimiter), "features re-serialize in ascending order")
	})
}

func TestExportOptions(t *testing.T) {
	t.Parallel()

	opts := NewExportOptions()
	assert.Equal(t, OutputFormatCSV, opts.Format)
	assert.Equal(t, CompressionNone, opts.Compression)
	assert.Equal(t, ".csv", opts.FileExtension())

	opts = opts.WithFormat(OutputFormatTSV).WithCompression(CompressionGZ)
	assert.Equal(t, ".tsv.gz", opts.FileExtension())

	assert.Equal(t, ".xlsx", NewExportOptions().WithFormat(OutputFormatXLSX).WithCompression(CompressionGZ).FileExtension(),
		"compression does not apply to xlsx")
	assert.Equal(t, ".db", NewExportOptions().WithFormat(OutputFormatSQLite).FileExtension())
}

func TestSessionExport(t *testing.T) {
	t.Parallel()

	newLoaded := func(t *testing.T) *Session {
		t.Helper()
		sess := NewSession()
		_, err := sess.LoadDataset("Keyword;Search Volume;CPC\nvpn;246000;0.50\nseo audit;9900;\n")
		require.NoError(t, err)
		return sess
	}

	t.Run("CSV to writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, newLoaded(t).Export(&buf, NewExportOptions()))
		assert.Equal(t, "Keyword;Search Volume;CPC\nvpn;246000;0.5\nseo audit;9900;\n", buf.String())
	})

	t.Run("Gzip compressed CSV to writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		opts := NewExportOptions().WithCompression(CompressionGZ)
		require.NoError(t, newLoaded(t).Export(&buf, opts))

		gzReader, err := gzip.NewReader(&buf)
		require.NoError(t, err)
		data, err := io.ReadAll(gzReader)
		require.NoError(t, err)
		assert.Equal(t, "Keyword;Search Volume;CPC\nvpn;246000;0.5\nseo audit;9900;\n", string(data))
	})

	t.Run("SQLite to writer is rejected", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := newLoaded(t).Export(&buf, NewExportOptions().WithFormat(OutputFormatSQLite))
		require.Error(t, err)
	})

	t.Run("ExportFile then LoadFile round trips", func(t *testing.T) {
		t.Parallel()
		sess := newLoaded(t)
		path := filepath.Join(t.TempDir(), "keywords.csv")
		require.NoError(t, sess.ExportFile(path, NewExportOptions()))

		again := NewSession()
		_, err := again.LoadFile(path)
		require.NoError(t, err)
		assert.True(t, sess.Table().Equal(again.Table()))
	})
}

func TestExportSQLite(t *testing.T) {
	t.Parallel()

	sess := NewSession()
	_, err := sess.LoadDataset(
		"Keyword;Search Volume;CPC;Keywords SERP Features\n" +
			"vpn;246000;0.50;0,7\n" +
			"seo audit;9900;;\n",
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keywords.db")
	require.NoError(t, sess.ExportFile(path, NewExportOptions().WithFormat(OutputFormatSQLite)))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM keywords").Scan(&count))
	assert.Equal(t, 2, count)

	var keyword string
	var volume int64
	var features string
	err = db.QueryRow("SELECT keyword, search_volume, serp_features FROM keywords WHERE id = 1").
		Scan(&keyword, &volume, &features)
	require.NoError(t, err)
	assert.Equal(t, "vpn", keyword)
	assert.Equal(t, int64(246000), volume)
	assert.Equal(t, "0,7", features)

	var cpc sql.NullFloat64
	require.NoError(t, db.QueryRow("SELECT cpc FROM keywords WHERE id = 2").Scan(&cpc))
	assert.False(t, cpc.Valid, "absent cpc is stored as NULL, not zero")
}
