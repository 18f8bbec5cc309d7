package resource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"l10n-manager/core/errs"
	"l10n-manager/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Paths(t *testing.T) {
	l := NewLayout("app/res")
	assert.Equal(t, filepath.Join("app", "res", "values", "strings.xml"), l.DefaultPath())
	assert.Equal(t, filepath.Join("app", "res", "values-fr"), l.LocaleDir("fr"))
	assert.Equal(t, filepath.Join("app", "res", "values-fr", "strings.xml"), l.LocalePath("fr"))
	assert.Equal(t, "values-fr/strings.xml", l.RelLocalePath("fr"))
}

func TestConfig_Layout(t *testing.T) {
	l := Config{ResDir: "res", StringsFile: "ui.xml"}.Layout()
	assert.Equal(t, filepath.Join("res", "values", "ui.xml"), l.DefaultPath())
}

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []record.TextRecord{
		record.New("translatable_string", "translatable string value", true),
		record.New("non_translatable_string", "non translatable string value", false),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<resources>`,
		`    <string name="translatable_string">translatable string value</string>`,
		`    <string name="non_translatable_string" translatable="false">non translatable string value</string>`,
		`</resources>`,
	}, lines)
}

func TestWrite_Escaping(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []record.TextRecord{
		record.New(`a"b`, "x < y & z <![CDATA[<b>raw & kept</b>]]> tail > end", true),
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `name="a&quot;b"`)
	assert.Contains(t, buf.String(), `x &lt; y &amp; z <![CDATA[<b>raw & kept</b>]]> tail &gt; end`)
}

func TestRoundTrip(t *testing.T) {
	records := []record.TextRecord{
		record.New("plain", "hello world", true),
		record.New("fixed", "do not translate", false),
		record.New("markup", "<![CDATA[<b>bold</b>]]>", true),
		record.New("mixed", "a & b <![CDATA[<i>c</i>]]> d <![CDATA[e]]>", true),
		record.New("unterminated", "text with <![CDATA[ but no end", true),
		record.New("apostrophe", `don\'t "quote"`, true),
		record.New("empty", "", true),
		record.New("spaces", "  padded  ", true),
		record.New("unicode", "héllo – 世界", true),
		record.New("crlf", "line1\r\nline2", true),
		record.New("cr", "\r", true),
		record.New("cr_around_literal", "a\r<![CDATA[b]]>\rc", true),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	got, err := Read(&buf, "mem.xml")
	require.NoError(t, err)
	assert.Equal(t, "mem.xml", got.Path)
	assert.Equal(t, records, got.Records)
}

func TestWrite_RejectsUnreadableText(t *testing.T) {
	tests := []struct {
		name   string
		record record.TextRecord
	}{
		{name: "ControlCharacter", record: record.New("ctl", "ctl\x01", true)},
		{name: "ControlCharacterInName", record: record.New("bad\x01name", "v", true)},
		{name: "InvalidUTF8", record: record.New("utf", "bad \xff byte", true)},
		{name: "NonCharacter", record: record.New("nc", "x\uFFFE", true)},
		{name: "CarriageReturnInLiteral", record: record.New("lit", "<![CDATA[a\rb]]>", true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, []record.TextRecord{record.New("ok", "fine", true), tt.record})
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindWrite))
			assert.Zero(t, buf.Len(), "nothing may be written for rejected records")
		})
	}
}

func TestWriter_WriteLocale_KeepsFileOnRejectedRecords(t *testing.T) {
	layout := NewLayout(t.TempDir())
	w := NewWriter(layout)

	path, err := w.WriteLocale("fr", []record.TextRecord{record.New("s1", "un", true)})
	require.NoError(t, err)

	_, err = w.WriteLocale("fr", []record.TextRecord{record.New("s1", "ctl\x01", true)})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindWrite))
	assert.Equal(t, path, errs.PathOf(err))

	c, err := NewReader(layout).ReadLocale("fr")
	require.NoError(t, err)
	assert.Equal(t, []record.TextRecord{record.New("s1", "un", true)}, c.Records)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		path := filepath.Join(dir, "nope.xml")
		_, err := ReadFile(path)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindResource))
		assert.Equal(t, path, errs.PathOf(err))
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<resources><string name="a">x</resources>`), 0o644))
		c, err := ReadFile(path)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindSyntax))
		assert.Equal(t, path, errs.PathOf(err))
		assert.Empty(t, c.Records)
	})

	t.Run("MissingName", func(t *testing.T) {
		path := filepath.Join(dir, "noname.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<resources><string name="a">x</string><string>y</string></resources>`), 0o644))
		c, err := ReadFile(path)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindSyntax))
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), path)
		assert.Empty(t, c.Records)
	})
}

func TestReaderWriter_Locale(t *testing.T) {
	layout := NewLayout(t.TempDir())
	w := NewWriter(layout)
	r := NewReader(layout)

	path, err := w.WriteLocale("fr", []record.TextRecord{
		record.New("s1", "a much longer french value that will be replaced", true),
		record.New("s2", "deux", true),
	})
	require.NoError(t, err)
	assert.Equal(t, layout.LocalePath("fr"), path)

	_, err = w.WriteLocale("fr", []record.TextRecord{record.New("s1", "un", true)})
	require.NoError(t, err)

	c, err := r.ReadLocale("fr")
	require.NoError(t, err)
	assert.Equal(t, []record.TextRecord{record.New("s1", "un", true)}, c.Records)
	assert.Equal(t, path, c.Path)

	_, err = r.ReadDefault()
	assert.True(t, errs.IsKind(err, errs.KindResource))
}

func TestWriter_WriteLocale_Unwritable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "res")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	_, err := NewWriter(NewLayout(blocker)).WriteLocale("fr", nil)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindWrite))
}

func TestLayout_Locales(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"values", "values-fr", "values-de", "values-", "drawable"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "values-es"), []byte("not a dir"), 0o644))

	locales, err := NewLayout(root).Locales()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr"}, locales)

	_, err = NewLayout(filepath.Join(root, "missing")).Locales()
	assert.True(t, errs.IsKind(err, errs.KindResource))
}
