package sqlout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/spot-seeder/models"
)

func TestFormatNull(t *testing.T) {
	assert.Equal(t, "NULL", Format(nil))

	var ts *time.Time
	assert.Equal(t, "NULL", Format(ts))

	var s *string
	assert.Equal(t, "NULL", Format(s))

	var n *int
	assert.Equal(t, "NULL", Format(n))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", Format(true))
	assert.Equal(t, "false", Format(false))
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "42", Format(42))
	assert.Equal(t, "15000", Format(int64(15000)))
	assert.Equal(t, "0.5", Format(0.5))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "'2025-03-14 09:26:53'", Format(ts))
	assert.Equal(t, Format(ts), Format(&ts))
}

func TestFormatStringEscaping(t *testing.T) {
	assert.Equal(t, "'plain'", Format("plain"))
	// Embedded quotes are doubled, never dropped or corrupted.
	assert.Equal(t, "'O''Brien''s} place'", Format("O'Brien's} place"))
	assert.Equal(t, "''''", Format("'"))
}

func TestFormatIsPure(t *testing.T) {
	in := "it's"
	assert.Equal(t, Format(in), Format(in))
}

func TestInsertStatementShape(t *testing.T) {
	cat := &models.Category{ID: "abc", Name: "한식"}
	stmt := Insert(cat)

	lines := strings.Split(strings.TrimRight(stmt, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "INSERT INTO p_category (id, name, "))
	assert.True(t, strings.HasSuffix(lines[0], ") VALUES"))
	assert.True(t, strings.HasPrefix(lines[1], "('abc', '한식', false, NULL, NULL, "))
	assert.True(t, strings.HasSuffix(lines[1], ");"))
}

func TestSQLSinkComment(t *testing.T) {
	var b strings.Builder
	sink := NewSQLSink(&b)
	assert.NoError(t, sink.Comment("Users"))
	assert.NoError(t, sink.Comment(""))
	assert.NoError(t, sink.Flush())
	assert.Equal(t, "-- Users\n\n", b.String())
}
