package sqlout

import (
	"bufio"
	"io"

	"gorm.io/gorm"
)

// Sink receives every generated row. The text sink renders INSERT statements;
// the database sink feeds rows straight into gorm.
type Sink interface {
	Write(r Row) error
	Comment(text string) error
}

// SQLSink streams INSERT statements to an io.Writer.
type SQLSink struct {
	w *bufio.Writer
}

func NewSQLSink(w io.Writer) *SQLSink {
	return &SQLSink{w: bufio.NewWriter(w)}
}

func (s *SQLSink) Write(r Row) error {
	_, err := s.w.WriteString(Insert(r))
	return err
}

// Comment writes a "-- text" line; an empty text writes a blank separator.
func (s *SQLSink) Comment(text string) error {
	var err error
	if text == "" {
		_, err = s.w.WriteString("\n")
	} else {
		_, err = s.w.WriteString("-- " + text + "\n")
	}
	return err
}

func (s *SQLSink) Flush() error {
	return s.w.Flush()
}

// DBSink inserts rows through a gorm connection, typically inside one
// transaction per run.
type DBSink struct {
	db *gorm.DB
}

func NewDBSink(db *gorm.DB) *DBSink {
	return &DBSink{db: db}
}

func (s *DBSink) Write(r Row) error {
	return s.db.Create(r).Error
}

func (s *DBSink) Comment(string) error { return nil }
