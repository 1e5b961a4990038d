package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/spot-seeder/sqlout"
)

// commentSink records comment lines and can be told to fail.
type commentSink struct {
	lines []string
	err   error
}

func (c *commentSink) Write(sqlout.Row) error { return nil }
func (c *commentSink) Comment(text string) error {
	if c.err != nil {
		return c.err
	}
	c.lines = append(c.lines, text)
	return nil
}

func TestWriteHeaderEchoesConfiguration(t *testing.T) {
	cfg := testConfig()
	sink := &commentSink{}
	require.NoError(t, WriteHeader(sink, cfg))

	require.NotEmpty(t, sink.lines)
	assert.Equal(t, "Generated Dummy Data for Food Delivery Platform", sink.lines[0])
	assert.Contains(t, sink.lines, "  Stores: 12")
	assert.Contains(t, sink.lines, "  Orders: 120")
}

func TestWriteFooterReportsCounts(t *testing.T) {
	ctx, _ := runPipeline(t, testConfig(), 17)
	sink := &commentSink{}
	require.NoError(t, WriteFooter(sink, ctx))

	assert.Contains(t, sink.lines, "Data generation completed!")
	assert.Contains(t, sink.lines[2], "Users: 30")
}

func TestSummaryWritesPropagateSinkErrors(t *testing.T) {
	broken := &commentSink{err: errors.New("stream closed")}
	assert.Error(t, WriteHeader(broken, testConfig()))

	ctx := NewContext(testConfig(), broken)
	assert.Error(t, WriteFooter(broken, ctx))
}
