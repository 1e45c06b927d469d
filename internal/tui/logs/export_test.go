package logs

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bsisduck/octolog/internal/ui/format"
)

func sampleRecords(n int) []format.LogRecord {
	records := make([]format.LogRecord, n)
	for i := range records {
		records[i] = format.LogRecord{
			LineNumber: i + 1,
			Timestamp:  time.Unix(int64(i), 0),
			Content:    "line",
		}
	}
	return records
}

func TestWriteExportJSONUnpaginatedIsFlatArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, ExportJSON, sampleRecords(5), 0))

	var out []format.LogRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 5)
}

func TestWriteExportJSONPaginatedSplitsIntoPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, ExportJSON, sampleRecords(25), 10))

	var pages [][]format.LogRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &pages))
	require.Greater(t, len(pages), 1, "25 records over a page size of 10 should split into more than one page")

	var flattened []format.LogRecord
	for _, page := range pages {
		flattened = append(flattened, page...)
	}
	require.Len(t, flattened, 25)
}

func TestPaginateCoversEveryRecordExactlyOnce(t *testing.T) {
	records := sampleRecords(47)
	pages := paginate(records, 9)

	seen := 0
	for _, page := range pages {
		seen += len(page)
	}
	require.Equal(t, len(records), seen)

	var flattened []format.LogRecord
	for _, page := range pages {
		flattened = append(flattened, page...)
	}
	require.Equal(t, records, flattened)
}

func TestPaginateZeroPageSizeReturnsSinglePage(t *testing.T) {
	records := sampleRecords(3)
	pages := paginate(records, 0)
	require.Len(t, pages, 1)
	require.Equal(t, records, pages[0])
}

func TestPaginateEmptyRecordsReturnsNoLines(t *testing.T) {
	pages := paginate(nil, 10)
	require.Len(t, pages, 1)
	require.Empty(t, pages[0])
}
