package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func codecFixture() []Row {
	return []Row{
		{ColActivity: "Engagement survey", ColBusinessUnit: "People Ops", ColOwner: "Dana", ColStatus: "Ongoing", ColTargetDate: "2026-09-15", ColDetails: "Window open"},
		{ColActivity: "Handbook audit", ColBusinessUnit: "", ColOwner: "Sofia", ColStatus: "Pending", ColTargetDate: "", ColDetails: ""},
	}
}

func TestCodecFor(t *testing.T) {
	c, err := CodecFor("csv")
	require.NoError(t, err)
	require.IsType(t, CSVCodec{}, c)

	c, err = CodecFor("xlsx")
	require.NoError(t, err)
	require.IsType(t, XLSXCodec{}, c)

	_, err = CodecFor("pdf")
	require.Error(t, err)
}

func TestCSVCodec_EncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVCodec{}.Encode(&buf, codecFixture()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Activity,BU(s),Owner,Status,Target Date,Details", lines[0])

	rows, err := CSVCodec{}.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Engagement survey", rows[0][ColActivity])
	require.Equal(t, "", rows[1][ColBusinessUnit])
	require.Equal(t, "Sofia", rows[1][ColOwner])
}

func TestCSVCodec_DecodeShortRecordDefaultsToEmpty(t *testing.T) {
	payload := "Activity,Owner,Status\nAudit,Dana\n"
	rows, err := CSVCodec{}.Decode(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Audit", rows[0]["Activity"])
	require.Equal(t, "Dana", rows[0]["Owner"])
	require.Equal(t, "", rows[0]["Status"])
}

func TestCSVCodec_DecodeEmptyPayload(t *testing.T) {
	rows, err := CSVCodec{}.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestXLSXCodec_EncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXCodec{}.Encode(&buf, codecFixture()))

	rows, err := XLSXCodec{}.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Engagement survey", rows[0][ColActivity])
	require.Equal(t, "People Ops", rows[0][ColBusinessUnit])
	require.Equal(t, "2026-09-15", rows[0][ColTargetDate])
	require.Equal(t, "Sofia", rows[1][ColOwner])
	require.Equal(t, "", rows[1][ColTargetDate])
}

func TestXLSXCodec_DecodeRejectsGarbage(t *testing.T) {
	_, err := XLSXCodec{}.Decode(strings.NewReader("not a workbook"))
	require.Error(t, err)
}
