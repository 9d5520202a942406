package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fs)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUnfoldCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.ics", []byte("DESCRIPTION:This is a lo\r\n ng descrip\r\n\ttion\r\n\r\nSUMMARY:x\r\n"), 0644))
	expected := "DESCRIPTION:This is a long description\nSUMMARY:x\n"

	out, err := execute(t, fs, "", "unfold", "in.ics")
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	out, err = execute(t, fs, "DESCRIPTION:This is a lo\n ng descrip\n tion\nSUMMARY:x", "unfold")
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	_, err = execute(t, fs, "", "unfold", "missing.ics")
	assert.Error(t, err)
}

func TestFoldCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "hello world\nabcdef\n", "fold", "-l", "6", "--newline", "lf")
	require.NoError(t, err)
	assert.Equal(t, "hello \n world\nabcdef\n", out)

	out, err = execute(t, afero.NewMemMapFs(), "hello world\n", "fold", "-l", "6")
	require.NoError(t, err)
	assert.Equal(t, "hello \r\n world\r\n", out)

	_, err = execute(t, afero.NewMemMapFs(), "x\n", "fold", "-l", "1")
	assert.Error(t, err)
	_, err = execute(t, afero.NewMemMapFs(), "x\n", "fold", "--newline", "cr")
	assert.Error(t, err)
}

func TestFoldCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("zone = \"UTC\"\nline-length = 6\nnewline = \"lf\"\noutput = \"text\"\n"), 0644))
	out, err := execute(t, afero.NewMemMapFs(), "hello world\n", "fold", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "hello \n world\n", out)
}

func TestFoldThenUnfoldCommands(t *testing.T) {
	fs := afero.NewMemMapFs()
	line := "ATTENDEE;RSVP=TRUE;ROLE=REQ-PARTICIPANT;CUTYPE=GROUP:mailto:employee-A@example.com"
	folded, err := execute(t, fs, line+"\n", "fold", "-l", "20")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "folded.ics", []byte(folded), 0644))
	out, err := execute(t, fs, "", "unfold", "folded.ics")
	require.NoError(t, err)
	assert.Equal(t, line+"\n", out)
}

func TestDateParseCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "date", "parse", "--zone", "UTC", "20120701T080130Z")
	require.NoError(t, err)
	assert.Equal(t, `20120701T080130Z
  instant: 2012-07-01T08:01:30Z
  zone: utc
  DATE_BASIC: 20120701
  DATE_EXTENDED: 2012-07-01
  TIME_BASIC: 20120701T080130+0000
  TIME_EXTENDED: 2012-07-01T08:01:30+00:00
  HCARD_TIME_TAG: 2012-07-01T08:01:30+0000
  UTC_TIME_BASIC: 20120701T080130Z
  UTC_TIME_EXTENDED: 2012-07-01T08:01:30Z
`, out)

	out, err = execute(t, afero.NewMemMapFs(), "", "date", "parse", "-z", "UTC", "-o", "json", "2012-07-01T11:01:30+03:00")
	require.NoError(t, err)
	var rs resultSet[dateResult]
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs.Results, 1)
	assert.Equal(t, "2012-07-01T08:01:30Z", rs.Results[0].Instant)
	assert.Equal(t, "offset", rs.Results[0].Zone)
	assert.Equal(t, "+03:00", rs.Results[0].Offset)
	assert.True(t, rs.Results[0].HasTime)
	assert.Equal(t, "20120701T080130Z", rs.Results[0].Formats["UTC_TIME_BASIC"])

	_, err = execute(t, afero.NewMemMapFs(), "", "date", "parse", "-z", "UTC", "20121301")
	assert.Error(t, err)
}

func TestDateFormatCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "date", "format", "-f", "date-extended", "--zone", "+05:30", "20120701T200000Z", "20120701T100000Z")
	require.NoError(t, err)
	assert.Equal(t, "2012-07-02\n2012-07-01\n", out)

	out, err = execute(t, afero.NewMemMapFs(), "", "date", "format", "--zone", "Asia/Beirut", "-f", "TIME_EXTENDED", "2006-01-02T08:20:30Z")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02T10:20:30+02:00\n", out)

	_, err = execute(t, afero.NewMemMapFs(), "", "date", "format", "-f", "rfc3339", "20120701")
	assert.Error(t, err)
}

func TestOffsetCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "offset", "-o", "json", "--", "-05:30", "+2")
	require.NoError(t, err)
	var rs resultSet[offsetResult]
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	assert.Equal(t, []offsetResult{
		{Input: "-05:30", Hours: 5, Minutes: 30, Negative: true, Seconds: -19800, Basic: "-0530", Extended: "-05:30"},
		{Input: "+2", Hours: 2, Seconds: 7200, Basic: "+0200", Extended: "+02:00"},
	}, rs.Results)

	out, err = execute(t, afero.NewMemMapFs(), "", "offset", "0530")
	require.NoError(t, err)
	assert.Equal(t, "0530\t+0530\t+05:30\t19800\n", out)

	_, err = execute(t, afero.NewMemMapFs(), "", "offset", "+05:3x")
	assert.Error(t, err)
}

func TestDurationCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "duration", "-o", "yaml", "P15DT5H0M20S", "--", "-P1W")
	require.NoError(t, err)
	var rs resultSet[durationResult]
	require.NoError(t, yaml.Unmarshal([]byte(out), &rs))
	require.Len(t, rs.Results, 2)

	d := rs.Results[0]
	assert.Equal(t, "P15DT5H0M20S", d.Canonical)
	assert.Nil(t, d.Weeks)
	require.NotNil(t, d.Days)
	assert.Equal(t, 15, *d.Days)
	require.NotNil(t, d.Minutes)
	assert.Equal(t, 0, *d.Minutes)
	assert.False(t, d.Prior)
	assert.Equal(t, "365h0m20s", d.Nominal)

	assert.Equal(t, "-P1W", rs.Results[1].Canonical)
	assert.True(t, rs.Results[1].Prior)

	out, err = execute(t, afero.NewMemMapFs(), "", "duration", "1H")
	require.NoError(t, err)
	assert.Equal(t, "1H\tPT1H\t1h0m0s\n", out)

	out, err = execute(t, afero.NewMemMapFs(), "", "duration", "P99999999W")
	require.NoError(t, err)
	assert.Equal(t, "P99999999W\tP99999999W\t2562047h47m16.854775807s\n", out)
}

func TestPeriodCommand(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "period", "-z", "UTC", "-o", "toml", "19970101T180000Z/PT5H30M", "19970101T180000Z/19970102T070000Z")
	require.NoError(t, err)
	var rs resultSet[periodResult]
	_, err = toml.Decode(out, &rs)
	require.NoError(t, err)
	assert.Equal(t, []periodResult{
		{
			Input:       "19970101T180000Z/PT5H30M",
			Start:       "1997-01-01T18:00:00+00:00",
			Duration:    "PT5H30M",
			ResolvedEnd: "1997-01-01T23:30:00+00:00",
		},
		{
			Input:       "19970101T180000Z/19970102T070000Z",
			Start:       "1997-01-01T18:00:00+00:00",
			End:         "1997-01-02T07:00:00+00:00",
			ResolvedEnd: "1997-01-02T07:00:00+00:00",
		},
	}, rs.Results)

	_, err = execute(t, afero.NewMemMapFs(), "", "period", "19970101T180000Z")
	assert.Error(t, err)
}

func TestUnknownOutput(t *testing.T) {
	_, err := execute(t, afero.NewMemMapFs(), "", "offset", "-o", "xml", "+0100")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.ics", []byte("A:b\r\n"), 0644))
	cmd := newRootCmd(fs)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(logs)
	cmd.SetArgs([]string{"unfold", "-v", "-z", "UTC", "in.ics"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "A:b\n", out.String())
	assert.Contains(t, logs.String(), "icaltemporal: reading in.ics")
	assert.Contains(t, logs.String(), "icaltemporal: unfolded 1 lines")
}
