package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormats(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
	}{
		{
			"rfc3339",
			"[2021-04-25T16:57:15.337Z] starting",
			time.Date(2021, 4, 25, 16, 57, 15, 337000000, time.UTC),
		},
		{
			"rfc2822",
			"28 Apr 2021 06:25:24 +0000 mail stuff",
			time.Date(2021, 4, 28, 6, 25, 24, 0, time.UTC),
		},
		{
			"epoch with fraction",
			"1619655527.018165 execve(...)",
			time.Unix(1619655527, 18165000).UTC(),
		},
		{
			"epoch without fraction",
			"1619655527 message",
			time.Unix(1619655527, 0).UTC(),
		},
		{
			"python asctime",
			"2021-04-28 06:25:24,321 INFO started",
			time.Date(2021, 4, 28, 6, 25, 24, 321000000, time.UTC),
		},
		{
			"datetime",
			"2021-04-28 06:25:24 INFO started",
			time.Date(2021, 4, 28, 6, 25, 24, 0, time.UTC),
		},
		{
			"golog",
			"2021/04/28 06:25:24 handler: done",
			time.Date(2021, 4, 28, 6, 25, 24, 0, time.UTC),
		},
		{
			"nginx access",
			`[28/Apr/2021:06:25:24 +0000] "GET / HTTP/1.1" 200`,
			time.Date(2021, 4, 28, 6, 25, 24, 0, time.UTC),
		},
		{
			"rabbitmq",
			"28-Apr-2021::12:10:42 accepting AMQP connection",
			time.Date(2021, 4, 28, 12, 10, 42, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bp, err := Detect(tc.line)
			require.NoError(t, err)
			got, err := bp.Parse(tc.line)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestDetectTimeOnlyGetsTodaysDate(t *testing.T) {
	bp, err := Detect("11:29:13 close(4) = 0")
	require.NoError(t, err)
	assert.Equal(t, "strace", bp.Name)

	got, err := bp.Parse("11:29:13 close(4) = 0")
	require.NoError(t, err)
	assert.Equal(t, "11:29:13", got.Format("15:04:05"))
	assert.Equal(t, time.Now().UTC().Year(), got.Year())
}

func TestDetectStraceMicroseconds(t *testing.T) {
	bp, err := Detect("11:29:13.120535 openat(AT_FDCWD, ...)")
	require.NoError(t, err)
	assert.Equal(t, "strace-tt", bp.Name)

	got, err := bp.Parse("11:29:13.120535 openat(AT_FDCWD, ...)")
	require.NoError(t, err)
	assert.Equal(t, 120535000, got.Nanosecond())
}

func TestDetectNoTimestamp(t *testing.T) {
	for _, line := range []string{"", "no digits here", "pid 123 exited"} {
		_, err := Detect(line)
		assert.ErrorIs(t, err, ErrNoTimestamp, "line %q", line)
	}
}

func TestBoundParserReusesByteRange(t *testing.T) {
	sample := "[2021-04-25T16:57:15.337Z] starting"
	bp, err := Detect(sample)
	require.NoError(t, err)

	// Same shape, different instant: parses via the frozen range.
	got, err := bp.Parse("[2021-04-25T17:00:00.000Z] later")
	require.NoError(t, err)
	assert.Equal(t, 17, got.Hour())

	// A line with junk at that range fails instead of rebinding.
	_, err = bp.Parse("no timestamp on this one, sorry")
	assert.Error(t, err)

	// Short lines do not panic.
	_, err = bp.Parse("[20")
	assert.Error(t, err)
	_, err = bp.Parse("")
	assert.Error(t, err)
}

func TestDetectLayout(t *testing.T) {
	line := "level=info ts=2021-04-28 06:25:24 msg=ok"
	bp, err := DetectLayout(line, "2006-01-02 15:04:05")
	require.NoError(t, err)

	got, err := bp.Parse(line)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2021, 4, 28, 6, 25, 24, 0, time.UTC)))

	_, err = DetectLayout("nothing to see", "2006-01-02")
	assert.ErrorIs(t, err, ErrNoTimestamp)
}

func TestDetectorBindsOnce(t *testing.T) {
	d := NewDetector("")
	assert.Nil(t, d.Bound())

	// Lines without a detectable timestamp do not bind.
	_, err := d.Observe("starting up")
	require.Error(t, err)
	assert.Nil(t, d.Bound())

	bp, err := d.Observe("2021-04-28 06:25:24 ready")
	require.NoError(t, err)
	assert.Equal(t, "datetime", bp.Name)

	// Later lines cannot rebind, whatever they look like.
	again, err := d.Observe("1619655527.018165 something else")
	require.NoError(t, err)
	assert.Same(t, bp, again)
}

func TestDetectorWithExplicitLayout(t *testing.T) {
	d := NewDetector("02 Jan 2006 15:04")
	bp, err := d.Observe("backup finished at 28 Apr 2021 06:25")
	require.NoError(t, err)
	assert.Equal(t, "custom", bp.Name)

	got, err := bp.Parse("backup finished at 28 Apr 2021 07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
}
