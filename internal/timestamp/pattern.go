// Package timestamp infers which date/time encoding a log stream uses from a
// single sample line, and compiles a parser that is reused for every
// remaining line. The supported encodings are a closed list, evaluated in
// fixed priority order; there is no plugin registration.
package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseFunc converts one timestamp substring into a time.Time. Timestamps
// without timezone information are treated as UTC.
type ParseFunc func(string) (time.Time, error)

// Candidate is one recognized timestamp encoding. Compile reports whether the
// sample text matches and, if so, returns the parser to bind for the rest of
// the stream.
type Candidate struct {
	Name    string
	Compile func(sample string) (ParseFunc, bool)
}

// Candidates returns the fixed, priority-ordered format list. Earlier
// entries win over later ones:
//
//	rfc3339     2021-04-25T16:57:15.337Z
//	rfc2822     12 Jul 2003 10:52:37 +0200
//	epoch       1619688527.018165 (also covers strace -ttt)
//	python      2021-04-28 06:25:24,321 (%(asctime)s)
//	datetime    2021-04-28 06:25:24
//	golog       2021/04/28 06:25:24 (Go log default, nginx error log)
//	nginx       28/Apr/2021:06:25:24 +0000 (nginx/apache access log)
//	rabbitmq    28-Apr-2021::12:10:42
//	strace      11:29:13 (strace -t, ltrace -t)
//	strace-tt   11:29:13.120535 (strace -tt, ltrace -tt)
func Candidates() []Candidate {
	return []Candidate{
		rfc3339Candidate(),
		rfc2822Candidate(),
		epochCandidate(),
		layoutCandidate("python", "2006-01-02 15:04:05,000"),
		layoutCandidate("datetime", "2006-01-02 15:04:05"),
		layoutCandidate("golog", "2006/01/02 15:04:05"),
		layoutCandidate("nginx", "02/Jan/2006:15:04:05 -0700"),
		layoutCandidate("rabbitmq", "02-Jan-2006::15:04:05"),
		timeOnlyCandidate("strace", "15:04:05"),
		timeOnlyCandidate("strace-tt", "15:04:05.000000"),
	}
}

func rfc3339Candidate() Candidate {
	parse := func(s string) (time.Time, error) {
		return time.Parse(time.RFC3339, s)
	}
	return Candidate{
		Name: "rfc3339",
		Compile: func(sample string) (ParseFunc, bool) {
			if _, err := parse(sample); err != nil {
				return nil, false
			}
			return parse, true
		},
	}
}

// RFC 2822 with and without the optional weekday and with numeric or named
// zones. The layout that matches the sample is the one bound.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
}

func rfc2822Candidate() Candidate {
	return Candidate{
		Name: "rfc2822",
		Compile: func(sample string) (ParseFunc, bool) {
			for _, layout := range rfc2822Layouts {
				if _, err := time.Parse(layout, sample); err == nil {
					bound := layout
					return func(s string) (time.Time, error) {
						return time.Parse(bound, s)
					}, true
				}
			}
			return nil, false
		},
	}
}

// Unix-like timestamp of arbitrary sub-second precision.
var epochRe = regexp.MustCompile(`^[0-9]{10}(\.[0-9]{1,9})?$`)

func epochCandidate() Candidate {
	return Candidate{
		Name: "epoch",
		Compile: func(sample string) (ParseFunc, bool) {
			if !epochRe.MatchString(sample) {
				return nil, false
			}
			return parseEpoch, true
		},
	}
}

func parseEpoch(s string) (time.Time, error) {
	if !epochRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("%q is not an epoch timestamp", s)
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(secs, 0).UTC(), nil
	}
	secs, err := strconv.ParseInt(s[:dot], 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	frac := s[dot+1:]
	nanos, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	for i := len(frac); i < 9; i++ {
		nanos *= 10
	}
	return time.Unix(secs, nanos).UTC(), nil
}

func layoutCandidate(name, layout string) Candidate {
	return Candidate{
		Name: name,
		Compile: func(sample string) (ParseFunc, bool) {
			if _, err := time.Parse(layout, sample); err != nil {
				return nil, false
			}
			return func(s string) (time.Time, error) {
				return time.Parse(layout, s)
			}, true
		},
	}
}

// timeOnlyCandidate handles clock-only formats; the parsed time gets today's
// date attached, in UTC.
func timeOnlyCandidate(name, layout string) Candidate {
	parse := func(s string) (time.Time, error) {
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, err
		}
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return Candidate{
		Name: name,
		Compile: func(sample string) (ParseFunc, bool) {
			if _, err := time.Parse(layout, sample); err != nil {
				return nil, false
			}
			return parse, true
		},
	}
}
