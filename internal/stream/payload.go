package stream

import (
	"time"

	"github.com/Egor213/NodeLogs/internal/classifier"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/valyala/fastjson"
)

// TimestampLayout formats timestamps the stream did not provide as text.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var parserPool fastjson.ParserPool

// ParseEntry turns one event payload into a classified entry. JSON objects of
// the form {"timestamp": ..., "message": ...} are unpacked; anything else is
// taken verbatim as the message, stamped with now.
func ParseEntry(payload string, now time.Time) domain.LogEntry {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(payload)
	if err == nil && v.Type() == fastjson.TypeObject {
		if msg, ok := messageOf(v.Get("message")); ok {
			ts, t := timestampOf(v.Get("timestamp"), now)
			return newEntry(ts, t, msg)
		}
	}

	return newEntry(now.Format(TimestampLayout), now, payload)
}

func newEntry(ts string, t time.Time, msg string) domain.LogEntry {
	return domain.LogEntry{
		Timestamp: ts,
		Time:      t,
		Message:   msg,
		Level:     classifier.Classify(msg),
	}
}

func messageOf(v *fastjson.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes()), true
	case fastjson.TypeNumber:
		return v.String(), true
	}
	return "", false
}

func timestampOf(v *fastjson.Value, now time.Time) (string, time.Time) {
	if v == nil {
		return now.Format(TimestampLayout), now
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		ms, err := v.Int64()
		if err != nil {
			f, _ := v.Float64()
			ms = int64(f)
		}
		t := time.UnixMilli(ms)
		return t.Format(TimestampLayout), t
	case fastjson.TypeString:
		raw := string(v.GetStringBytes())
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return raw, t
		}
		return raw, time.Time{}
	}
	return now.Format(TimestampLayout), now
}
