package api

import (
	"net/url"
	"strconv"
	"time"
)

// query builds URL parameters, skipping zero values.
type query url.Values

func newQuery() query {
	return query(url.Values{})
}

func (q query) str(key, v string) query {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q query) num(key string, v int) query {
	if v != 0 {
		url.Values(q).Set(key, strconv.Itoa(v))
	}
	return q
}

func (q query) id(key string, v int64) query {
	if v != 0 {
		url.Values(q).Set(key, strconv.FormatInt(v, 10))
	}
	return q
}

func (q query) flag(key string, v bool) query {
	if v {
		url.Values(q).Set(key, "true")
	}
	return q
}

func (q query) date(key string, t time.Time) query {
	if !t.IsZero() {
		url.Values(q).Set(key, t.Format("2006-01-02"))
	}
	return q
}

func (q query) values() url.Values {
	return url.Values(q)
}

// tristate sets key only when v is non-nil, so false is sent explicitly.
func (q query) tristate(key string, v *bool) query {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatBool(*v))
	}
	return q
}
