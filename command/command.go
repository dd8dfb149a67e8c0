// Package command builds and parses the individual EFA remote operations.
//
// Each remote operation is one command type: it owns the operation name,
// a parameter schema consulted on every insert, and a Parse method that
// validates and maps the operation's response shape. Commands are
// one-shot values; build, serialize, parse, discard.
package command

import (
	"errors"
	"strings"
	"time"
)

// Operation names as the server spells them in request paths.
const (
	OpSystemInfo     = "XML_SYSTEMINFO_REQUEST"
	OpStopFinder     = "XML_STOPFINDER_REQUEST"
	OpDepartures     = "XML_DM_REQUEST"
	OpServingLines   = "XML_SERVINGLINES_REQUEST"
	OpLineList       = "XML_LINELIST_REQUEST"
	OpLineStop       = "XML_LINESTOP_REQUEST"
	OpAdditionalInfo = "XML_ADDINFO_REQUEST"
	OpTrip           = "XML_TRIP_REQUEST2"
)

// FormatRapidJSON is the only response format this client speaks.
const FormatRapidJSON = "rapidJSON"

// ErrNotImplemented marks operations the remote schema of which is not
// known yet. They fail immediately and unconditionally.
var ErrNotImplemented = errors.New("operation not implemented")

// Command is the capability shared by every operation builder. Parse is
// deliberately not part of the interface; its result type differs per
// operation.
type Command interface {
	Name() string
	AddParam(key string, value any) error
	Query() string
}

type param struct {
	key   string
	value any
}

// request carries the state shared by all command variants.
type request struct {
	name   string
	schema schema
	params []param
}

// newRequest seeds the output format through the schema so that an
// unsupported format fails at construction, before any I/O.
func newRequest(name, format string, s schema) (*request, error) {
	r := &request{name: name, schema: s}
	if err := r.AddParam("outputFormat", format); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the operation name.
func (r *request) Name() string {
	return r.name
}

// AddParam validates key and value against the operation's schema and
// stores the pair. Re-adding a key overwrites the value but keeps the
// key's original position, so serialization stays stable.
func (r *request) AddParam(key string, value any) error {
	if err := validate(r.name, key, value, r.schema); err != nil {
		return err
	}
	for i := range r.params {
		if r.params[i].key == key {
			r.params[i].value = value
			return nil
		}
	}
	r.params = append(r.params, param{key: key, value: value})
	return nil
}

// AddDateTime splits t into the two wire parameters the server expects:
// itdDate as YYYYMMDD and itdTime as HHMM. The zero time is a no-op.
func (r *request) AddDateTime(t time.Time) error {
	if t.IsZero() {
		return nil
	}
	if err := r.AddParam("itdDate", t.Format("20060102")); err != nil {
		return err
	}
	return r.AddParam("itdTime", t.Format("1504"))
}

// Param returns the stored value for key.
func (r *request) Param(key string) (any, bool) {
	for _, p := range r.params {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// Query serializes the command to "name?k=v&k=v" in insertion order.
// Values go out verbatim: the server expects literal characters such as
// the brackets in WGS84[dd.ddddd] and chokes on percent-escapes. The
// one exception is the space, which cannot appear in an HTTP request
// line; line ids like "vgn:11002: :H:j25" contain one.
func (r *request) Query() string {
	var b strings.Builder
	b.WriteString(r.name)
	b.WriteByte('?')
	for i, p := range r.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(strings.ReplaceAll(formatValue(p.value), " ", "%20"))
	}
	return b.String()
}
