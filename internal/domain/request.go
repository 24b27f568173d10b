package domain

import (
	"fmt"
	"maps"
)

// RequestContext is the normalized, read-only view of one inbound request.
type RequestContext struct {
	method   string
	path     string
	action   *string
	param1   *string
	param2   *string
	rawQuery map[string]string
}

// NewRequestContext validates the raw request record and the positional
// arguments taken from the route. request must be a map[string]any; each of
// action, param1 and param2 must be a string, a *string or nil.
func NewRequestContext(request any, action, param1, param2 any) (RequestContext, error) {
	record, ok := request.(map[string]any)
	if !ok || record == nil {
		return RequestContext{}, &RequestError{Kind: InvalidRequestShape, Field: "request", Got: typeName(request)}
	}

	rc := RequestContext{rawQuery: map[string]string{}}
	var err error
	if rc.action, err = optionalString("action", action); err != nil {
		return RequestContext{}, err
	}
	if rc.param1, err = optionalString("param1", param1); err != nil {
		return RequestContext{}, err
	}
	if rc.param2, err = optionalString("param2", param2); err != nil {
		return RequestContext{}, err
	}

	rc.method, _ = record["method"].(string)
	rc.path, _ = record["path"].(string)
	switch q := record["query_params"].(type) {
	case map[string]string:
		maps.Copy(rc.rawQuery, q)
	case map[string]any:
		for k, v := range q {
			if s, ok := v.(string); ok {
				rc.rawQuery[k] = s
			}
		}
	}
	return rc, nil
}

func optionalString(field string, v any) (*string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	case *string:
		if t == nil {
			return nil, nil
		}
		s := *t
		return &s, nil
	default:
		return nil, &RequestError{Kind: InvalidArgumentType, Field: field, Got: typeName(v)}
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func (r RequestContext) Method() string { return r.method }
func (r RequestContext) Path() string   { return r.path }

func (r RequestContext) Action() (string, bool) { return deref(r.action) }
func (r RequestContext) Param1() (string, bool) { return deref(r.param1) }
func (r RequestContext) Param2() (string, bool) { return deref(r.param2) }

// Query returns a single raw query parameter.
func (r RequestContext) Query(key string) (string, bool) {
	v, ok := r.rawQuery[key]
	return v, ok
}

// RawQuery returns a copy of the query parameters.
func (r RequestContext) RawQuery() map[string]string {
	return maps.Clone(r.rawQuery)
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}
