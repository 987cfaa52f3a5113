package extract

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/extractor/core/binder"
	"github.com/dmitrymomot/extractor/core/extension"
)

// Errors returned by Params lookups. They describe handler code asking for
// parameters the route does not provide, and are not HTTP rejections.
var (
	ErrUnknownURLParam = errors.New("unknown url param")
	ErrInvalidURLParam = errors.New("invalid url param")
)

// URLParam is one matched path segment, in route pattern order.
type URLParam struct {
	Name  string
	Value string
}

// urlParamsSlot holds the router's parameter list until an extractor takes it.
type urlParamsSlot struct {
	params []URLParam
	taken  bool
}

// SetURLParams stores the matched path parameters in m as a take-once slot.
// Routers call it once per request before dispatching.
func SetURLParams(m *extension.Map, params []URLParam) {
	extension.Insert(m, &urlParamsSlot{params: params})
}

// TakeURLParams moves the path-parameter list out of the request.
// It fails with MissingRouteParams when no router installed the list or when
// it was already taken. A slot that is present but nil means the router is
// wired incorrectly and causes a panic.
func (r *Request) TakeURLParams() ([]URLParam, Rejection) {
	slot, ok := extension.Get[*urlParamsSlot](r.extensions)
	if !ok {
		return nil, MissingRouteParams{}
	}
	if slot == nil {
		panic("extract: url params slot is present but empty")
	}
	if slot.taken {
		return nil, MissingRouteParams{}
	}

	params := slot.params
	slot.params = nil
	slot.taken = true
	return params, nil
}

// Params is the path-parameter list taken from a request, with lookups by name.
type Params struct {
	params []URLParam
}

// URLParams takes the path-parameter list of the matched route.
func URLParams() Extractor[*Params] {
	return func(r *Request) (*Params, Rejection) {
		params, rej := r.TakeURLParams()
		if rej != nil {
			return nil, rej
		}
		return &Params{params: params}, nil
	}
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.params)
}

// All returns a copy of the parameters in route pattern order.
func (p *Params) All() []URLParam {
	out := make([]URLParam, len(p.params))
	copy(out, p.params)
	return out
}

// Get returns the raw value of the named parameter.
func (p *Params) Get(name string) (string, error) {
	for _, param := range p.params {
		if param.Name == name {
			return param.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownURLParam, name)
}

// ParamAs returns the named parameter parsed as T.
func ParamAs[T any](p *Params, name string) (T, error) {
	var v T
	raw, err := p.Get(name)
	if err != nil {
		return v, err
	}
	if !parseParam(raw, &v) {
		var zero T
		return zero, fmt.Errorf("%w: expected something of type `%s`", ErrInvalidURLParam, typeName[T]())
	}
	return v, nil
}

func parseParam[T any](raw string, dst *T) bool {
	return binder.ParseText(raw, reflect.ValueOf(dst).Elem()) == nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
