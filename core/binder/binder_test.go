package binder_test

import (
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extractor/core/binder"
)

type searchRequest struct {
	Query    string    `query:"q,required"`
	Page     int       `query:"page"`
	Tags     []string  `query:"tags"`
	Active   *bool     `query:"active"`
	Owner    uuid.UUID `query:"owner"`
	Limit    uint16
	Internal string `query:"-"`
}

func TestQueryBinder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	req := httptest.NewRequest("GET", "/search?q=go&page=2&tags=a&tags=b,c&active=yes&owner="+owner.String()+"&limit=10&Internal=x", nil)

	var got searchRequest
	require.NoError(t, binder.Query()(req, &got))

	require.NotNil(t, got.Active)
	assert.True(t, *got.Active)
	assert.Equal(t, "go", got.Query)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, []string{"a", "b,c"}, got.Tags, "values are not comma split")
	assert.Equal(t, owner, got.Owner)
	assert.Equal(t, uint16(10), got.Limit)
	assert.Empty(t, got.Internal)
}

func TestQueryBinderRequiredField(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/search?page=1", nil)

	var got searchRequest
	err := binder.Query()(req, &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	assert.ErrorIs(t, err, binder.ErrMissingField)
}

func TestQueryBinderMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{name: "bad escape", query: "q=%zz"},
		{name: "bad int", query: "q=go&page=two"},
		{name: "overflow", query: "q=go&limit=70000"},
		{name: "bad uuid", query: "q=go&owner=nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/search", nil)
			req.URL.RawQuery = tt.query

			var got searchRequest
			assert.ErrorIs(t, binder.Query()(req, &got), binder.ErrFailedToParseQuery)
		})
	}
}

func TestDecodeRejectsNonStruct(t *testing.T) {
	t.Parallel()

	var n int
	assert.ErrorIs(t, binder.Decode(url.Values{}, &n, "query"), binder.ErrFailedToDecode)
	assert.ErrorIs(t, binder.Decode(url.Values{}, searchRequest{}, "query"), binder.ErrFailedToDecode)
}

func TestParseText(t *testing.T) {
	t.Parallel()

	var u32 uint32
	require.NoError(t, binder.ParseText("42", reflect.ValueOf(&u32).Elem()))
	assert.Equal(t, uint32(42), u32)

	assert.Error(t, binder.ParseText("-1", reflect.ValueOf(&u32).Elem()))

	var f float64
	require.NoError(t, binder.ParseText("1.5", reflect.ValueOf(&f).Elem()))
	assert.InDelta(t, 1.5, f, 0)

	var id uuid.UUID
	want := uuid.New()
	require.NoError(t, binder.ParseText(want.String(), reflect.ValueOf(&id).Elem()))
	assert.Equal(t, want, id)

	var m map[string]string
	assert.ErrorIs(t, binder.ParseText("x", reflect.ValueOf(&m).Elem()), binder.ErrUnsupportedType)
}
