package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/extractor/core/extract"
	"github.com/dmitrymomot/extractor/core/handler"
	"github.com/dmitrymomot/extractor/core/response"
	"github.com/dmitrymomot/extractor/core/router"
	"github.com/dmitrymomot/extractor/middleware"
)

type listQuery struct {
	Tag   string `query:"tag"`
	Limit int    `query:"limit"`
}

type createNoteRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

// caller identifies the user from the X-User header.
type caller struct {
	Name string
}

func (c *caller) FromRequest(r *extract.Request) extract.Rejection {
	c.Name = strings.TrimSpace(r.Header.Get("X-User"))
	if c.Name == "" {
		return missingCaller{}
	}
	return nil
}

type missingCaller struct{}

func (missingCaller) Error() string   { return "X-User header is required" }
func (missingCaller) StatusCode() int { return http.StatusUnauthorized }
func (e missingCaller) Render(w http.ResponseWriter, r *http.Request) error {
	return response.StringWithStatus(e.Error(), e.StatusCode())(w, r)
}

type store = *noteStore

func storeErr(err error) handler.Response {
	switch {
	case errors.Is(err, errNoteNotFound), errors.Is(err, errTagNotFound):
		return response.Error(response.ErrNotFound.WithMessage(err.Error()))
	default:
		return response.Error(err)
	}
}

func listNotes(ctx *router.Context, s store, q *listQuery) handler.Response {
	if q == nil {
		q = &listQuery{}
	}
	return response.JSON(s.list(q.Tag, q.Limit))
}

func createNote(ctx *router.Context, s store, id middleware.ID, who *caller, req createNoteRequest) handler.Response {
	if strings.TrimSpace(req.Title) == "" {
		return response.Error(response.ErrUnprocessableEntity.WithMessage("title is required"))
	}

	n := note{
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		RequestID: id.String(),
	}
	if who != nil {
		n.Author = who.Name
	}
	return response.JSONWithStatus(s.create(n), http.StatusCreated)
}

func getNote(ctx *router.Context, s store, p extract.Tuple1[uuid.UUID]) handler.Response {
	n, err := s.get(p.V1)
	if err != nil {
		return storeErr(err)
	}
	return response.JSON(n)
}

func deleteNote(ctx *router.Context, s store, p extract.Tuple1[uuid.UUID]) handler.Response {
	if err := s.delete(p.V1); err != nil {
		return storeErr(err)
	}
	return response.NoContent()
}

func renameNote(ctx *router.Context, s store, p extract.Tuple1[uuid.UUID], title string) handler.Response {
	if strings.TrimSpace(title) == "" {
		return response.Error(response.ErrUnprocessableEntity.WithMessage("title is required"))
	}
	n, err := s.update(p.V1, func(n *note) { n.Title = title })
	if err != nil {
		return storeErr(err)
	}
	return response.JSON(n)
}

func uploadAttachment(ctx *router.Context, s store, p extract.Tuple1[uuid.UUID], data []byte) handler.Response {
	n, err := s.update(p.V1, func(n *note) { n.Attachment = len(data) })
	if err != nil {
		return storeErr(err)
	}
	return response.JSON(n)
}

func getTag(ctx *router.Context, s store, p extract.Tuple2[uuid.UUID, int]) handler.Response {
	id, index := p.Unpack()
	tag, err := s.tag(id, index)
	if err != nil {
		return storeErr(err)
	}
	return response.String(tag)
}

func whoami(ctx *router.Context, who caller) handler.Response {
	return response.String(who.Name)
}

// echo streams the request body back without buffering it.
func echo(ctx *router.Context, body io.ReadCloser) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		defer body.Close()
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		_, err := io.Copy(w, body)
		return err
	}
}

func countBytes(ctx *router.Context, data []byte) handler.Response {
	return response.JSON(map[string]int{"bytes": len(data)})
}

type paramView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func debugParams(ctx *router.Context, p *extract.Params) handler.Response {
	out := make([]paramView, 0, p.Len())
	for _, param := range p.All() {
		out = append(out, paramView{Name: param.Name, Value: param.Value})
	}
	return response.JSON(out)
}
