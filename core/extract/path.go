package extract

// Tuple types hold positional path parameters. Path1..Path6 fill them from the
// matched route; the number of route parameters must equal the tuple arity.

// Tuple1 holds one path parameter.
type Tuple1[A any] struct {
	V1 A
}

// Unpack returns the element.
func (t Tuple1[A]) Unpack() A { return t.V1 }

// Tuple2 holds two path parameters.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Unpack returns the elements in order.
func (t Tuple2[A, B]) Unpack() (A, B) { return t.V1, t.V2 }

// Tuple3 holds three path parameters.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Unpack returns the elements in order.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) { return t.V1, t.V2, t.V3 }

// Tuple4 holds four path parameters.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Unpack returns the elements in order.
func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V1, t.V2, t.V3, t.V4 }

// Tuple5 holds five path parameters.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Unpack returns the elements in order.
func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

// Tuple6 holds six path parameters.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Unpack returns the elements in order.
func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

// positional parses one raw segment into its tuple element.
type positional func(raw string) Rejection

func elem[T any](dst *T) positional {
	return func(raw string) Rejection {
		if !parseParam(raw, dst) {
			return InvalidURLParam{TypeName: typeName[T]()}
		}
		return nil
	}
}

// extractPositional takes the url params and parses them into elems, stopping
// at the first failure. Rejections are boxed.
func extractPositional(r *Request, elems ...positional) Rejection {
	params, rej := r.TakeURLParams()
	if rej != nil {
		return Box(rej)
	}
	if len(params) != len(elems) {
		return Box(MissingRouteParams{})
	}
	for i, parse := range elems {
		if rej := parse(params[i].Value); rej != nil {
			return Box(rej)
		}
	}
	return nil
}

// Path1 extracts a single path parameter.
func Path1[A any]() Extractor[Tuple1[A]] {
	return func(r *Request) (Tuple1[A], Rejection) {
		var t Tuple1[A]
		if rej := extractPositional(r, elem(&t.V1)); rej != nil {
			return Tuple1[A]{}, rej
		}
		return t, nil
	}
}

// Path2 extracts two path parameters.
func Path2[A, B any]() Extractor[Tuple2[A, B]] {
	return func(r *Request) (Tuple2[A, B], Rejection) {
		var t Tuple2[A, B]
		if rej := extractPositional(r, elem(&t.V1), elem(&t.V2)); rej != nil {
			return Tuple2[A, B]{}, rej
		}
		return t, nil
	}
}

// Path3 extracts three path parameters.
func Path3[A, B, C any]() Extractor[Tuple3[A, B, C]] {
	return func(r *Request) (Tuple3[A, B, C], Rejection) {
		var t Tuple3[A, B, C]
		if rej := extractPositional(r, elem(&t.V1), elem(&t.V2), elem(&t.V3)); rej != nil {
			return Tuple3[A, B, C]{}, rej
		}
		return t, nil
	}
}

// Path4 extracts four path parameters.
func Path4[A, B, C, D any]() Extractor[Tuple4[A, B, C, D]] {
	return func(r *Request) (Tuple4[A, B, C, D], Rejection) {
		var t Tuple4[A, B, C, D]
		rej := extractPositional(r,
			elem(&t.V1), elem(&t.V2), elem(&t.V3), elem(&t.V4))
		if rej != nil {
			return Tuple4[A, B, C, D]{}, rej
		}
		return t, nil
	}
}

// Path5 extracts five path parameters.
func Path5[A, B, C, D, E any]() Extractor[Tuple5[A, B, C, D, E]] {
	return func(r *Request) (Tuple5[A, B, C, D, E], Rejection) {
		var t Tuple5[A, B, C, D, E]
		rej := extractPositional(r,
			elem(&t.V1), elem(&t.V2), elem(&t.V3), elem(&t.V4), elem(&t.V5))
		if rej != nil {
			return Tuple5[A, B, C, D, E]{}, rej
		}
		return t, nil
	}
}

// Path6 extracts six path parameters.
func Path6[A, B, C, D, E, F any]() Extractor[Tuple6[A, B, C, D, E, F]] {
	return func(r *Request) (Tuple6[A, B, C, D, E, F], Rejection) {
		var t Tuple6[A, B, C, D, E, F]
		rej := extractPositional(r,
			elem(&t.V1), elem(&t.V2), elem(&t.V3), elem(&t.V4), elem(&t.V5), elem(&t.V6))
		if rej != nil {
			return Tuple6[A, B, C, D, E, F]{}, rej
		}
		return t, nil
	}
}
