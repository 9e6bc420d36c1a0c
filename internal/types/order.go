package types

// OrderHandle is implemented by anything that can report which order it
// belongs to. Email payloads often wrap the order rather than passing a
// bare id.
type OrderHandle interface {
	OrderID() int
}

// OrderRef is the closed set of shapes callers may use to identify an order:
// a bare numeric id or a handle exposing an id accessor. The zero value is
// unresolvable.
type OrderRef struct {
	id     int
	handle OrderHandle
}

func OrderRefFromID(id int) OrderRef {
	return OrderRef{id: id}
}

func OrderRefFromHandle(h OrderHandle) OrderRef {
	return OrderRef{handle: h}
}

// Resolve returns the canonical order id. ok is false when the ref does not
// carry a usable id.
func (r OrderRef) Resolve() (int, bool) {
	if r.id > 0 {
		return r.id, true
	}
	if r.handle != nil {
		if id := r.handle.OrderID(); id > 0 {
			return id, true
		}
	}
	return 0, false
}
