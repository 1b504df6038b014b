package histdata

import "github.com/yanun0323/logs"

// Liner is implemented by entities that project to a field list in
// definition order.
type Liner interface {
	Strings() []string
}

// Listener persists every add event to a Writer. Write failures are
// logged and never propagate to the emitting service.
type Listener[V Liner] struct {
	writer *Writer
}

// NewListener creates a sink listener over a writer.
func NewListener[V Liner](writer *Writer) *Listener[V] {
	return &Listener[V]{writer: writer}
}

func (l *Listener[V]) ProcessAdd(v V) {
	if err := l.writer.Write(v.Strings()); err != nil {
		logs.Errorf("historical sink write failed: %+v", err)
	}
}

func (l *Listener[V]) ProcessUpdate(V) {}
func (l *Listener[V]) ProcessRemove(V) {}
