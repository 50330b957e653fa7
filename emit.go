package fractex

import "seehuhn.de/go/geom/vec"

// SampleRecord is one grid sample: its position and the metadata value
// produced by the kind's iteration (normalized count, or the raw
// exponent for Lyapunov).
type SampleRecord struct {
	Pos   vec.Vec2
	Value float64
}

// SampleEmitter consumes grid records in emission order. A non-nil error
// aborts sampling and is returned to the caller.
type SampleEmitter interface {
	EmitSample(SampleRecord) error
}

// PointEmitter consumes generated points in emission order.
type PointEmitter interface {
	EmitPoint(vec.Vec2) error
}

// SampleEmitterFunc adapts a function to the SampleEmitter interface.
type SampleEmitterFunc func(SampleRecord) error

func (f SampleEmitterFunc) EmitSample(r SampleRecord) error { return f(r) }

// PointEmitterFunc adapts a function to the PointEmitter interface.
type PointEmitterFunc func(vec.Vec2) error

func (f PointEmitterFunc) EmitPoint(p vec.Vec2) error { return f(p) }

// Buffer collects emitted records in order. The zero value is ready to
// use and implements both emitter interfaces.
type Buffer struct {
	Samples []SampleRecord
	Points  []vec.Vec2
}

func (b *Buffer) EmitSample(r SampleRecord) error {
	b.Samples = append(b.Samples, r)
	return nil
}

func (b *Buffer) EmitPoint(p vec.Vec2) error {
	b.Points = append(b.Points, p)
	return nil
}
