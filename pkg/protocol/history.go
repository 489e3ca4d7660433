package protocol

import "fmt"

// FrameType identifies the direction-specific frame kinds.
type FrameType byte

const (
	// FrameHistory carries history operations, server to client.
	FrameHistory FrameType = 0x01

	// FrameEvent carries a browser event, client to server.
	FrameEvent FrameType = 0x02
)

// OpType is a history operation kind.
type OpType byte

const (
	OpPush    OpType = 0x01 // Push a new history entry
	OpReplace OpType = 0x02 // Replace the current entry
	OpGo      OpType = 0x03 // Move relatively through the stack
)

// String returns the operation name.
func (op OpType) String() string {
	switch op {
	case OpPush:
		return "Push"
	case OpReplace:
		return "Replace"
	case OpGo:
		return "Go"
	default:
		return "Unknown"
	}
}

// HistoryOp is a single history operation. Index and URL apply to Push and
// Replace; Delta applies to Go.
type HistoryOp struct {
	Op    OpType
	Index int
	URL   string
	Delta int
}

// NewPushOp builds a push operation.
func NewPushOp(index int, url string) HistoryOp {
	return HistoryOp{Op: OpPush, Index: index, URL: url}
}

// NewReplaceOp builds a replace operation.
func NewReplaceOp(index int, url string) HistoryOp {
	return HistoryOp{Op: OpReplace, Index: index, URL: url}
}

// NewGoOp builds a relative move operation.
func NewGoOp(delta int) HistoryOp {
	return HistoryOp{Op: OpGo, Delta: delta}
}

// EventType is a client-to-server browser event kind.
type EventType byte

const (
	// EventPop reports a popstate: the browser traversed to an entry.
	EventPop EventType = 0x01

	// EventLoad reports the initial page state on connect.
	EventLoad EventType = 0x02
)

// String returns the event name.
func (et EventType) String() string {
	switch et {
	case EventPop:
		return "Pop"
	case EventLoad:
		return "Load"
	default:
		return "Unknown"
	}
}

// Event is a browser event: the entry payload index and the location
// (path plus query) after the event.
type Event struct {
	Type     EventType
	Index    int
	Location string
}

// EncodeHistoryFrame encodes history operations into a FrameHistory frame.
func EncodeHistoryFrame(ops []HistoryOp) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameHistory))
	e.WriteUvarint(uint64(len(ops)))
	for _, op := range ops {
		e.WriteByte(byte(op.Op))
		switch op.Op {
		case OpPush, OpReplace:
			e.WriteSvarint(int64(op.Index))
			e.WriteString(op.URL)
		case OpGo:
			e.WriteSvarint(int64(op.Delta))
		}
	}
	return e.Bytes()
}

// EncodeEventFrame encodes a browser event into a FrameEvent frame.
func EncodeEventFrame(ev Event) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameEvent))
	e.WriteByte(byte(ev.Type))
	e.WriteSvarint(int64(ev.Index))
	e.WriteString(ev.Location)
	return e.Bytes()
}

// DecodeFrameType reads the leading frame type byte and returns the
// payload decoder.
func DecodeFrameType(data []byte) (FrameType, *Decoder, error) {
	d := NewDecoder(data)
	ft, err := d.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	return FrameType(ft), d, nil
}

// DecodeHistoryOps decodes the payload of a FrameHistory frame.
func DecodeHistoryOps(d *Decoder) ([]HistoryOp, error) {
	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	ops := make([]HistoryOp, 0, count)
	for i := uint64(0); i < count; i++ {
		opByte, err := d.ReadByte()
		if err != nil {
			return nil, err
		}
		op := HistoryOp{Op: OpType(opByte)}
		switch op.Op {
		case OpPush, OpReplace:
			idx, err := d.ReadSvarint()
			if err != nil {
				return nil, err
			}
			op.Index = int(idx)
			op.URL, err = d.ReadString()
			if err != nil {
				return nil, err
			}
		case OpGo:
			delta, err := d.ReadSvarint()
			if err != nil {
				return nil, err
			}
			op.Delta = int(delta)
		default:
			return nil, fmt.Errorf("protocol: unknown history op 0x%02x", opByte)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// DecodeEvent decodes the payload of a FrameEvent frame.
func DecodeEvent(d *Decoder) (Event, error) {
	var ev Event
	et, err := d.ReadByte()
	if err != nil {
		return ev, err
	}
	ev.Type = EventType(et)
	if ev.Type != EventPop && ev.Type != EventLoad {
		return ev, fmt.Errorf("protocol: unknown event type 0x%02x", et)
	}
	idx, err := d.ReadSvarint()
	if err != nil {
		return ev, err
	}
	ev.Index = int(idx)
	ev.Location, err = d.ReadString()
	if err != nil {
		return ev, err
	}
	return ev, nil
}
