// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import "encoding/binary"

// Action identifies the side of an order.
type Action uint8

const (
	// ActionBuy marks a buy order.
	ActionBuy Action = 1
	// ActionSell marks a sell order.
	ActionSell Action = 2
)

// OrderMsgSize is the packed wire size of an OrderMsg: ts_qpc(8) +
// seq(8) + action(1) + padding(3) + qty(4) + symbol(16).
const OrderMsgSize = 8 + 8 + 1 + 3 + 4 + 16

// OrderMsg is the benchmark payload: a packed fixed-layout record.
//
// This is the hot-path wire record the ring carries between the producer
// and consumer benchmark goroutines. It is not the JSON order payload a
// brokerage REST client would send
// ({"symbol","qty","side","type","time_in_force"[,"limit_price"]}) —
// that translation is out of scope here; OrderMsg only needs to
// round-trip through the ring.
type OrderMsg struct {
	TSQPC  uint64 // producer timestamp at enqueue, nanoseconds
	Seq    uint64 // monotonic sequence number
	Action Action
	Qty    uint32
	Symbol [16]byte // NUL-terminated unless all 16 bytes are used
}

// PutSymbol copies s into Symbol, truncating it to 16 bytes. A shorter s
// is followed by a NUL; an s of 16 bytes or more fills Symbol with no
// terminator.
func (m *OrderMsg) PutSymbol(s string) {
	n := copy(m.Symbol[:], s)
	if n < len(m.Symbol) {
		m.Symbol[n] = 0
	}
}

// SymbolString returns Symbol up to its first NUL byte.
func (m *OrderMsg) SymbolString() string {
	for i, b := range m.Symbol {
		if b == 0 {
			return string(m.Symbol[:i])
		}
	}
	return string(m.Symbol[:])
}

// Encode writes m's packed representation into dst, which must be at
// least OrderMsgSize bytes.
func (m *OrderMsg) Encode(dst []byte) {
	_ = dst[OrderMsgSize-1]
	binary.LittleEndian.PutUint64(dst[0:], m.TSQPC)
	binary.LittleEndian.PutUint64(dst[8:], m.Seq)
	dst[16] = byte(m.Action)
	dst[17], dst[18], dst[19] = 0, 0, 0
	binary.LittleEndian.PutUint32(dst[20:], m.Qty)
	copy(dst[24:24+16], m.Symbol[:])
}

// DecodeOrderMsg reads a packed OrderMsg from src, which must be at
// least OrderMsgSize bytes.
func DecodeOrderMsg(src []byte) OrderMsg {
	_ = src[OrderMsgSize-1]
	var m OrderMsg
	m.TSQPC = binary.LittleEndian.Uint64(src[0:])
	m.Seq = binary.LittleEndian.Uint64(src[8:])
	m.Action = Action(src[16])
	m.Qty = binary.LittleEndian.Uint32(src[20:])
	copy(m.Symbol[:], src[24:24+16])
	return m
}
