// Package timeid issues time-ordered unique identifiers for telemetry rows.
//
// An identifier packs a client-supplied millisecond timestamp into the high
// bits of a snowflake.ID, so identifiers sort by timestamp. A node id and a
// rolling sequence fill the low bits so that identifiers issued for the same
// millisecond stay distinct, with a stable order matching issue order.
package timeid

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

const (
	nodeBits = 10
	stepBits = 12

	nodeMax  = -1 ^ (-1 << nodeBits)
	stepMask = -1 ^ (-1 << stepBits)

	timeShift = nodeBits + stepBits
	nodeShift = stepBits
)

// Generator derives identifiers from caller-supplied timestamps. Each
// process (or writer) should run with a distinct node id so concurrent
// inserts from different processes cannot collide. Safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	node int64
	step int64
}

func NewGenerator(node int64) (*Generator, error) {
	if node < 0 || node > nodeMax {
		return nil, fmt.Errorf("timeid: node id must be between 0 and %d", nodeMax)
	}
	return &Generator{node: node}, nil
}

// Next derives an identifier from a millisecond timestamp. Identifiers for
// the same timestamp differ in their sequence component; the sequence wraps
// after 4096 issued ids.
func (g *Generator) Next(ms int64) snowflake.ID {
	g.mu.Lock()
	step := g.step
	g.step = (g.step + 1) & stepMask
	g.mu.Unlock()

	return snowflake.ID(ms<<timeShift | g.node<<nodeShift | step)
}

// Timestamp recovers the millisecond timestamp an identifier was derived
// from.
func Timestamp(id snowflake.ID) int64 {
	return int64(id) >> timeShift
}
