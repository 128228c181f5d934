package session

import (
	"encoding/binary"
	"fmt"
)

// PictureStore persists a completed image transfer. Implementations must be
// safe for concurrent use across connections.
type PictureStore interface {
	StorePicture(deviceID uint64, rtc uint32, data []byte) error
}

// picturePacket is one "@R" frame after the 2-byte prefix: 4-byte device
// RTC, 1-byte current package index, 1-byte total package count, 2-byte
// declared package size, remainder payload chunk.
type picturePacket struct {
	rtc      uint32
	index    int
	total    int
	declared int
	payload  []byte
}

const pictureHeaderLen = 8

func parsePicturePacket(frame []byte) (*picturePacket, error) {
	if len(frame) < 2+pictureHeaderLen {
		return nil, fmt.Errorf("picture packet too short: %d bytes", len(frame))
	}
	b := frame[2:]
	return &picturePacket{
		rtc:      binary.BigEndian.Uint32(b[0:4]),
		index:    int(b[4]),
		total:    int(b[5]),
		declared: int(binary.BigEndian.Uint16(b[6:8])),
		payload:  b[pictureHeaderLen:],
	}, nil
}

// PictureTransfer accumulates one in-progress image for a connection. The
// first packet seeds it; each later packet appends its chunk and advances
// the last-seen index. Packets are assumed in order, no gap detection.
type PictureTransfer struct {
	DeviceID   uint64
	RTC        uint32
	Data       []byte
	LastIndex  int
	TotalCount int
}

func newPictureTransfer(deviceID uint64, pkt *picturePacket) *PictureTransfer {
	return &PictureTransfer{
		DeviceID:   deviceID,
		RTC:        pkt.rtc,
		Data:       append([]byte{}, pkt.payload...),
		LastIndex:  pkt.index,
		TotalCount: pkt.total,
	}
}

func (t *PictureTransfer) apply(pkt *picturePacket) {
	t.Data = append(t.Data, pkt.payload...)
	t.LastIndex = pkt.index
}

// Done reports whether the last applied packet was the declared final one.
func (t *PictureTransfer) Done() bool {
	return t.LastIndex == t.TotalCount
}
