package session

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func picFrame(rtc uint32, index, total byte, payload []byte) []byte {
	frame := []byte{'@', 'R'}
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], rtc)
	hdr[4] = index
	hdr[5] = total
	binary.BigEndian.PutUint16(hdr[6:8], uint16(len(payload)))
	frame = append(frame, hdr[:]...)
	return append(frame, payload...)
}

func TestParsePicturePacket(t *testing.T) {
	pkt, err := parsePicturePacket(picFrame(1724400000, 2, 3, []byte{0xAA, 0xBB}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pkt.rtc != 1724400000 || pkt.index != 2 || pkt.total != 3 || pkt.declared != 2 {
		t.Errorf("header = %+v", pkt)
	}
	if !bytes.Equal(pkt.payload, []byte{0xAA, 0xBB}) {
		t.Errorf("payload = %x", pkt.payload)
	}

	if _, err := parsePicturePacket([]byte{'@', 'R', 0x00}); err == nil {
		t.Error("short packet should fail to parse")
	}
}

func TestPictureReassembly(t *testing.T) {
	chunks := [][]byte{[]byte("one-"), []byte("two-"), []byte("three")}

	pkt1, _ := parsePicturePacket(picFrame(42, 1, 3, chunks[0]))
	tr := newPictureTransfer(777, pkt1)
	if tr.Done() {
		t.Fatal("transfer done after 1 of 3 packets")
	}

	pkt2, _ := parsePicturePacket(picFrame(42, 2, 3, chunks[1]))
	tr.apply(pkt2)
	if tr.Done() {
		t.Fatal("transfer done after 2 of 3 packets")
	}

	pkt3, _ := parsePicturePacket(picFrame(42, 3, 3, chunks[2]))
	tr.apply(pkt3)
	if !tr.Done() {
		t.Fatal("transfer not done after final packet")
	}

	if got, want := string(tr.Data), "one-two-three"; got != want {
		t.Errorf("assembled payload = %q, want %q", got, want)
	}
	if tr.DeviceID != 777 || tr.RTC != 42 {
		t.Errorf("transfer identity = %d/%d", tr.DeviceID, tr.RTC)
	}
}

func TestPictureSinglePacketTransfer(t *testing.T) {
	pkt, _ := parsePicturePacket(picFrame(7, 1, 1, []byte{0xFF}))
	tr := newPictureTransfer(1, pkt)
	if !tr.Done() {
		t.Error("single-packet transfer should complete immediately")
	}
}
