package klv

import (
	"bytes"
	"testing"
)

func sampleKey() [KeyLength]byte {
	var k [KeyLength]byte
	for i := range k {
		k[i] = byte(i + 1)
	}
	return k
}

func TestGlobalContainer_roundTrip(t *testing.T) {
	key := sampleKey()
	content := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	var buf bytes.Buffer
	n, err := WriteGlobal(&buf, key, content)
	if err != nil {
		t.Fatalf("WriteGlobal: %v", err)
	}
	if n != buf.Len() {
		t.Fatalf("WriteGlobal returned %d, but buffer holds %d bytes", n, buf.Len())
	}
	if want := EncodedGlobalLen(len(content)); n != want {
		t.Fatalf("WriteGlobal returned %d, EncodedGlobalLen says %d", n, want)
	}

	g, err := TryViewGlobal(buf.Bytes())
	if err != nil {
		t.Fatalf("TryViewGlobal: %v", err)
	}
	if !g.KeyEquals(key) {
		t.Fatalf("KeyEquals: keys do not match")
	}
	got, err := g.TryContent()
	if err != nil {
		t.Fatalf("TryContent: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content round trip: got % X, want % X", got, content)
	}
}

func TestTryViewGlobal_tooShort(t *testing.T) {
	if _, err := TryViewGlobal(make([]byte, 10)); err == nil {
		t.Fatalf("want error for undersized buffer")
	}
}

func TestGlobalContainer_contentLongerThanBuffer(t *testing.T) {
	key := sampleKey()
	buf := append([]byte{}, key[:]...)
	buf = append(buf, 0x05) // claims 5 content bytes but none follow
	g, err := TryViewGlobal(buf)
	if err != nil {
		t.Fatalf("TryViewGlobal: %v", err)
	}
	if _, err := g.TryContent(); err == nil {
		t.Fatalf("want error when declared content runs past buffer")
	}
}

func TestGlobalContainer_longFormLength(t *testing.T) {
	key := sampleKey()
	content := make([]byte, 300)
	for i := range content {
		content[i] = byte(i)
	}
	var buf bytes.Buffer
	if _, err := WriteGlobal(&buf, key, content); err != nil {
		t.Fatalf("WriteGlobal: %v", err)
	}
	g, err := TryViewGlobal(buf.Bytes())
	if err != nil {
		t.Fatalf("TryViewGlobal: %v", err)
	}
	got, err := g.TryContent()
	if err != nil {
		t.Fatalf("TryContent: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("long-form content mismatch")
	}
}
