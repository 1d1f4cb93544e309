package charset

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func TestDecoderString(t *testing.T) {
	enc, ok := For(437)
	if !ok {
		t.Fatal("cp437 should be available")
	}
	got, err := enc.NewDecoder().String("\xFB\xAC=\xAB")
	if err != nil {
		t.Fatal(err)
	}
	if got != "√¼=½" {
		t.Fatalf("decode mismatch: got %q, want %q", got, "√¼=½")
	}
}

func TestDecoderReplacesUndefined(t *testing.T) {
	enc, _ := For(874)
	got, err := enc.NewDecoder().String("0\xDB1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "0�1" {
		t.Fatalf("decode mismatch: got %q, want %q", got, "0�1")
	}
}

func TestEncoderString(t *testing.T) {
	enc, _ := For(437)
	got, err := enc.NewEncoder().String("π≈22/7")
	if err != nil {
		t.Fatal(err)
	}
	if got != "\xE3\xF722/7" {
		t.Fatalf("encode mismatch: got %q, want %q", got, "\xE3\xF722/7")
	}
}

func TestEncoderRepertoireError(t *testing.T) {
	enc, _ := For(437)
	_, err := enc.NewEncoder().String("½+¼=¾")
	if err == nil {
		t.Fatal("¾ is not in cp437, encoding should fail")
	}
	rerr, ok := err.(RepertoireError)
	if !ok {
		t.Fatalf("expected a RepertoireError, got %T", err)
	}
	if rerr.Replacement() != '?' {
		t.Fatalf("replacement byte should be '?', is 0x%02X", rerr.Replacement())
	}
}

func TestEncoderReplaceUnsupported(t *testing.T) {
	enc, _ := For(437)
	got, err := encoding.ReplaceUnsupported(enc.NewEncoder()).String("½+¼=¾")
	if err != nil {
		t.Fatal(err)
	}
	if got != "\xAB+\xAC=?" {
		t.Fatalf("encode mismatch: got %q, want %q", got, "\xAB+\xAC=?")
	}
}

func TestEncoderInvalidUTF8(t *testing.T) {
	enc, _ := For(437)
	got, err := encoding.ReplaceUnsupported(enc.NewEncoder()).String("a\xFFb")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a?b" {
		t.Fatalf("encode mismatch: got %q, want %q", got, "a?b")
	}
}

func TestEncoderShortSrc(t *testing.T) {
	enc, _ := For(437)
	half := []byte("½")[:1]
	var dst [8]byte
	nDst, nSrc, err := enc.NewEncoder().Transform(dst[:], half, false)
	if err != transform.ErrShortSrc {
		t.Fatalf("expected ErrShortSrc on a split rune, got %v", err)
	}
	if nDst != 0 || nSrc != 0 {
		t.Fatalf("split rune should not be consumed, got nDst=%d nSrc=%d", nDst, nSrc)
	}
}

func TestTransformReader(t *testing.T) {
	enc, _ := For(866)
	r := transform.NewReader(bytes.NewReader([]byte{0x92, 0xA5, 0xAA, 0xE1, 0xE2}), enc.NewDecoder())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Текст" {
		t.Fatalf("stream decode mismatch: got %q, want %q", got, "Текст")
	}
}

func TestTransformWriter(t *testing.T) {
	enc, _ := For(850)
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, enc.NewEncoder())
	if _, err := io.WriteString(w, "Ações"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := []byte{'A', 0x87, 0xE4, 'e', 's'}
	if !reflect.DeepEqual(buf.Bytes(), want) {
		t.Fatalf("stream encode mismatch: got %v, want %v", buf.Bytes(), want)
	}
}

func TestByName(t *testing.T) {
	enc, ok := ByName("OEM-US")
	if !ok || enc.Codepage() != 437 {
		t.Fatalf("OEM-US should be cp437, got %v ok=%v", enc, ok)
	}
	if enc.Name() != "cp437" {
		t.Fatalf("name should be cp437, is %s", enc.Name())
	}
	if _, ok := ByName("latin1"); ok {
		t.Fatal("latin1 should not resolve")
	}
}

func TestForUnknown(t *testing.T) {
	if _, ok := For(720); ok {
		t.Fatal("cp720 should not be available")
	}
}
