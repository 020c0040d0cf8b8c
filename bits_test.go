package huffpack

import (
	"testing"
)

func TestBits_Append(t *testing.T) {
	b := Bits{}.Append(true).Append(false).Append(true)

	if b.Len() != 3 {
		t.Errorf("expected 3 bits, got %d", b.Len())
	}
	if b.Data() != 0xa0000000 {
		t.Errorf("expected data 0xa0000000, got %#08x", b.Data())
	}
	if b.Value() != 5 {
		t.Errorf("expected value 5, got %d", b.Value())
	}

	expectString := "\"101\""
	actualString := b.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestBits_AppendIsImmutable(t *testing.T) {
	a := Bits{}.Append(false)
	b := a.Append(true)
	c := a.Append(false)

	if a.String() != "\"0\"" {
		t.Errorf("original value changed: %s", a)
	}
	if b.String() != "\"01\"" {
		t.Errorf("expected \"01\", got %s", b)
	}
	if c.String() != "\"00\"" {
		t.Errorf("expected \"00\", got %s", c)
	}
}

func TestBits_AppendFull(t *testing.T) {
	b := MakeBits(MaxBits, 0)
	defer func() {
		if recover() == nil {
			t.Errorf("expected Append on a full Bits to panic")
		}
	}()
	_ = b.Append(true)
}

func TestMakeBits(t *testing.T) {
	type testRow struct {
		size   byte
		data   uint32
		expect string
	}

	testData := [...]testRow{
		{size: 0, data: 0xffffffff, expect: "\"\""},
		{size: 1, data: 0x80000000, expect: "\"1\""},
		{size: 3, data: 0xffffffff, expect: "\"111\""},
		{size: 4, data: 0x50000000, expect: "\"0101\""},
		{size: 32, data: 0x00000001, expect: "\"00000000000000000000000000000001\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			b := MakeBits(row.size, row.data)
			if b.String() != row.expect {
				t.Errorf("expected %s, got %s", row.expect, b)
			}
			if b.Len() != row.size {
				t.Errorf("expected size %d, got %d", row.size, b.Len())
			}
		})
	}
}

func TestByteBits(t *testing.T) {
	b := ByteBits('t')
	if b.String() != "\"01110100\"" {
		t.Errorf("expected \"01110100\", got %s", b)
	}
	for i, expect := range []bool{false, true, true, true, false, true, false, false} {
		if actual := b.Bit(byte(i)); actual != expect {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}
}

func TestBits_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a, b   Bits
		expect bool
	}

	testData := [...]testRow{
		{a: MakeBits(0, 0), b: MakeBits(2, 0x40000000), expect: true},
		{a: MakeBits(1, 0), b: MakeBits(2, 0x40000000), expect: true},
		{a: MakeBits(1, 0x80000000), b: MakeBits(2, 0x40000000), expect: false},
		{a: MakeBits(2, 0x40000000), b: MakeBits(2, 0x40000000), expect: true},
		{a: MakeBits(3, 0x40000000), b: MakeBits(2, 0x40000000), expect: false},
	}
	for _, row := range testData {
		t.Run(row.a.String()+" "+row.b.String(), func(t *testing.T) {
			if actual := row.a.IsPrefixOf(row.b); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
