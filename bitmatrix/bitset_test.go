package bitmatrix

import "testing"

func TestBitset_SetGetClear(t *testing.T) {
	b := newBitset(130)
	b.set(0)
	b.set(64)
	b.set(129)
	if !b.get(0) || !b.get(64) || !b.get(129) {
		t.Fatal("expected set bits to read back true")
	}
	if b.get(1) || b.get(128) {
		t.Fatal("expected unset bits to read back false")
	}
	b.clear(64)
	if b.get(64) {
		t.Fatal("expected cleared bit to read back false")
	}
}

func TestBitset_SetAllMasksTrailingBits(t *testing.T) {
	b := newBitset(70)
	b.setAll()
	for i := 0; i < 70; i++ {
		if !b.get(i) {
			t.Fatalf("bit %d expected set after setAll", i)
		}
	}
	// word count is ceil(70/64) = 2; bits 70..127 in the last word must be
	// masked off so isEmpty/setBits never see phantom bits.
	if len(b.words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(b.words))
	}
	if b.words[1]&^((uint64(1)<<6)-1) != 0 {
		t.Fatal("expected trailing bits beyond n to be masked")
	}
}

func TestBitset_OrSkipsEmptyWords(t *testing.T) {
	a := newBitset(128)
	b := newBitset(128)
	b.set(70)
	changed := a.or(&b)
	if !changed {
		t.Fatal("expected or to report a change")
	}
	if !a.get(70) {
		t.Fatal("expected bit 70 set after or")
	}
	if changed2 := a.or(&b); changed2 {
		t.Fatal("expected second or of identical bits to report no change")
	}
}

func TestBitset_SetBits(t *testing.T) {
	b := newBitset(200)
	b.set(3)
	b.set(64)
	b.set(199)
	got := b.setBits()
	want := []int{3, 64, 199}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestBitset_IsEmpty(t *testing.T) {
	b := newBitset(64)
	if !b.isEmpty() {
		t.Fatal("expected fresh bitset to be empty")
	}
	b.set(10)
	if b.isEmpty() {
		t.Fatal("expected bitset with a set bit to be non-empty")
	}
}

func TestBitset_Clone(t *testing.T) {
	b := newBitset(64)
	b.set(5)
	c := b.clone()
	c.set(6)
	if b.get(6) {
		t.Fatal("expected clone to be independent of source")
	}
	if !c.get(5) {
		t.Fatal("expected clone to carry source's bits")
	}
}
