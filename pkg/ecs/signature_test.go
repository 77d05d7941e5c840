package ecs

import "testing"

func TestSignatureSetClearTest(t *testing.T) {
	var s Signature

	s = s.Set(0).Set(5).Set(31)
	for _, id := range []ComponentID{0, 5, 31} {
		if !s.Test(id) {
			t.Errorf("bit %d should be set", id)
		}
	}
	if s.Test(1) {
		t.Error("bit 1 should not be set")
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}

	s = s.Clear(5)
	if s.Test(5) {
		t.Error("bit 5 should be cleared")
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}

func TestSignatureOutOfRangeIgnored(t *testing.T) {
	var s Signature

	// 超出位宽的 ID 不会写入签名
	s = s.Set(MaxComponents).Set(-1)
	if !s.IsEmpty() {
		t.Errorf("out of range bits should be ignored, got %s", s)
	}
	if s.Test(MaxComponents) {
		t.Error("Test() on out of range bit should be false")
	}
}

func TestSignatureMatches(t *testing.T) {
	tests := []struct {
		name     string
		entity   Signature
		required Signature
		want     bool
	}{
		{"完全相同", 0b110, 0b110, true},
		{"实体多出组件", 0b111, 0b110, true},
		{"缺少一个组件", 0b100, 0b110, false},
		{"系统无要求", 0b101, 0, true},
		{"空实体", 0, 0b1, false},
		{"不相交", 0b001, 0b110, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Matches(tt.required); got != tt.want {
				t.Errorf("%s.Matches(%s) = %v, want %v", tt.entity, tt.required, got, tt.want)
			}
		})
	}
}

// TestSignatureMatchesGrowth 增加组件只会增加匹配，不会减少
func TestSignatureMatchesGrowth(t *testing.T) {
	required := Signature(0).Set(2).Set(7)

	var entity Signature
	matched := false
	for id := ComponentID(0); id < MaxComponents; id++ {
		entity = entity.Set(id)
		got := entity.Matches(required)
		if matched && !got {
			t.Fatalf("adding component %d removed an existing match", id)
		}
		if got != ((entity & required) == required) {
			t.Fatalf("Matches disagrees with (E & S) == S at id %d", id)
		}
		matched = got
	}
	if !matched {
		t.Error("entity with every component should match")
	}
}

func TestSignatureString(t *testing.T) {
	s := Signature(0).Set(0).Set(3)
	want := "00000000000000000000000000001001"
	if s.String() != want {
		t.Errorf("String() = %s, want %s", s.String(), want)
	}
}
