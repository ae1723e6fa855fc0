package pool

import "testing"

func TestGetMapReturnsEmptyMap(t *testing.T) {
	m := GetMap()
	m["key"] = "value"
	PutMap(m)

	m2 := GetMap()
	if len(m2) != 0 {
		t.Errorf("pooled map should come back empty, got %v", m2)
	}
	PutMap(m2)
}

func TestGetSliceReturnsEmptySlice(t *testing.T) {
	s := GetSlice()
	s = append(s, 1, 2, 3)
	PutSlice(s)

	s2 := GetSlice()
	if len(s2) != 0 {
		t.Errorf("pooled slice should come back with zero length, got %v", s2)
	}
	PutSlice(s2)
}
