package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(4, 5, DefaultNullValue)
	if v := M.Value(1, 1); v != M.NullValue() {
		t.Errorf("expected empty matrix to return null value, got %d", v)
	}
	if old := M.Set(2, 3, 7); old != M.NullValue() {
		t.Errorf("expected previous value of (2,3) to be null, is %d", old)
	}
	M.Set(0, 4, 1)
	M.Set(3, 0, 2)
	M.Set(2, 1, 3)
	if v := M.Value(2, 3); v != 7 {
		t.Errorf("expected M(2,3) = 7, is %d", v)
	}
	if old := M.Set(2, 3, 8); old != 7 {
		t.Errorf("expected Set to return previous value 7, returned %d", old)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values in matrix, have %d", M.ValueCount())
	}
}

func TestMatrixOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 2, 22)
	M.Set(0, 1, 1)
	M.Set(1, 0, 10)
	M.Set(0, 0, 0)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		if int32(i*10+j) != v {
			t.Errorf("value at (%d,%d) is %d", i, j, v)
		}
		seen = append(seen, v)
	})
	expected := []int32{0, 1, 10, 22}
	if len(seen) != len(expected) {
		t.Fatalf("expected %d values, have %d", len(expected), len(seen))
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("expected values in row-major order %v, have %v", expected, seen)
			break
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	M.Set(2, 0, 1)
}

func TestMatrixRow(t *testing.T) {
	M := NewIntMatrix(3, 4, DefaultNullValue)
	M.Set(1, 3, 13)
	M.Set(2, 0, 20)
	M.Set(1, 0, 10)
	M.Set(0, 2, 2)
	var cols []int
	M.Row(1, func(j int, v int32) {
		if int32(10+j) != v {
			t.Errorf("value at (1,%d) is %d", j, v)
		}
		cols = append(cols, j)
	})
	if len(cols) != 2 || cols[0] != 0 || cols[1] != 3 {
		t.Errorf("expected columns [0 3] in row 1, have %v", cols)
	}
	if !M.IsEmpty(1, 1) || M.IsEmpty(1, 3) {
		t.Errorf("IsEmpty reports wrong occupancy for row 1")
	}
	M.Row(3, func(j int, v int32) {
		t.Errorf("expected no values beyond last row")
	})
}
