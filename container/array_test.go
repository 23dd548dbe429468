package container

import "testing"

func TestListAddAndClear(t *testing.T) {
	list := NewList[int32](2)
	list.Add(1)
	list.Add(2)
	if list.Length() != 2 {
		t.Fatalf("expected length 2, got %d", list.Length())
	}
	list.Clear()
	if list.Length() != 0 {
		t.Fatalf("expected length 0 after Clear, got %d", list.Length())
	}
}

func TestContains(t *testing.T) {
	list := NewList[int32](3)
	list.Add(5)
	list.Add(9)
	if !Contains(list, 9) {
		t.Fatalf("expected list to contain 9")
	}
	if Contains(list, 42) {
		t.Fatalf("expected list to not contain 42")
	}
}

func TestFlagsResetRestoresZero(t *testing.T) {
	flags := NewFlags[int32](3, -1)
	*flags.Get(1) = 7
	flags.Reset()
	if *flags.Get(1) != -1 {
		t.Fatalf("expected Reset to restore zero value, got %d", *flags.Get(1))
	}
}
