package registry

import (
	"image"
	"testing"
)

func solid(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-solid", "Solid", solid)

	if !Exists("test-solid") {
		t.Fatal("Exists() = false after Register")
	}
	if Title("test-solid") != "Solid" {
		t.Errorf("Title() = %q, expected Solid", Title("test-solid"))
	}

	img, err := Create("test-solid", 12, 7)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("Create() bounds = %v, expected 12x7", b)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-solid" {
			found = info.Title == "Solid"
		}
	}
	if !found {
		t.Error("List() should include the registered picture")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-picture", 10, 10); err == nil {
		t.Error("Create() of unknown picture should fail")
	}

	Register("test-empty", "Empty", solid)
	if _, err := Create("test-empty", 0, 10); err == nil {
		t.Error("Create() with zero width should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", solid)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup again", solid)
}

func TestListSorted(t *testing.T) {
	Register("test-zz", "ZZ", solid)
	Register("test-aa", "AA", solid)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	if got := Title("unregistered"); got != "unregistered" {
		t.Errorf("Title() = %q, expected the ID", got)
	}
}
