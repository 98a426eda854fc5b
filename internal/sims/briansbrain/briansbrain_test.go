package briansbrain

import "testing"

func TestCellCycle(t *testing.T) {
	b := New(6, 6)
	w := b.Size().W
	b.Cells()[2*w+2] = stateOn
	b.Cells()[2*w+3] = stateOn

	b.Step()
	f := b.Field()
	if f[2*w+2] != valueDying || f[2*w+3] != valueDying {
		t.Fatalf("firing cells did not start dying: %v %v", f[2*w+2], f[2*w+3])
	}
	// (2,1) and (3,1) each see both firing cells.
	if f[1*w+2] != valueOn || f[1*w+3] != valueOn {
		t.Fatalf("cells with two firing neighbours did not fire")
	}

	b.Step()
	f = b.Field()
	if f[2*w+2] != 0 || f[2*w+3] != 0 {
		t.Fatal("dying cells did not die")
	}
}

func TestFromMapDefaults(t *testing.T) {
	if size := FromMap(nil); size.W != 128 || size.H != 128 {
		t.Fatalf("FromMap(nil) = %+v", size)
	}
	if size := FromMap(map[string]string{"w": "30"}); size.W != 30 || size.H != 128 {
		t.Fatalf("FromMap = %+v", size)
	}
}
