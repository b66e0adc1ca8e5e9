package wipe

import "testing"

func TestHaveToVerifyNo(t *testing.T) {
	task := &Task{Verify: VerifyNo}
	for i := 0; i < 3; i++ {
		if task.HaveToVerify(i, 3) {
			t.Fatalf("stage %d: VerifyNo should never require verification", i)
		}
	}
}

func TestHaveToVerifyLastOnlyFinalStage(t *testing.T) {
	task := &Task{Verify: VerifyLast}
	if task.HaveToVerify(0, 3) || task.HaveToVerify(1, 3) {
		t.Fatal("VerifyLast should not require verification before the final stage")
	}
	if !task.HaveToVerify(2, 3) {
		t.Fatal("VerifyLast should require verification on the final stage")
	}
}

func TestHaveToVerifyAllEveryStage(t *testing.T) {
	task := &Task{Verify: VerifyAll}
	for i := 0; i < 3; i++ {
		if !task.HaveToVerify(i, 3) {
			t.Fatalf("stage %d: VerifyAll should always require verification", i)
		}
	}
}

func TestVerifyString(t *testing.T) {
	cases := map[Verify]string{VerifyNo: "no", VerifyLast: "last", VerifyAll: "all"}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("Verify(%d).String() = %q, want %q", v, got, want)
		}
	}
}

func TestNewTaskRejectsNonPositiveBlockSize(t *testing.T) {
	if _, err := NewTask(zeroScheme(t), VerifyNo, 100, 0); err == nil {
		t.Fatal("expected an error for a zero block size")
	}
}
