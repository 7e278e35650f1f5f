package ledger

import "testing"

func TestVersion(t *testing.T) {
	base := Version([]string{"e1", "e2"}, []string{"s1"})

	t.Run("order independent", func(t *testing.T) {
		if got := Version([]string{"e2", "e1"}, []string{"s1"}); got != base {
			t.Errorf("Version changed with input order: %s vs %s", got, base)
		}
	})

	t.Run("changes when a record is added", func(t *testing.T) {
		if got := Version([]string{"e1", "e2"}, []string{"s1", "s2"}); got == base {
			t.Error("Version unchanged after adding a settlement")
		}
	})

	t.Run("expense and settlement ids do not collide", func(t *testing.T) {
		a := Version([]string{"x"}, nil)
		b := Version(nil, []string{"x"})
		if a == b {
			t.Error("same id as expense and as settlement produced equal versions")
		}
	})

	t.Run("empty ledger has a stable version", func(t *testing.T) {
		if Version(nil, nil) != Version(nil, nil) {
			t.Error("empty ledger version not stable")
		}
	})
}
