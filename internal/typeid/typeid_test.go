package typeid

import (
	"strings"
	"testing"
)

func TestNewIDsCarryPrefix(t *testing.T) {
	cases := []struct {
		id     string
		prefix string
	}{
		{NewUserID(), PrefixUser},
		{NewBoardID(), PrefixBoard},
		{NewShapeID(), PrefixShape},
		{NewSnapshotID(), PrefixSnapshot},
		{NewSessionID(), PrefixSession},
	}

	for _, c := range cases {
		if !strings.HasPrefix(c.id, c.prefix+"_") {
			t.Errorf("expected prefix %q, got %q", c.prefix, c.id)
		}
		if err := Validate(c.id, c.prefix); err != nil {
			t.Errorf("validate failed for %q: %v", c.id, err)
		}
	}
}

func TestValidateRejectsWrongPrefix(t *testing.T) {
	if err := Validate(NewUserID(), PrefixBoard); err == nil {
		t.Errorf("expected a prefix mismatch error")
	}
}

func TestValidateRejectsMalformedID(t *testing.T) {
	if err := Validate("not a typeid", PrefixUser); err == nil {
		t.Errorf("expected a parse error")
	}
}
