package middleware

import "testing"

func TestValidKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"F47AC10B-58CC-4372-A567-0E02B2C3D479", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", true}, // uuid.Parse takes undashed hex too
		{"not-a-key", false},
		{"", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 31 chars
	}
	for _, tc := range cases {
		if got := validKey(tc.key); got != tc.want {
			t.Errorf("validKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/loans/:id/payment", "k1")
	if got != "idemp:post:/loans/:id/payment:k1" {
		t.Fatalf("buildKey = %q", got)
	}
}

func TestBodyHashStable(t *testing.T) {
	a := bodyHash([]byte(`{"amount":1}`))
	b := bodyHash([]byte(`{"amount":1}`))
	c := bodyHash([]byte(`{"amount":2}`))
	if a != b {
		t.Fatalf("hash not deterministic")
	}
	if a == c {
		t.Fatalf("different bodies must not collide trivially")
	}
}
