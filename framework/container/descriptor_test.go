package container

import "testing"

func TestParseDep(t *testing.T) {
	cases := []struct {
		raw  string
		want DepSpec
	}{
		{"db", DepSpec{Name: "db"}},
		{"db?", DepSpec{Name: "db", Optional: true}},
		{"db!", DepSpec{Name: "db", Factory: true}},
		{"dbFactory", DepSpec{Name: "db", Factory: true}},
		{"db!?", DepSpec{Name: "db", Optional: true, Factory: true}},
		{"db?!", DepSpec{Name: "db", Optional: true, Factory: true}},
		{"dbFactory?", DepSpec{Name: "db", Optional: true, Factory: true}},
		{"Factory", DepSpec{Name: "Factory"}}, // too short to strip, kept literal
	}

	for _, tc := range cases {
		got := parseDep(tc.raw)
		if got != tc.want {
			t.Errorf("parseDep(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}
