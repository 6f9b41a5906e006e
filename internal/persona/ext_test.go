package persona

import "testing"

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/bin/login.elf", ".elf"},
		{"/bin/LOGIN.ELF", ".elf"},
		{"foo.TAR.GZ", ".gz"},
		{"/bin/login", ""},
		{"trailing.", ""},
		{"", ""},
		{"/etc/rc.d/journald", ""},
		{`C:\system.d\image`, ""},
		{`C:\system\boot.ELF`, ".elf"},
		{".hidden", ".hidden"},
		{"/srv/.config", ".config"},
		{"a.b.c", ".c"},
	}

	for _, tc := range cases {
		if got := extensionOf(tc.path); got != tc.want {
			t.Errorf("extensionOf(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
