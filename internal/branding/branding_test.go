package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "netbeansify"},
		{"HomeDir", HomeDir(), ".netbeansify"},
		{"EnvPrefix", EnvPrefix(), "NETBEANSIFY"},
		{"IgnoreFile", IgnoreFile(), ".nbignore"},
		{"CommandFile", CommandFile(), "netbeansifierfile"},
		{"ManifestFile", ManifestFile(), "template.yaml"},
		{"LogoFile", LogoFile(), "netbeanz.png"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "NETBEANSIFY_HOME" {
		t.Errorf("EnvVar(\"home\") = %q, want %q", got, "NETBEANSIFY_HOME")
	}
}
