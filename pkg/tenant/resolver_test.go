package tenant

import "testing"

func TestExtractSubdomain(t *testing.T) {
	resolver := NewResolver([]string{"localhost", "127.0.0.1"})

	tests := []struct {
		name string
		host string
		want string
		ok   bool
	}{
		{
			name: "subdomain with port",
			host: "tenantA.example.com:3000",
			want: "tenanta",
			ok:   true,
		},
		{
			name: "subdomain without port",
			host: "acme.example.com",
			want: "acme",
			ok:   true,
		},
		{
			name: "loopback with port",
			host: "localhost:3000",
			want: "",
			ok:   false,
		},
		{
			name: "loopback without port",
			host: "localhost",
			want: "",
			ok:   false,
		},
		{
			name: "loopback ip",
			host: "127.0.0.1:8080",
			want: "",
			ok:   false,
		},
		{
			name: "two labels only",
			host: "example.com",
			want: "",
			ok:   false,
		},
		{
			name: "two labels with port",
			host: "example.com:443",
			want: "",
			ok:   false,
		},
		{
			name: "four labels",
			host: "a.b.example.com",
			want: "a",
			ok:   true,
		},
		{
			name: "mixed case host",
			host: "ACME.Example.COM",
			want: "acme",
			ok:   true,
		},
		{
			name: "empty host",
			host: "",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.ExtractSubdomain(tt.host)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractSubdomain(%q) = (%q, %v), want (%q, %v)",
					tt.host, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ACME", "acme"},
		{"  acme  ", "acme"},
		{"Acme", "acme"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
