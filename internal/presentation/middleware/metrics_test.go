package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "score path",
			path:     "/api/v1/wallets/0x1111111111111111111111111111111111111111/score",
			expected: "/api/v1/wallets/{address}/score",
		},
		{
			name:     "mixed case address",
			path:     "/api/v1/wallets/0xABCDEF1234567890abcdef1234567890ABCDEF12/score",
			expected: "/api/v1/wallets/{address}/score",
		},
		{
			name:     "no address",
			path:     "/api/v1/ranks",
			expected: "/api/v1/ranks",
		},
		{
			name:     "health",
			path:     "/health",
			expected: "/health",
		},
		{
			name:     "short hex segment untouched",
			path:     "/api/v1/wallets/0x123/score",
			expected: "/api/v1/wallets/0x123/score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.expected {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
