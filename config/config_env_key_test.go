package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pin": map[string]any{
			"bcryptCost": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PIN_BCRYPTCOST", want: "pin.bcryptCost"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthAndPinPolicy(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.MaxLoginFailures != 5 {
		t.Fatalf("MaxLoginFailures = %d, want 5", cfg.Auth.MaxLoginFailures)
	}
	if cfg.Pin.Length != 6 {
		t.Fatalf("Pin.Length = %d, want 6", cfg.Pin.Length)
	}
	if cfg.Pin.BcryptCost < 10 {
		t.Fatalf("Pin.BcryptCost = %d, want >= 10", cfg.Pin.BcryptCost)
	}
}
