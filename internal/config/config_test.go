package config

import "testing"

func TestLoad_ErrorIsSticky(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	if err == nil {
		t.Fatal("missing config file should fail")
	}

	// the cached outcome keeps the error; it never degrades to (nil, nil)
	cfg, err := Load("does-not-exist.yaml")
	if err == nil {
		t.Fatal("second Load error = nil after a failed first Load")
	}
	if cfg != nil {
		t.Errorf("second Load cfg = %+v, want nil", cfg)
	}
}

func TestApplyDefaults(t *testing.T) {
	var c Config
	applyDefaults(&c)

	if c.JWT.SessionHours != 24 {
		t.Errorf("SessionHours = %d, want 24", c.JWT.SessionHours)
	}
	if c.JWT.RememberHours != 720 {
		t.Errorf("RememberHours = %d, want 720", c.JWT.RememberHours)
	}
	if c.JWT.ResetTokenSeconds != 600 {
		t.Errorf("ResetTokenSeconds = %d, want 600", c.JWT.ResetTokenSeconds)
	}
	if c.App.PostsPerPage != 10 {
		t.Errorf("PostsPerPage = %d, want 10", c.App.PostsPerPage)
	}
}
