package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("default page", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "# minigrep")
		env.contains(out, "Capture groups")
	})

	t.Run("named page", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide", "patterns")
		env.contains(out, "# Pattern syntax")
	})

	t.Run("unknown page lists available pages", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nope")
		if err == nil {
			t.Fatal("unknown guide page should fail")
		}
		env.contains(out, "Available:")
		env.contains(out, "patterns")
	})
}
