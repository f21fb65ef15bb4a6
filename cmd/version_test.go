package cmd

import "testing"

func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("version")
		env.contains(out, "Build Tag:")
		env.contains(out, "Go Version:")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("version", "-o", "json")
		env.contains(out, `"build_tag"`)
		env.contains(out, `"platform"`)
	})
}
