package vos

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleNewMapEnvFromEnvList() {
	env := NewMapEnvFromEnvList([]string{"A=B", "C=D", "E", "F=G=H"})

	fmt.Printf("Environ(): %q\n", env.Environ())
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Environ(): ["A=B" "C=D" "E=" "F=G=H"]
	// Getenv("F"): "G=H"
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("A", "B")

	val, ok := env.LookupEnv("A")
	fmt.Println("Existing", "val:", val, "ok:", ok)
	val, ok = env.LookupEnv("B")
	fmt.Println("Missing", "val:", val, "ok:", ok)

	// Output: Existing val: B ok: true
	// Missing val:  ok: false
}

func TestMapEnv_UserHomeDir(t *testing.T) {
	env := NewMapEnv()

	_, err := env.UserHomeDir()
	assert.Error(t, err)

	env.Setenv(EnvHome, "/home/dc")
	home, err := env.UserHomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/dc", home)
}

func TestOSEnv(t *testing.T) {
	t.Setenv("DCSHELL_TEST_VAR", "value")

	val, ok := OSEnv{}.LookupEnv("DCSHELL_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", val)

	snapshot := NewMapEnvFrom(OSEnv{})
	assert.Equal(t, "value", snapshot.Getenv("DCSHELL_TEST_VAR"))
}
