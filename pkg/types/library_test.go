package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibraryQualifiedName(t *testing.T) {
	t.Run("joins namespace and name", func(t *testing.T) {
		lib := Library{Name: "mylib", Namespace: "contracts"}
		assert.Equal(t, "contracts.mylib", lib.QualifiedName())
	})

	t.Run("bare name without namespace", func(t *testing.T) {
		lib := Library{Name: "mylib"}
		assert.Equal(t, "mylib", lib.QualifiedName())
	})
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"mylib", true},
		{"_private", true},
		{"lib2", true},
		{"openzeppelin_cairo", true},
		{"", false},
		{"2lib", false},
		{"my-lib", false},
		{"my.lib", false},
		{"__pycache__", true},
		{"../escape", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.name))
		})
	}
}
