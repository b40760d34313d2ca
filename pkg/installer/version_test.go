package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		installed jprog.Version
		required  string
		want      bool
	}{
		{jprog.Version{Major: 10, Minor: 12, Revision: 1}, "10.12.1", false},
		{jprog.Version{Major: 10, Minor: 12, Revision: 0}, "10.12.1", true},
		{jprog.Version{Major: 10, Minor: 9, Revision: 9}, "10.12.1", true},
		{jprog.Version{Major: 10, Minor: 13, Revision: 0}, "10.12.1", false},
		{jprog.Version{Major: 9, Minor: 99, Revision: 99}, "10.12.1", true},
		{jprog.Version{Major: 11}, "10.12.1", false},
		{jprog.Version{Major: 10, Minor: 12, Revision: 1}, "v10.12.1", false},
		{jprog.Version{Major: 10, Minor: 12, Revision: 1}, "10.12", false},
	}

	for _, tt := range tests {
		t.Run(tt.installed.String()+"<"+tt.required, func(t *testing.T) {
			assert.Equal(t, tt.want, Required(tt.installed, tt.required))
		})
	}
}

func TestValidateVersion(t *testing.T) {
	for _, v := range []string{"10.12.1", "v10.12.1", "10", "10.12"} {
		assert.NoError(t, ValidateVersion(v), v)
	}
	for _, v := range []string{"", "ten", "10.x", "10.12.1.4"} {
		assert.Error(t, ValidateVersion(v), v)
	}
}
