package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantMsg    string
	}{
		{"not found", NotFound("Category %s not found", "c1"), http.StatusNotFound, TypeNotFound, "Category c1 not found"},
		{"rule", Rule("slug taken"), http.StatusBadRequest, TypeInvalidData, "slug taken"},
		{"conflict", Conflict("brand in use"), http.StatusConflict, TypeConflict, "brand in use"},
		{"wrapped rule", fmt.Errorf("update: %w", Rule("bad parent")), http.StatusBadRequest, TypeInvalidData, "bad parent"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, TypeServerError, "An unexpected error occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, typ, msg := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NotFound("x"))))
	assert.False(t, IsNotFound(Rule("x")))
	assert.True(t, IsRule(Rule("x")))
	assert.False(t, IsRule(errors.New("x")))
}
