package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "validation", err: apiErrors.NewErrValidation("title and url are required"), wantCode: http.StatusBadRequest, wantMsg: "title and url are required"},
		{name: "wrapped auth", err: fmt.Errorf("create: %w", apiErrors.NewErrTokenRequired()), wantCode: http.StatusUnauthorized, wantMsg: "token missing"},
		{name: "not found", err: apiErrors.NewErrBlogNotFound(id), wantCode: http.StatusNotFound, wantMsg: fmt.Sprintf("blog %s not found", id)},
		{name: "consistency", err: apiErrors.NewErrConsistency(id, id, assert.AnError), wantCode: http.StatusInternalServerError},
		{name: "store sentinel", err: model.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "not found"},
		{name: "consistency over store sentinel", err: apiErrors.NewErrConsistency(id, id, model.ErrNotFound), wantCode: http.StatusInternalServerError, wantMsg: fmt.Sprintf("blog %s and owner %s are out of sync", id, id)},
		{name: "internal hides cause", err: fmt.Errorf("list: %w", apiErrors.NewErrInternalServerError(assert.AnError)), wantCode: http.StatusInternalServerError, wantMsg: "internal server error"},
		{name: "unknown", err: assert.AnError, wantCode: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, msg := handleError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}
