package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body into obj. An empty body leaves obj zero so the
// services report which fields are missing.
func bindJSON(ctx *gin.Context, obj any) error {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
