package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"visionstage-backend/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request models.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("roomlabel", func(fl validator.FieldLevel) bool {
			return models.IsRoomLabel(fl.Field().String())
		})
	})
	return err
}
