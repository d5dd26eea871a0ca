package domain

import (
	"errors"
)

var (
	MessageSuccessAddQuantity    = "ingredient added successfully"
	MessageSuccessUpdateQuantity = "ingredient updated successfully"
	MessageSuccessDeleteQuantity = "ingredient deleted successfully"
	MessageSuccessAddMethod      = "method added successfully"
	MessageSuccessUpdateMethod   = "method updated successfully"
	MessageSuccessDeleteMethod   = "method deleted successfully"

	MessageFailedAddQuantity    = "failed to add ingredient"
	MessageFailedUpdateQuantity = "failed to update ingredient"
	MessageFailedDeleteQuantity = "failed to delete ingredient"
	MessageFailedAddMethod      = "failed to add method"
	MessageFailedUpdateMethod   = "failed to update method"
	MessageFailedDeleteMethod   = "failed to delete method"

	ErrQuantityNotFound = errors.New("ingredient quantity not found")
	ErrMethodNotFound   = errors.New("method not found")
)

type (
	AddQuantityRequest struct {
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Ingredient    string  `json:"ingredient" validate:"required,max=150"`
		MeasurementID string  `json:"measurement_id" validate:"required,uuid"`
	}

	UpdateQuantityRequest struct {
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Ingredient    string  `json:"ingredient" validate:"required,max=150"`
		MeasurementID string  `json:"measurement_id" validate:"required,uuid"`
	}

	AddMethodRequest struct {
		Description string `json:"description" validate:"required"`
	}

	UpdateMethodRequest struct {
		Description string `json:"description" validate:"required"`
	}
)
