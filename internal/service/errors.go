// Package service implements the workflow layer: the explicit actions the
// presentation layer invokes for a logged-in admin or seller, plus the
// session that routes a login to the right workflow. All input validation
// and uniqueness checks happen here, before any store mutation.
package service

import "errors"

var (
	ErrEmptyItemFields   = errors.New("item name and price cannot be empty")
	ErrInvalidPrice      = errors.New("price must be a positive number")
	ErrDuplicateItemName = errors.New("an item with this name already exists")

	ErrEmptySellerFields = errors.New("seller username and password cannot be empty")
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDeleteSelf        = errors.New("cannot delete your own logged-in account")
	ErrDeleteAdmin       = errors.New("admin accounts cannot be deleted from seller management")

	ErrUnknownRole = errors.New("unknown user role")
)
