package Controllers

import "github.com/go-playground/validator/v10"

// validate checks the `validate` tags on incoming payloads before anything
// touches the database.
var validate = validator.New()
